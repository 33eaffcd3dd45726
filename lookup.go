package wordseek

import "context"

// Lookup fetches the page describing word and extracts the entry for the
// language named by languageArgs, as accepted by ParseLanguage.
func Lookup(ctx context.Context, fetcher PageFetcher, extractor Extractor, word string, languageArgs []string) (*Entry, error) {
	language, proto := ParseLanguage(languageArgs)

	page, err := fetcher.FetchPage(ctx, word, language, proto)
	if err != nil {
		return nil, err
	}

	return extractor.Extract(page.HTML, page.URL, page.Language)
}
