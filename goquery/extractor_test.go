package goquery_test

import (
	"testing"

	"github.com/fwojciec/wordseek"
	"github.com/fwojciec/wordseek/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bankHTML = `<!DOCTYPE html>
<html><head><title>bank</title></head><body>
<section data-mw-section-id="1"><h2 id="English">English</h2>
	<section><h3 id="Etymology_1">Etymology 1</h3>
		<p>From Italian <a rel="mw:WikiLink" href="./banca">banca</a>.<sup class="reference"><a href="#cite_note-1">[1]</a></sup></p>
		<section><h4 id="Pronunciation">Pronunciation</h4>
			<ul><li><span class="IPA">/bæŋk/</span></li></ul>
		</section>
		<section><h4 id="Noun">Noun</h4>
			<p>bank (plural banks)</p>
			<ol><li>A financial institution.</li><li>A branch office.</li></ol>
		</section>
	</section>
	<section><h3 id="Etymology_2">Etymology 2</h3>
		<p>From Old Norse bakki.</p>
		<section><h4 id="Noun_2">Noun</h4>
			<ol><li>The edge of a river.<ul><li>We sat on the bank.</li></ul></li><li>A slope.</li></ol>
		</section>
	</section>
</section>
<section data-mw-section-id="2"><h2 id="Dutch">Dutch</h2>
	<section><h3 id="Noun_3">Noun</h3><ol><li>bench</li></ol></section>
</section>
</body></html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("splits a page with two etymologies into independent blocks", func(t *testing.T) {
		t.Parallel()

		entry, err := goquery.NewExtractor().Extract(bankHTML, "https://en.wiktionary.org/wiki/bank", "English")

		require.NoError(t, err)
		assert.Equal(t, "bank", entry.Word)
		assert.Equal(t, "English", entry.Language)
		assert.Equal(t, "Wiktionary", entry.Source)
		assert.Equal(t, "https://en.wiktionary.org/wiki/bank#English", entry.Link)
		require.Len(t, entry.Etymologies, 2)

		first := entry.Etymologies[0]
		assert.Equal(t, "From Italian banca.[1]", first.Etymology.String())
		assert.Equal(t, "From Italian [banca](https://en.wiktionary.org/wiki/banca).", first.Etymology.EmbedString())
		require.Len(t, first.Pronunciations, 1)
		assert.Equal(t, "General: /bæŋk/", first.Pronunciations[0].String())
		require.Len(t, first.PartsOfSpeech, 1)
		assert.Equal(t, "Noun", first.PartsOfSpeech[0].Label)
		assert.Equal(t, []string{"1. A financial institution.", "2. A branch office."}, first.PartsOfSpeech[0].Numbered())

		second := entry.Etymologies[1]
		assert.Equal(t, 1, second.Index)
		assert.Empty(t, second.Pronunciations)
		require.Len(t, second.PartsOfSpeech, 1)
		assert.Equal(t, "Noun", second.PartsOfSpeech[0].Label)
		assert.Equal(t, []string{"1. The edge of a river.", "2. A slope."}, second.PartsOfSpeech[0].Numbered())
	})

	t.Run("extracts the requested language only", func(t *testing.T) {
		t.Parallel()

		entry, err := goquery.NewExtractor().Extract(bankHTML, "https://en.wiktionary.org/wiki/bank", "Dutch")

		require.NoError(t, err)
		require.Len(t, entry.Etymologies, 1)
		assert.False(t, entry.Etymologies[0].Etymology.Available())
		require.Len(t, entry.Etymologies[0].PartsOfSpeech, 1)
		assert.Equal(t, []string{"bench"}, entry.Etymologies[0].PartsOfSpeech[0].Definitions)
		assert.Empty(t, entry.Etymologies[0].Pronunciations)
	})

	t.Run("returns ELANGUAGE for a missing language", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Extract(bankHTML, "https://en.wiktionary.org/wiki/bank", "French")

		assert.Equal(t, wordseek.ELANGUAGE, wordseek.ErrorCode(err))
		assert.Equal(t, wordseek.MsgLanguageNotFound, wordseek.ErrorMessage(err))
	})

	t.Run("returns EETYMOLOGY in strict mode without etymology headings", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor(goquery.WithStrict(true))

		_, err := e.Extract(bankHTML, "https://en.wiktionary.org/wiki/bank", "Dutch")

		assert.Equal(t, wordseek.EETYMOLOGY, wordseek.ErrorCode(err))
		assert.Equal(t, wordseek.MsgEtymologyUnavailable, wordseek.ErrorMessage(err))
	})

	t.Run("takes the word from the page URL without a title", func(t *testing.T) {
		t.Parallel()

		html := `<section><h2 id="English">English</h2><p>x</p></section>`

		entry, err := goquery.NewExtractor().Extract(html, "https://en.wiktionary.org/wiki/ice_cream", "English")

		require.NoError(t, err)
		assert.Equal(t, "ice cream", entry.Word)
	})

	t.Run("reduces reconstruction titles to the starred form", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Reconstruction:Proto-Germanic/bankiz</title></head><body><section><h2 id="Proto-Germanic">Proto-Germanic</h2></section></body></html>`

		entry, err := goquery.NewExtractor().Extract(html, "https://en.wiktionary.org/wiki/Reconstruction:Proto-Germanic/bankiz", "Proto-Germanic")

		require.NoError(t, err)
		assert.Equal(t, "*bankiz", entry.Word)
	})

	t.Run("rejects an invalid page URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Extract(bankHTML, "://bad", "English")

		assert.Equal(t, wordseek.EINVALID, wordseek.ErrorCode(err))
	})
}

func TestLanguageSectionHTML(t *testing.T) {
	t.Parallel()

	t.Run("returns the section of the language", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.LanguageSectionHTML(bankHTML, "Dutch")

		require.NoError(t, err)
		assert.Contains(t, got, `<h2 id="Dutch">Dutch</h2>`)
		assert.NotContains(t, got, "English")
	})

	t.Run("returns ELANGUAGE for a missing language", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.LanguageSectionHTML(bankHTML, "French")

		assert.Equal(t, wordseek.ELANGUAGE, wordseek.ErrorCode(err))
	})
}

func TestExtractor_Extract_BaseElement(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Reconstruction:Proto-Germanic/bankiz</title><base href="//en.wiktionary.org/wiki/"/></head><body>
<section><h2 id="Proto-Germanic">Proto-Germanic</h2>
<section><h3 id="Etymology">Etymology</h3><p>Related to <a rel="mw:WikiLink" href="./Reconstruction:Proto-Germanic/bankaz">*bankaz</a>.</p></section>
</section></body></html>`

	entry, err := goquery.NewExtractor().Extract(html, "https://en.wiktionary.org/wiki/Reconstruction:Proto-Germanic/bankiz", "Proto-Germanic")

	require.NoError(t, err)
	require.Len(t, entry.Etymologies, 1)
	assert.Equal(t, "Related to [*bankaz](https://en.wiktionary.org/wiki/Reconstruction:Proto-Germanic/bankaz).", entry.Etymologies[0].Etymology.EmbedString())
}
