// Package http implements wordseek.PageFetcher against the Wiktionary REST
// API, which serves pages as Parsoid HTML.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/wordseek"
	"golang.org/x/text/unicode/norm"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultBaseURL is the Wiktionary edition pages are fetched from.
const DefaultBaseURL = "https://en.wiktionary.org"

// DefaultUserAgent identifies the client to Wiktionary.
const DefaultUserAgent = "wordseek/0.1 (https://github.com/fwojciec/wordseek)"

// Ensure Fetcher implements wordseek.PageFetcher at compile time.
var _ wordseek.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves Wiktionary pages over HTTP. It makes exactly one
// request per call.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	baseURL   string
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the Wiktionary site to fetch from.
func WithBaseURL(baseURL string) Option {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(f *Fetcher) {
		f.userAgent = userAgent
	}
}

// WithHTTPClient sets the client used for requests. The timeout option is
// ignored when a client is given.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// FetchPage retrieves the HTML of the page describing word.
func (f *Fetcher) FetchPage(ctx context.Context, word, language string, proto bool) (*wordseek.Page, error) {
	word = norm.NFC.String(strings.TrimSpace(word))
	if word == "" {
		return nil, wordseek.Errorf(wordseek.EINVALID, "word required")
	}

	title := Title(word, language, proto)
	endpoint := f.baseURL + "/w/rest.php/v1/page/" + url.PathEscape(title) + "/html"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, wordseek.Errorf(wordseek.EINVALID, "invalid page request: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", title, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, wordseek.Errorf(wordseek.ENOTFOUND, wordseek.MsgWordNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, &wordseek.UpstreamError{
			Status:     resp.StatusCode,
			StatusText: reasonPhrase(resp),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", title, err)
	}

	return &wordseek.Page{
		Word:     word,
		Language: language,
		Proto:    proto,
		HTML:     string(body),
		URL:      f.pageURL(title),
	}, nil
}

// reasonPhrase returns the status text sent by the server, falling back to
// the standard wording when it sent none.
func reasonPhrase(resp *http.Response) string {
	phrase := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	if phrase = strings.TrimSpace(phrase); phrase != "" {
		return phrase
	}
	return http.StatusText(resp.StatusCode)
}

// pageURL returns the human-facing address of the page titled title.
func (f *Fetcher) pageURL(title string) string {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return f.baseURL + "/wiki/" + url.PathEscape(title)
	}
	u.Path = "/wiki/" + strings.ReplaceAll(title, " ", "_")
	return u.String()
}

// Title returns the page title for word. Reconstructed words live under
// "Reconstruction:<language>/<word>" without their leading asterisk.
func Title(word, language string, proto bool) string {
	if !proto {
		return word
	}
	return "Reconstruction:" + language + "/" + strings.TrimPrefix(word, "*")
}
