package scraper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/olympic-medals/internal/medal"
	"github.com/pfrederiksen/olympic-medals/internal/noc"
)

const (
	DefaultAPIURL = "https://en.wikipedia.org/w/api.php"
	UserAgent     = "olympic-medals/1.0 (github.com/pfrederiksen/olympic-medals)"
	Timeout       = 30 * time.Second
)

// ErrMissingContent is returned when the API answers without page HTML
var ErrMissingContent = errors.New("response has no parse.text content")

// StatusError is returned for a non-200 API response
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// Scraper fetches pages from a MediaWiki API and extracts medal data
type Scraper struct {
	client   *http.Client
	apiURL   string
	resolver *noc.Resolver
}

// New creates a Scraper for the given API endpoint. An empty apiURL uses
// DefaultAPIURL and a nil resolver uses the built-in tables.
func New(apiURL string, resolver *noc.Resolver) *Scraper {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if resolver == nil {
		resolver = noc.NewDefaultResolver(noc.NewMapping())
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		apiURL:   apiURL,
		resolver: resolver,
	}
}

// parseResponse is the subset of the action=parse response we read. Text is a
// string with formatversion=2 and {"*": "..."} with the legacy format.
type parseResponse struct {
	Parse *struct {
		Title string          `json:"title"`
		Text  json.RawMessage `json:"text"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// FetchHTML returns the rendered HTML of a wiki page
func (s *Scraper) FetchHTML(page string) (string, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", page)
	params.Set("prop", "text")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("redirects", "1")

	req, err := http.NewRequest("GET", s.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	return decodeParseResponse(resp.Body)
}

func decodeParseResponse(r io.Reader) (string, error) {
	var result parseResponse
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("%w: api error %s: %s", ErrMissingContent, result.Error.Code, result.Error.Info)
	}
	if result.Parse == nil || len(result.Parse.Text) == 0 {
		return "", ErrMissingContent
	}

	var html string
	if err := json.Unmarshal(result.Parse.Text, &html); err != nil {
		var legacy struct {
			Star string `json:"*"`
		}
		if err := json.Unmarshal(result.Parse.Text, &legacy); err != nil {
			return "", fmt.Errorf("%w: unexpected text field", ErrMissingContent)
		}
		html = legacy.Star
	}

	if strings.TrimSpace(html) == "" {
		return "", ErrMissingContent
	}
	return html, nil
}

// TableResult is what was read from a medal table
type TableResult struct {
	Found   bool // A table with medal headers was located
	Rows    []medal.Row
	Skipped int // Rows rejected as malformed or aggregate
}

// FetchMedals fetches a page and reads up to limit rows from its medal table. A
// page without a medal table is not an error; the result has Found unset.
func (s *Scraper) FetchMedals(page string, limit int) (*TableResult, error) {
	html, err := s.FetchHTML(page)
	if err != nil {
		return nil, err
	}
	return s.parseMedals(strings.NewReader(html), limit)
}

func (s *Scraper) parseMedals(r io.Reader, limit int) (*TableResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table, ok := LocateTable(doc.Selection, MedalKeywords...)
	if !ok {
		return &TableResult{}, nil
	}

	rows, skipped := ExtractRows(table, limit, s.resolver)
	return &TableResult{Found: true, Rows: rows, Skipped: skipped}, nil
}

// FetchMapping fetches the reference list of committee codes and reads a mapping
// from it. The boolean is false when the page has no code table.
func (s *Scraper) FetchMapping(page string) (noc.Mapping, bool, error) {
	html, err := s.FetchHTML(page)
	if err != nil {
		return noc.Mapping{}, false, err
	}
	return s.parseMapping(strings.NewReader(html))
}

func (s *Scraper) parseMapping(r io.Reader) (noc.Mapping, bool, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return noc.Mapping{}, false, fmt.Errorf("parsing HTML: %w", err)
	}

	table, ok := LocateTable(doc.Selection, MappingKeywords...)
	if !ok {
		return noc.NewMapping(), false, nil
	}
	return ExtractMapping(table, s.resolver), true, nil
}
