/*
Package arxiv fetches arXiv HTML renderings and extracts their main text.
*/
package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/shanehull/papersum/internal/types"

	"golang.org/x/net/html"
)

const (
	htmlPathTemplate = "%s/html/%sv%d"
	userAgent        = "Mozilla/5.0"
)

// Page is a parsed article document.
type Page struct {
	URL string
	Doc *goquery.Document
}

// FetchError describes why an article page could not be retrieved.
type FetchError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: received non-OK status code %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Client struct {
	baseURL    string
	revision   int
	httpClient *http.Client
}

func NewClient(baseURL string, revision int, timeout time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		revision: revision,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ArticleURL returns the HTML rendering URL for id.
func (c *Client) ArticleURL(id types.ArticleID) string {
	return fmt.Sprintf(htmlPathTemplate, c.baseURL, id, c.revision)
}

// Fetch downloads and parses the article page. Every failure is returned as
// a *FetchError.
func (c *Client) Fetch(ctx context.Context, id types.ArticleID) (*Page, error) {
	url := c.ArticleURL(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Op: "build request", URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "fetch article", URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Op: "fetch article", URL: url, StatusCode: resp.StatusCode}
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return nil, &FetchError{Op: "parse article", URL: url, Err: err}
	}

	return &Page{URL: url, Doc: goquery.NewDocumentFromNode(root)}, nil
}
