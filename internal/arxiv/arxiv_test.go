package arxiv

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageFromHTML(t *testing.T, src string) *Page {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)
	return &Page{URL: "test", Doc: doc}
}

func TestArticleURL(t *testing.T) {
	c := NewClient("https://arxiv.org/", 1, time.Second)
	assert.Equal(t, "https://arxiv.org/html/2511.19654v1", c.ArticleURL("2511.19654"))

	c = NewClient("https://arxiv.org", 3, time.Second)
	assert.Equal(t, "https://arxiv.org/html/2511.19654v3", c.ArticleURL("2511.19654"))
}

func TestFetchSuccess(t *testing.T) {
	var gotPath, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html><body><div class="ltx_page_content">Hello World</div></body></html>`))
	}))
	defer server.Close()

	page, err := NewClient(server.URL, 1, 5*time.Second).Fetch(context.Background(), "2511.19654")
	require.NoError(t, err)
	require.NotNil(t, page)

	assert.Equal(t, "/html/2511.19654v1", gotPath)
	assert.Equal(t, "Mozilla/5.0", gotUA)
	assert.Equal(t, server.URL+"/html/2511.19654v1", page.URL)
	assert.Equal(t, "Hello World", ExtractContent(page))
}

func TestFetchNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	page, err := NewClient(server.URL, 1, 5*time.Second).Fetch(context.Background(), "0000.00000")
	assert.Nil(t, page)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Equal(t, "fetch article", fetchErr.Op)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	page, err := NewClient(url, 1, time.Second).Fetch(context.Background(), "2511.19654")
	assert.Nil(t, page)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestFetchCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(server.URL, 1, time.Second).Fetch(ctx, "2511.19654")
	require.ErrorIs(t, err, context.Canceled)
}

func TestExtractContent(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "single text node",
			html: `<div class="ltx_page_content">Hello World</div>`,
			want: "Hello World",
		},
		{
			name: "blocks become lines",
			html: `<div class="ltx_page_content">
				<h1>  Title  </h1>
				<p>First <em>emphasis</em> paragraph.</p>
				<p>   </p>
				<p>Second&nbsp;</p>
			</div>`,
			want: "Title\nFirst\nemphasis\nparagraph.\nSecond",
		},
		{
			name: "scripts styles and comments are skipped",
			html: `<div class="ltx_page_content"><script>var x = 1;</script><style>p{}</style><!-- note --><p>Body</p></div>`,
			want: "Body",
		},
		{
			name: "first matching container wins",
			html: `<div class="ltx_page_content">one</div><div class="ltx_page_content">two</div>`,
			want: "one",
		},
		{
			name: "container among several classes",
			html: `<div class="ltx_page_main ltx_page_content extra">Text</div>`,
			want: "Text",
		},
		{
			name: "class on a different tag does not match",
			html: `<section class="ltx_page_content">Text</section>`,
			want: "",
		},
		{
			name: "missing container",
			html: `<html><body><div class="other">Nothing here</div></body></html>`,
			want: "",
		},
		{
			name: "empty container",
			html: `<div class="ltx_page_content">   </div>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractContent(pageFromHTML(t, tt.html)))
		})
	}
}

func TestExtractContentNilPage(t *testing.T) {
	assert.Equal(t, "", ExtractContent(nil))
	assert.Equal(t, "", ExtractContent(&Page{}))
}

func TestExtractContentIsDeterministic(t *testing.T) {
	page := pageFromHTML(t, `<div class="ltx_page_content"><p>A</p><p>B <b>C</b></p></div>`)

	first := ExtractContent(page)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractContent(page))
	}
}

func TestTitle(t *testing.T) {
	page := pageFromHTML(t, `<h1 class="ltx_title ltx_title_document">Attention
		Is  All You Need</h1>`)
	assert.Equal(t, "Attention Is All You Need", Title(page))

	assert.Equal(t, "", Title(pageFromHTML(t, `<h1>Plain</h1>`)))
	assert.Equal(t, "", Title(nil))
}
