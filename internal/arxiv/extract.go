package arxiv

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	contentSelector = "div.ltx_page_content"
	titleSelector   = "h1.ltx_title_document"
)

// Text inside these elements is not visible page text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
}

// ExtractContent returns the text of the page's main-content container, one
// trimmed text run per line. It returns "" when page is nil or the container
// is missing.
func ExtractContent(page *Page) string {
	if page == nil || page.Doc == nil {
		return ""
	}

	section := page.Doc.Find(contentSelector).First()
	if section.Length() == 0 {
		return ""
	}

	return strings.Join(textRuns(section.Get(0)), "\n")
}

// Title returns the document title shown on the page, or "" if there is none.
func Title(page *Page) string {
	if page == nil || page.Doc == nil {
		return ""
	}
	return strings.Join(strings.Fields(page.Doc.Find(titleSelector).First().Text()), " ")
}

func textRuns(n *html.Node) []string {
	var runs []string
	var walk func(*html.Node)

	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				runs = append(runs, text)
			}
			return
		case html.ElementNode:
			if skippedElements[n.Data] {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return runs
}
