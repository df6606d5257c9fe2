package types

// ArticleID is an arXiv accession number such as "2511.19654".
type ArticleID string

type Article struct {
	ID    ArticleID
	URL   string
	Title string
	// Content is the flattened text of the main-content container. Empty
	// means no usable content was found.
	Content string
}

type Summary struct {
	Article Article
	Model   string
	Text    string
}
