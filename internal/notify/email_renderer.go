package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/shanehull/papersum/internal/types"
)

// RenderedMessage is an email ready to be sent.
type RenderedMessage struct {
	Subject string
	Text    string
	HTML    string
}

// NotificationData is the template input for a summary email.
type NotificationData struct {
	Summary types.Summary
	Heading string
	Blocks  []summaryBlock
}

// summaryBlock is either a run of bullet points or a single paragraph.
type summaryBlock struct {
	Bullets   []string
	Paragraph string
}

var bulletPrefixes = []string{"- ", "* ", "• "}

// HTMLEmailRenderer renders summaries as HTML emails with a plain text fallback.
type HTMLEmailRenderer struct {
	tmpl *template.Template
}

func NewHTMLEmailRenderer() *HTMLEmailRenderer {
	t := template.Must(template.New("email").Parse(emailHTMLTemplate))
	return &HTMLEmailRenderer{tmpl: t}
}

func (r *HTMLEmailRenderer) Render(summary types.Summary) (*RenderedMessage, error) {
	data := NotificationData{
		Summary: summary,
		Heading: heading(summary.Article),
		Blocks:  splitBlocks(summary.Text),
	}

	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML template: %w", err)
	}

	return &RenderedMessage{
		Subject: "arXiv Summary: " + data.Heading,
		Text:    renderPlainText(data),
		HTML:    htmlBuf.String(),
	}, nil
}

func heading(article types.Article) string {
	if article.Title != "" {
		return fmt.Sprintf("%s - %s", article.ID, article.Title)
	}
	return string(article.ID)
}

func splitBlocks(text string) []summaryBlock {
	var blocks []summaryBlock
	var bullets []string

	flush := func() {
		if len(bullets) > 0 {
			blocks = append(blocks, summaryBlock{Bullets: bullets})
			bullets = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if item, ok := bulletItem(line); ok {
			bullets = append(bullets, item)
			continue
		}
		flush()
		blocks = append(blocks, summaryBlock{Paragraph: line})
	}
	flush()

	return blocks
}

func bulletItem(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}

func renderPlainText(data NotificationData) string {
	var sb strings.Builder

	sb.WriteString(data.Heading + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")
	sb.WriteString(fmt.Sprintf("URL: %s\n", data.Summary.Article.URL))
	sb.WriteString(fmt.Sprintf("Model: %s\n\n", data.Summary.Model))

	sb.WriteString("AI SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 20) + "\n")
	sb.WriteString(strings.TrimSpace(data.Summary.Text) + "\n")

	return sb.String()
}
