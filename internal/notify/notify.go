/*
Package notify delivers article summaries to the console and, optionally, by email.
*/
package notify

import (
	"fmt"
	"io"

	"github.com/shanehull/papersum/internal/types"
)

const (
	NoContentMessage = "Could not extract content from the article."

	summaryBanner = "===================== SUMMARY ====================="
	closingBanner = "==================================================="
)

// ConsoleReporter prints pipeline results to w.
type ConsoleReporter struct {
	w io.Writer
}

func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (r *ConsoleReporter) ReportNoContent(article types.Article) error {
	_, err := fmt.Fprintln(r.w, NoContentMessage)
	return err
}

func (r *ConsoleReporter) ReportSummary(summary types.Summary) error {
	_, err := fmt.Fprintf(r.w, "\n%s\n\n%s\n\n%s\n\n", summaryBanner, summary.Text, closingBanner)
	return err
}

// ReportPrompt prints the prompt that would be sent to the model.
func (r *ConsoleReporter) ReportPrompt(article types.Article, prompt string) error {
	_, err := fmt.Fprintln(r.w, prompt)
	return err
}
