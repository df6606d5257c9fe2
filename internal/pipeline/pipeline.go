/*
Package pipeline runs one article through fetch, extract, prompt and summarize.
*/
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shanehull/papersum/internal/ai"
	"github.com/shanehull/papersum/internal/arxiv"
	"github.com/shanehull/papersum/internal/logger"
	"github.com/shanehull/papersum/internal/types"
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	OutcomeNoContent Outcome = iota
	OutcomeSummarized
	OutcomePromptOnly
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoContent:
		return "no_content"
	case OutcomeSummarized:
		return "summarized"
	case OutcomePromptOnly:
		return "prompt_only"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type Fetcher interface {
	ArticleURL(id types.ArticleID) string
	Fetch(ctx context.Context, id types.ArticleID) (*arxiv.Page, error)
}

type Reporter interface {
	ReportNoContent(article types.Article) error
	ReportSummary(summary types.Summary) error
	ReportPrompt(article types.Article, prompt string) error
}

// Notifier delivers a finished summary somewhere besides the console.
type Notifier interface {
	Name() string
	Notify(summary types.Summary) error
}

type Options struct {
	// Model is recorded on the summary for reporting.
	Model      string
	PromptOnly bool
	Notifiers  []Notifier
}

type Runner struct {
	fetcher    Fetcher
	summarizer ai.Summarizer
	reporter   Reporter
	log        logger.Logger
	opts       Options
}

func NewRunner(fetcher Fetcher, summarizer ai.Summarizer, reporter Reporter, log logger.Logger, opts Options) *Runner {
	return &Runner{
		fetcher:    fetcher,
		summarizer: summarizer,
		reporter:   reporter,
		log:        log,
		opts:       opts,
	}
}

// Run processes a single article. A failed fetch or a page without a content
// container ends in OutcomeNoContent with a nil error; the summarizer is not
// called in either case. Summarizer errors are returned with OutcomeFailed.
func (r *Runner) Run(ctx context.Context, id types.ArticleID) (Outcome, error) {
	log := r.log.With(logger.String("article_id", string(id)))
	article := types.Article{ID: id, URL: r.fetcher.ArticleURL(id)}

	log.Info("Fetching article", logger.String("url", article.URL))
	start := time.Now()

	page, err := r.fetcher.Fetch(ctx, id)
	if err != nil {
		logFetchError(log, err)
		return r.noContent(article)
	}
	log.Debug("Fetched article", logger.Duration("elapsed", time.Since(start)))

	article.Title = arxiv.Title(page)
	article.Content = arxiv.ExtractContent(page)
	if article.Content == "" {
		log.Warn("Main content container not found or empty", logger.String("url", article.URL))
		return r.noContent(article)
	}
	log.Info("Extracted article content", logger.Int("chars", len(article.Content)))

	prompt := ai.BuildPrompt(string(id), article.Content)

	if r.opts.PromptOnly {
		if err := r.reporter.ReportPrompt(article, prompt); err != nil {
			return OutcomePromptOnly, fmt.Errorf("failed to report prompt: %w", err)
		}
		return OutcomePromptOnly, nil
	}

	log.Info("Requesting summary", logger.String("model", r.opts.Model))
	start = time.Now()

	text, err := r.summarizer.Summarize(ctx, prompt)
	if err != nil {
		log.Error("Summarization failed", logger.Error(err))
		return OutcomeFailed, fmt.Errorf("failed to summarize %s: %w", id, err)
	}
	log.Info("Received summary", logger.Duration("elapsed", time.Since(start)))

	summary := types.Summary{Article: article, Model: r.opts.Model, Text: text}
	if err := r.reporter.ReportSummary(summary); err != nil {
		return OutcomeSummarized, fmt.Errorf("failed to report summary: %w", err)
	}

	for _, n := range r.opts.Notifiers {
		if err := n.Notify(summary); err != nil {
			log.Warn("Summary delivery failed", logger.String("notifier", n.Name()), logger.Error(err))
			continue
		}
		log.Info("Summary delivered", logger.String("notifier", n.Name()))
	}

	return OutcomeSummarized, nil
}

func (r *Runner) noContent(article types.Article) (Outcome, error) {
	if err := r.reporter.ReportNoContent(article); err != nil {
		return OutcomeNoContent, fmt.Errorf("failed to report missing content: %w", err)
	}
	return OutcomeNoContent, nil
}

func logFetchError(log logger.Logger, err error) {
	var fetchErr *arxiv.FetchError
	if !errors.As(err, &fetchErr) {
		log.Error("Fetch failed", logger.Error(err))
		return
	}

	fields := []logger.Field{
		logger.String("op", fetchErr.Op),
		logger.String("url", fetchErr.URL),
		logger.Error(err),
	}
	if fetchErr.StatusCode != 0 {
		fields = append(fields, logger.Int("status", fetchErr.StatusCode))
	}
	log.Error("Fetch failed", fields...)
}
