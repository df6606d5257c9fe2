package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shanehull/papersum/internal/ai"
	"github.com/shanehull/papersum/internal/arxiv"
	"github.com/shanehull/papersum/internal/config"
	"github.com/shanehull/papersum/internal/logger"
	"github.com/shanehull/papersum/internal/notify"
	"github.com/shanehull/papersum/internal/pipeline"
	"github.com/shanehull/papersum/internal/types"
)

type options struct {
	model      string
	baseURL    string
	revision   int
	timeout    time.Duration
	logLevel   string
	promptOnly bool
	email      bool

	smtpServer string
	smtpPort   int
	smtpUser   string
	smtpPass   string
	toEmail    string
	fromEmail  string
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "papersum <article-id>",
		Short: "Summarize an arXiv article with Gemini",
		Long: `papersum fetches the HTML rendering of an arXiv article, extracts its main
content and asks a Gemini model for a bullet-point summary.

The API key is read from GEMINI_KEY (or GEMINI_API_KEY), optionally via a .env file.`,
		Example:       "  papersum 2511.19654\n  papersum --prompt-only 2511.19654",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if id == "" {
				return fmt.Errorf("article id must not be empty")
			}

			cfg := config.Load()
			applyFlags(cmd, opts, cfg)

			log, err := logger.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return run(cmd.Context(), types.ArticleID(id), cfg, opts, log, stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.model, "model", "m", config.DefaultModel, "Gemini model name (env GEMINI_MODEL)")
	flags.StringVar(&opts.baseURL, "base-url", config.DefaultBaseURL, "arXiv host serving /html/ renderings (env ARXIV_BASE_URL)")
	flags.IntVarP(&opts.revision, "revision", "r", config.DefaultRevision, "Article revision to fetch (env ARXIV_REVISION)")
	flags.DurationVar(&opts.timeout, "timeout", config.DefaultTimeout, "HTTP timeout for the article fetch")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error (env LOG_LEVEL)")
	flags.BoolVarP(&opts.promptOnly, "prompt-only", "p", false, "Print the prompt instead of calling the model")
	flags.BoolVarP(&opts.email, "email", "e", false, "Email the summary using the SMTP settings")

	flags.StringVar(&opts.smtpServer, "smtp-server", "smtp.gmail.com", "SMTP server address (env SMTP_SERVER)")
	flags.IntVar(&opts.smtpPort, "smtp-port", 587, "SMTP server port (env SMTP_PORT)")
	flags.StringVar(&opts.smtpUser, "smtp-user", "", "SMTP username (env SMTP_USER)")
	flags.StringVar(&opts.smtpPass, "smtp-pass", "", "SMTP password or App Password (env SMTP_PASS)")
	flags.StringVar(&opts.toEmail, "to-email", "", "Recipient email address (env TO_EMAIL)")
	flags.StringVar(&opts.fromEmail, "from-email", "", "Sender email address (default: smtp-user)")

	return cmd
}

// applyFlags lets explicitly set flags win over environment values.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("model") {
		cfg.GeminiModel = opts.model
	}
	if changed("base-url") {
		cfg.ArxivBaseURL = opts.baseURL
	}
	if changed("revision") {
		cfg.ArxivRevision = opts.revision
	}
	if changed("timeout") {
		cfg.HTTPTimeout = opts.timeout
	}
	if changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if changed("smtp-server") {
		cfg.Email.SMTPServer = opts.smtpServer
	}
	if changed("smtp-port") {
		cfg.Email.SMTPPort = opts.smtpPort
	}
	if changed("smtp-user") {
		cfg.Email.SMTPUser = opts.smtpUser
	}
	if changed("smtp-pass") {
		cfg.Email.SMTPPass = opts.smtpPass
	}
	if changed("to-email") {
		cfg.Email.ToEmail = opts.toEmail
	}
	if changed("from-email") {
		cfg.Email.FromEmail = opts.fromEmail
	}
}

func run(ctx context.Context, id types.ArticleID, cfg *config.Config, opts *options, log logger.Logger, stdout io.Writer) error {
	var notifiers []pipeline.Notifier
	if opts.email {
		if !cfg.Email.Enabled() {
			return fmt.Errorf("--email requires smtp-server, smtp-user, smtp-pass and to-email")
		}
		notifiers = append(notifiers, notify.NewEmailSender(cfg.Email))
	}

	runner := pipeline.NewRunner(
		arxiv.NewClient(cfg.ArxivBaseURL, cfg.ArxivRevision, cfg.HTTPTimeout),
		ai.NewGeminiSummarizer(ai.GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		}),
		notify.NewConsoleReporter(stdout),
		log,
		pipeline.Options{
			Model:      cfg.GeminiModel,
			PromptOnly: opts.promptOnly,
			Notifiers:  notifiers,
		},
	)

	outcome, err := runner.Run(ctx, id)
	log.Debug("Run finished", logger.String("outcome", outcome.String()))
	return err
}

func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
