package notify

import (
	"fmt"
	"time"

	"github.com/shanehull/papersum/internal/config"
	"github.com/shanehull/papersum/internal/types"

	gomail "gopkg.in/mail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailSender delivers rendered summaries via SMTP.
type EmailSender struct {
	cfg      config.EmailConfig
	renderer *HTMLEmailRenderer
	dialer   dialer
}

func NewEmailSender(cfg config.EmailConfig) *EmailSender {
	d := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	d.Timeout = 10 * time.Second

	return &EmailSender{
		cfg:      cfg,
		renderer: NewHTMLEmailRenderer(),
		dialer:   d,
	}
}

// Name identifies the notifier in logs.
func (s *EmailSender) Name() string {
	return "email"
}

// Notify renders summary and sends it to the configured recipient.
func (s *EmailSender) Notify(summary types.Summary) error {
	msg, err := s.renderer.Render(summary)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Sender())
	m.SetHeader("To", s.cfg.ToEmail)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", s.cfg.ToEmail, err)
	}

	return nil
}
