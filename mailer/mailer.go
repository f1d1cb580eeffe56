package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/stressbuster/stressbuster-api/config"
	templates "github.com/stressbuster/stressbuster-api/templates/html"
)

// Mailer delivers rendered emails
//
//go generate: mockery --name Mailer
type Mailer interface {
	Send(ctx context.Context, toEmail, toName string, e templates.Email) error
}

// New returns a SendGrid mailer, or a Noop one when no API key is configured
func New(conf *config.Config) Mailer {
	if conf.SendGridAPIKey == "" {
		zap.S().Warn("SENDGRID_API_KEY not set, emails will not be sent")
		return Noop{}
	}
	return &SendGrid{
		client: sendgrid.NewSendClient(conf.SendGridAPIKey),
		from:   mail.NewEmail(conf.MailFromName, conf.MailFromEmail),
	}
}

// SendGrid sends email through the SendGrid v3 API
type SendGrid struct {
	client *sendgrid.Client
	from   *mail.Email
}

// Send delivers e to toEmail
func (s *SendGrid) Send(ctx context.Context, toEmail, toName string, e templates.Email) error {
	message := mail.NewSingleEmail(s.from, e.Subject, mail.NewEmail(toName, toEmail), e.PlainText, e.HTML)
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// Noop drops every email, it is used when mail is not configured
type Noop struct{}

// Send logs and discards e
func (Noop) Send(ctx context.Context, toEmail, toName string, e templates.Email) error {
	zap.S().Debugw("email dropped", "to", toEmail, "subject", e.Subject)
	return nil
}
