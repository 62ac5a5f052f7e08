package mailer

import (
	"context"

	"github.com/rs/zerolog"
)

// DevMailer logs messages instead of delivering them. Used when no
// MailerSend API key is configured, so local runs can read the OTP from
// the log output.
type DevMailer struct {
	logger zerolog.Logger
}

func NewDevMailer(logger zerolog.Logger) *DevMailer {
	return &DevMailer{logger: logger}
}

func (m *DevMailer) Send(_ context.Context, from, to, subject, htmlBody string) error {
	m.logger.Info().
		Str("from", from).
		Str("to", to).
		Str("subject", subject).
		Str("body", htmlBody).
		Msg("dev mail (not delivered)")
	return nil
}
