package mailer

import (
	"context"
	"fmt"

	"github.com/mailersend/mailersend-go"
)

// MailerSend delivers mail through the MailerSend API.
type MailerSend struct {
	client *mailersend.Mailersend
}

func NewMailerSend(apiKey string) *MailerSend {
	return &MailerSend{client: mailersend.NewMailersend(apiKey)}
}

func (m *MailerSend) Send(ctx context.Context, from, to, subject, htmlBody string) error {
	msg := m.client.Email.NewMessage()
	msg.SetFrom(mailersend.From{Email: from})
	msg.SetRecipients([]mailersend.Recipient{{Email: to}})
	msg.SetSubject(subject)
	msg.SetHTML(htmlBody)

	if _, err := m.client.Email.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailersend: %w", err)
	}
	return nil
}
