package ports

import "context"

// Mailer delivers a single HTML message. Implementations report delivery
// failure through the returned error; the lifecycle engine treats any
// failure as fatal to the operation that triggered the send.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, htmlBody string) error
}
