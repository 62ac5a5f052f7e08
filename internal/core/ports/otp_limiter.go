package ports

import "context"

// OTPLimiter tracks failed confirmation attempts per account. A nil or
// disabled limiter allows every attempt, matching the unthrottled
// behaviour the service shipped with originally.
type OTPLimiter interface {
	// Allow reports whether another confirmation attempt may proceed.
	Allow(ctx context.Context, email string) (bool, error)
	// Fail records a failed attempt.
	Fail(ctx context.Context, email string) error
	// Reset clears the failure count.
	Reset(ctx context.Context, email string) error
}
