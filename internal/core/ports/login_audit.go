package ports

import (
	"context"
	"time"
)

// LoginAudit is an instrumentation record of a successful login.
type LoginAudit struct {
	Email string
	At    time.Time
}

// LoginAuditor accepts audit records without blocking the login path.
// Delivery is best-effort; a lost record never fails a login.
type LoginAuditor interface {
	Record(audit LoginAudit)
}

// LoginRecorder persists a login audit record.
type LoginRecorder interface {
	RecordLogin(ctx context.Context, email string, at time.Time) error
}
