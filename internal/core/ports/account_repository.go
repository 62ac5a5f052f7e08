package ports

import (
	"context"
	"time"

	"github.com/userhub/account-service/internal/core/domain"
)

// AccountPatch is a partial update applied by email. Nil fields are left
// untouched; a pointer to the empty string clears ConfirmOTP.
type AccountPatch struct {
	IsConfirmed *bool
	ConfirmOTP  *string
}

// AccountRepository defines the persistence contract for accounts.
// Implementations must enforce email uniqueness atomically (unique index
// or equivalent), not by look-up-then-insert.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	UpdateByEmail(ctx context.Context, email string, patch AccountPatch) error
	RecordLogin(ctx context.Context, email string, at time.Time) error
}
