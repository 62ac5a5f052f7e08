package ports

import "context"

// RegisterInput carries the fields accepted at registration time.
type RegisterInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Phone      string
	Department string
}

// RegisteredAccount is the public projection returned after registration.
// It never carries the password hash or the confirmation OTP.
type RegisteredAccount struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// AccountService is the account lifecycle engine: registration, login,
// OTP confirmation and OTP resend.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisteredAccount, error)
	Login(ctx context.Context, email, password string) (string, error)
	VerifyConfirm(ctx context.Context, email, otp string) error
	ResendConfirmOTP(ctx context.Context, email string) error
}
