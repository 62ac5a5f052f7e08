package domain

import (
	"errors"
	"time"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already registered")
var ErrUnknownCredentials = errors.New("unknown email or password")
var ErrPasswordMismatch = errors.New("password mismatch")
var ErrAccountNotConfirmed = errors.New("account not confirmed")
var ErrAccountInactive = errors.New("account not active")
var ErrAlreadyConfirmed = errors.New("account already confirmed")
var ErrOTPMismatch = errors.New("otp does not match")
var ErrOTPTriesExceeded = errors.New("otp tries exceeded")
var ErrNoToken = errors.New("no token provided")
var ErrInvalidToken = errors.New("invalid token")

// Account models a registered user and its authentication state.
//
// ConfirmOTP is non-empty only while a confirmation is pending; it is
// cleared when the account is confirmed. Status is an admin-controlled
// active flag, independent of confirmation.
type Account struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	Department   string     `json:"department,omitempty"`
	PasswordHash string     `json:"-"`
	IsConfirmed  bool       `json:"is_confirmed"`
	ConfirmOTP   string     `json:"-"`
	OTPTries     int        `json:"-"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	LoginCount   int        `json:"login_count"`
	Status       bool       `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FullName joins the display name parts.
func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}
