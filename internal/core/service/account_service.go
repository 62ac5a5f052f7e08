package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
)

const (
	confirmSubject = "Confirm Account"
	defaultDigits  = 4
)

// Options tunes the lifecycle engine. Zero values fall back to the
// defaults the service shipped with: 4-digit codes, no try limit.
type Options struct {
	// EmailFrom is the sender address on confirmation mails.
	EmailFrom string
	// OTPDigits is the confirmation code length.
	OTPDigits int
}

// AccountService orchestrates registration, login, OTP confirmation and
// OTP resend against the repository, mailer, limiter and token issuer.
type AccountService struct {
	repo    ports.AccountRepository
	mailer  ports.Mailer
	limiter ports.OTPLimiter
	tokens  *TokenService
	auditor ports.LoginAuditor
	opts    Options
	logger  zerolog.Logger
}

// NewAccountService wires the lifecycle engine. limiter and auditor are
// optional; nil disables attempt limiting and login auditing.
func NewAccountService(
	repo ports.AccountRepository,
	mailer ports.Mailer,
	tokens *TokenService,
	limiter ports.OTPLimiter,
	auditor ports.LoginAuditor,
	opts Options,
	logger zerolog.Logger,
) *AccountService {
	if opts.OTPDigits <= 0 {
		opts.OTPDigits = defaultDigits
	}
	return &AccountService{
		repo:    repo,
		mailer:  mailer,
		limiter: limiter,
		tokens:  tokens,
		auditor: auditor,
		opts:    opts,
		logger:  logger,
	}
}

// Register creates an unconfirmed account and mails its confirmation OTP.
// The mail must be delivered before the account is persisted, so a
// notifier failure never leaves an account whose code nobody received.
// The unique email index is the authoritative duplicate guard; the
// FindByEmail check only provides the friendly early error.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisteredAccount, error) {
	email := normalizeEmail(input.Email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrAccountExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("register: lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	otp, err := GenerateOTP(s.opts.OTPDigits)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	if err := s.mailer.Send(ctx, s.opts.EmailFrom, email, confirmSubject, confirmBody(otp)); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("confirmation mail failed")
		return nil, fmt.Errorf("register: send confirmation: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		Phone:        input.Phone,
		Department:   input.Department,
		PasswordHash: string(hash),
		IsConfirmed:  false,
		ConfirmOTP:   otp,
		Status:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("register: persist: %w", err)
	}

	s.logger.Info().Str("email", email).Str("account_id", created.ID).Msg("account registered")

	return &ports.RegisteredAccount{
		ID:        created.ID,
		FirstName: created.FirstName,
		LastName:  created.LastName,
		Email:     created.Email,
		Phone:     created.Phone,
	}, nil
}

// Login verifies credentials and returns a session token. An unknown
// email and a wrong password surface the same client message; the
// distinct sentinels only drive the HTTP classification.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrUnknownCredentials
		}
		return "", fmt.Errorf("login: lookup: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrPasswordMismatch
	}

	if !account.IsConfirmed {
		return "", domain.ErrAccountNotConfirmed
	}
	if !account.Status {
		return "", domain.ErrAccountInactive
	}

	token, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}

	if s.auditor != nil {
		s.auditor.Record(ports.LoginAudit{Email: account.Email, At: time.Now().UTC()})
	}

	s.logger.Info().Str("email", email).Msg("login succeeded")
	return token, nil
}

// VerifyConfirm consumes a pending OTP, flipping the account to
// confirmed. The repository update is awaited before success is
// reported, so a caller seeing success can immediately log in.
func (s *AccountService) VerifyConfirm(ctx context.Context, email, otp string) error {
	email = normalizeEmail(email)

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("verify confirm: lookup: %w", err)
	}

	if account.IsConfirmed {
		return domain.ErrAlreadyConfirmed
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, email)
		if err != nil {
			return fmt.Errorf("verify confirm: limiter: %w", err)
		}
		if !ok {
			return domain.ErrOTPTriesExceeded
		}
	}

	if account.ConfirmOTP == "" || account.ConfirmOTP != strings.TrimSpace(otp) {
		if s.limiter != nil {
			if err := s.limiter.Fail(ctx, email); err != nil {
				s.logger.Warn().Err(err).Str("email", email).Msg("otp limiter bump failed")
			}
		}
		return domain.ErrOTPMismatch
	}

	confirmed := true
	cleared := ""
	if err := s.repo.UpdateByEmail(ctx, email, ports.AccountPatch{
		IsConfirmed: &confirmed,
		ConfirmOTP:  &cleared,
	}); err != nil {
		return fmt.Errorf("verify confirm: persist: %w", err)
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("otp limiter reset failed")
		}
	}

	s.logger.Info().Str("email", email).Msg("account confirmed")
	return nil
}

// ResendConfirmOTP rotates the pending confirmation code. The new code
// is mailed before the rotation is persisted, mirroring Register.
func (s *AccountService) ResendConfirmOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("resend otp: lookup: %w", err)
	}

	if account.IsConfirmed {
		return domain.ErrAlreadyConfirmed
	}

	otp, err := GenerateOTP(s.opts.OTPDigits)
	if err != nil {
		return fmt.Errorf("resend otp: %w", err)
	}

	if err := s.mailer.Send(ctx, s.opts.EmailFrom, email, confirmSubject, confirmBody(otp)); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("confirmation mail failed")
		return fmt.Errorf("resend otp: send confirmation: %w", err)
	}

	unconfirmed := false
	if err := s.repo.UpdateByEmail(ctx, email, ports.AccountPatch{
		IsConfirmed: &unconfirmed,
		ConfirmOTP:  &otp,
	}); err != nil {
		return fmt.Errorf("resend otp: persist: %w", err)
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("otp limiter reset failed")
		}
	}

	s.logger.Info().Str("email", email).Msg("confirmation otp rotated")
	return nil
}

func confirmBody(otp string) string {
	return "<p>Please Confirm your Account.</p><p>OTP: " + otp + "</p>"
}

// normalizeEmail is the fixed case policy: emails are stored and looked
// up trimmed and lowercased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
