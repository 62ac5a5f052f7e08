package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhub/account-service/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := NewTokenService("secret", 0)

	token, err := tokens.Issue("64f1c0ffee0000000000abcd", "ada@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if identity.ID != "64f1c0ffee0000000000abcd" || identity.Email != "ada@example.com" {
		t.Fatalf("identity mismatch: %+v", identity)
	}
}

func TestTokenService_NoExpiryByDefault(t *testing.T) {
	tokens := NewTokenService("secret", 0)

	token, err := tokens.Issue("id", "ada@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, ok := claims["exp"]; ok {
		t.Fatalf("zero TTL must not set an exp claim")
	}
}

func TestTokenService_TTLSetsExpiry(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)

	token, err := tokens.Issue("id", "ada@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("expected exp claim")
	}
	if time.Until(time.Unix(int64(exp), 0)) < 55*time.Minute {
		t.Fatalf("exp claim not roughly one hour out")
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	tokens := NewTokenService("secret", 0)

	token, err := tokens.Issue("id", "ada@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// The final base64 character carries unused trailing bits, so flip
	// the one before it to guarantee the decoded signature changes.
	tampered := []byte(token)
	i := len(tampered) - 2
	if tampered[i] == 'A' {
		tampered[i] = 'B'
	} else {
		tampered[i] = 'A'
	}

	if _, err := tokens.Verify(string(tampered)); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret", 0).Issue("id", "ada@example.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewTokenService("other", 0).Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	tokens := NewTokenService("secret", 0)
	if _, err := tokens.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
