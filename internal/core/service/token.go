package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhub/account-service/internal/core/domain"
)

// Identity is the decoded payload of a verified session token.
type Identity struct {
	ID    string
	Email string
}

// TokenService issues and verifies stateless HS256 session tokens.
// A zero TTL issues open-ended tokens with no exp claim.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding the account identity.
func (s *TokenService) Issue(accountID, email string) (string, error) {
	claims := jwt.MapClaims{
		"_id":   accountID,
		"email": email,
	}
	if s.ttl > 0 {
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature and returns the embedded identity.
// Tampered, malformed or expired tokens yield domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	id, _ := claims["_id"].(string)
	email, _ := claims["email"].(string)
	return &Identity{ID: id, Email: email}, nil
}
