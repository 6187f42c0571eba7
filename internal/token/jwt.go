// Package token issues and verifies the bearer tokens that authenticate API
// requests. Tokens are stateless HS256 JWTs carrying the subject username,
// issue time, and expiry; nothing is persisted, and verification is a pure
// signature-plus-expiry check.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed indicates the token structure or signature could not be
	// validated. No claim of a malformed token may be trusted.
	ErrMalformed = errors.New("token is malformed")

	// ErrExpired indicates a structurally valid token past its expiry.
	ErrExpired = errors.New("token has expired")
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 30 * time.Minute

// Service signs and verifies bearer tokens with a process-wide secret loaded
// once at startup.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. A non-positive ttl falls back to
// DefaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token for the given subject, expiring ttl from now.
func (s *Service) Issue(subject string) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns its subject.
// The signature is validated before any claim is read.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrMalformed
	}
	if !tok.Valid {
		return "", ErrMalformed
	}
	if claims.Subject == "" {
		return "", ErrMalformed
	}
	return claims.Subject, nil
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}
