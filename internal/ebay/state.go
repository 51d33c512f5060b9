package ebay

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	stateTTL    = 10 * time.Minute
	stateIssuer = "bullion-desk"
)

// ErrInvalidState is returned when the OAuth state parameter fails
// verification.
var ErrInvalidState = errors.New("invalid OAuth state")

// StateSigner issues and verifies the OAuth state parameter as a short-lived
// HS256 JWT. A signer with an empty secret issues no state and accepts any.
type StateSigner struct {
	secret  []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

// NewStateSigner creates a StateSigner for the given secret.
func NewStateSigner(secret string) *StateSigner {
	return &StateSigner{
		secret:  []byte(secret),
		ttl:     stateTTL,
		nowFunc: time.Now,
	}
}

// Enabled reports whether state signing is configured.
func (s *StateSigner) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

// Issue returns a signed state value, or "" when signing is disabled.
func (s *StateSigner) Issue() (string, error) {
	if !s.Enabled() {
		return "", nil
	}

	now := s.nowFunc()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    stateIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing state: %w", err)
	}
	return signed, nil
}

// Verify checks a state value returned on the callback.
func (s *StateSigner) Verify(state string) error {
	if !s.Enabled() {
		return nil
	}
	if state == "" {
		return fmt.Errorf("%w: missing", ErrInvalidState)
	}

	_, err := jwt.ParseWithClaims(
		state,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(stateIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.nowFunc),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return nil
}
