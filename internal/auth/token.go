package auth

import (
	"errors"
	"fmt"
	"time"

	"food-order/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any signature that cannot be trusted.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and checks HS256 signatures.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type claims struct {
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
	Verified bool       `json:"verified"`
	Name     string     `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// NewTokenManager creates a TokenManager signing with secret.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate signs payload.
func (m *TokenManager) Generate(payload model.AuthPayload) (string, error) {
	now := m.now()
	c := claims{
		Email:    payload.Email,
		Role:     payload.Role,
		Verified: payload.Verified,
		Name:     payload.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses token and returns its payload.
func (m *TokenManager) Validate(token string) (*model.AuthPayload, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return &model.AuthPayload{
		ID:       id,
		Email:    c.Email,
		Role:     c.Role,
		Verified: c.Verified,
		Name:     c.Name,
	}, nil
}
