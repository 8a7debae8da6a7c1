package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mercadillo/storefront/internal/core/domain"
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 24 * time.Hour

// Claims is the identity carried by a session token. The token is the sole
// source of truth for who is calling; nothing is kept server-side.
type Claims struct {
	Username    string `json:"username"`
	DisplayName string `json:"name"`
	Role        string `json:"role"`
	AvatarRef   string `json:"avatar,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with a process-wide HS256 secret.
// Rotating the secret invalidates every outstanding token.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue mints a signed token for user, valid for the configured TTL.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		AvatarRef:   user.AvatarRef,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses raw and returns its claims when the signature checks out and
// the token has not expired. Every failure mode collapses into
// domain.ErrInvalidToken; callers must not behave differently for tampered
// versus expired tokens.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: expired", domain.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
