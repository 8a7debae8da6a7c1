package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mercadillo/storefront/internal/core/domain"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	user := &domain.User{
		Username:    "alice",
		DisplayName: "Alice Doe",
		Role:        domain.RoleStandard,
		AvatarRef:   "alice.png",
	}

	signed, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username: %s", claims.Username)
	}
	if claims.DisplayName != "Alice Doe" {
		t.Fatalf("unexpected display name: %s", claims.DisplayName)
	}
	if claims.Role != domain.RoleStandard {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.AvatarRef != "alice.png" {
		t.Fatalf("unexpected avatar: %s", claims.AvatarRef)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", claims.ExpiresAt)
	}
}

func TestIssuer_Expired(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	// Sign an already-expired token with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: "alice",
		Role:     domain.RoleStandard,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := issuer.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Tampered(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	signed, err := issuer.Issue(&domain.User{Username: "alice", Role: domain.RoleStandard})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flip one byte in the payload section.
	raw := []byte(signed)
	mid := len(raw) / 2
	if raw[mid] == 'a' {
		raw[mid] = 'b'
	} else {
		raw[mid] = 'a'
	}

	if _, err := issuer.Verify(string(raw)); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	signed, err := NewIssuer("secret-a", time.Hour).Issue(&domain.User{Username: "alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewIssuer("secret-b", time.Hour).Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_WrongAlgorithm(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Username: "alice"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := issuer.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
