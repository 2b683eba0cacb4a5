package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unrelated-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestTokenExpiry_Success(t *testing.T) {
	exp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{"sub": "user-1", "exp": exp.Unix()})

	got, err := TokenExpiry(token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expected %v, got %v", exp, got)
	}
}

func TestTokenExpiry_ExpiredTokenStillParses(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})

	got, err := TokenExpiry(token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expected %v, got %v", exp, got)
	}
}

func TestTokenExpiry_NoExp(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-1"})

	_, err := TokenExpiry(token)
	if !errors.Is(err, ErrNoExpiry) {
		t.Fatalf("expected ErrNoExpiry, got: %v", err)
	}
}

func TestTokenExpiry_NotAJWT(t *testing.T) {
	tests := []string{"", "opaque-token", "a.b.c"}

	for _, tt := range tests {
		if _, err := TokenExpiry(tt); err == nil {
			t.Errorf("expected error for %q", tt)
		}
	}
}
