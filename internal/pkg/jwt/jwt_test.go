package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", 0)

	token, err := m.GenerateAccessToken("student-1", "student")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.UserID != "student-1" || claims.UserType != "student" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestExpiryIsIssuedAtPlusLifetime(t *testing.T) {
	issued := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	m := NewManager("secret", 0).WithClock(fixedClock(issued))

	token, err := m.GenerateAccessToken("admin-1", "admin")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !claims.ExpiresAt.Time.Equal(issued.Add(24 * time.Hour)) {
		t.Fatalf("expected expiry %s, got %s", issued.Add(24*time.Hour), claims.ExpiresAt.Time)
	}
}

func TestExpiredToken(t *testing.T) {
	issued := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	m := NewManager("secret", 24*time.Hour).WithClock(fixedClock(issued))

	token, err := m.GenerateAccessToken("student-1", "student")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	m.WithClock(fixedClock(issued.Add(23 * time.Hour)))
	if _, err := m.ValidateAccessToken(token); err != nil {
		t.Fatalf("expected token to be valid before expiry, got %v", err)
	}

	m.WithClock(fixedClock(issued.Add(24 * time.Hour)))
	if _, err := m.ValidateAccessToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at expiry, got %v", err)
	}

	m.WithClock(fixedClock(issued.Add(48 * time.Hour)))
	if _, err := m.ValidateAccessToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired after expiry, got %v", err)
	}
}

func TestInvalidTokens(t *testing.T) {
	m := NewManager("secret", 0)
	other := NewManager("rotated-secret", 0)

	foreign, err := other.GenerateAccessToken("student-1", "student")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID:   "admin-1",
		UserType: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("none token error: %v", err)
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		UserID:   "admin-1",
		UserType: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("hs512 token error: %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   "admin-1",
		UserType: "admin",
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("no-expiry token error: %v", err)
	}

	cases := map[string]string{
		"empty":           "",
		"garbage":         "not.a.token",
		"wrong secret":    foreign,
		"alg none":        noneToken,
		"unsupported alg": hs512,
		"missing expiry":  noExpiry,
	}
	for name, token := range cases {
		if _, err := m.ValidateAccessToken(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("%s: expected ErrTokenInvalid, got %v", name, err)
		}
	}
}
