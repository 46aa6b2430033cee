package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// DefaultExpiry is the lifetime of a session token
const DefaultExpiry = 24 * time.Hour

// Claims represents the JWT claims
type Claims struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// Manager issues and validates session tokens signed with a single
// process-wide HS256 secret. Rotating the secret invalidates every
// outstanding token.
type Manager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewManager creates a token manager. A non-positive expiry falls back to DefaultExpiry.
func NewManager(secret string, expiry time.Duration) *Manager {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Manager{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// WithClock replaces the time source, used for expiry tests
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Expiry returns the configured token lifetime
func (m *Manager) Expiry() time.Duration {
	return m.expiry
}

// GenerateAccessToken generates a new session token for a principal
func (m *Manager) GenerateAccessToken(userID, userType string) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "arunoday-portal",
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateAccessToken validates a session token and returns claims.
// Expiry is reported as ErrTokenExpired, every other failure as ErrTokenInvalid.
func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if claims.UserID == "" || claims.UserType == "" {
			return nil, ErrTokenInvalid
		}
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
