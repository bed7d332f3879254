package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/config"
)

// Claims is the payload carried by an identity token. The subject is the
// user id.
type Claims struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the token subject.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService issues and verifies HS256 identity tokens with a single
// process-wide secret. It is safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a token service from the startup configuration.
func NewTokenService(cfg config.Config) (*TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET must be set", config.ErrStartupConfigMissing)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", cfg.TokenTTL)
	}
	return &TokenService{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL, now: time.Now}, nil
}

// WithClock returns a copy of the service that reads time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	cp := *s
	cp.now = now
	return &cp
}

// TTL is the lifetime stamped on issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs claims, overwriting iat and exp from the service clock.
func (s *TokenService) Issue(claims Claims) (string, error) {
	if claims.Subject == "" {
		return "", errors.New("token subject is required")
	}

	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and then the expiry of token and returns its
// claims. Failures are ErrInvalidSignature or ErrExpired.
func (s *TokenService) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
}
