package token

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in a bearer token. Subject carries the
// identity name; Functions is the capability snapshot taken at issuance.
type Claims struct {
	jwt.RegisteredClaims
	Functions []string `json:"functions"`
}

// Name returns the identity name the token was issued for.
func (c *Claims) Name() string { return c.Subject }

// HasFunction reports whether the token grants the named function.
func (c *Claims) HasFunction(name string) bool {
	for _, fn := range c.Functions {
		if fn == name {
			return true
		}
	}
	return false
}

// Service signs and verifies bearer tokens with a process-wide HS256 secret.
// Issue and Verify touch no shared mutable state beyond that immutable
// secret, so they are safe to call from any number of goroutines.
type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source. Used by tests to walk tokens across
// their expiry boundary.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a token service. When cfg.Secret is empty a random
// 32-byte secret is generated; it lives only in this process's memory and is
// never persisted or logged.
func NewService(cfg *Config, opts ...Option) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := io.ReadFull(rand.Reader, secret); err != nil {
			return nil, fmt.Errorf("token: generate secret: %w", err)
		}
	}

	s := &Service{
		secret: secret,
		ttl:    cfg.TTL,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// IssueOption overrides per-token issuance parameters.
type IssueOption func(*issueParams)

type issueParams struct {
	ttl time.Duration
}

// WithTTL overrides the configured lifetime for a single token.
func WithTTL(d time.Duration) IssueOption {
	return func(p *issueParams) { p.ttl = d }
}

// Issue signs a token for the named identity carrying a snapshot of its
// granted functions.
func (s *Service) Issue(name string, functions []string, opts ...IssueOption) (string, error) {
	params := issueParams{ttl: s.ttl}
	for _, opt := range opts {
		opt(&params)
	}

	now := s.now().Truncate(time.Second)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(params.ttl)),
		},
		Functions: append([]string{}, functions...),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry. It returns the decoded claims on
// success and (nil, false) on any failure; malformed, tampered, and expired
// tokens are deliberately indistinguishable to the caller.
func (s *Service) Verify(tok string) (*Claims, bool) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}
	return claims, true
}

func (s *Service) keyFunc(t *jwt.Token) (interface{}, error) {
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", t.Method.Alg())
	}
	return s.secret, nil
}
