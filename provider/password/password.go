package password

import (
	"fmt"

	"github.com/skillsenselab/authd/fault"
	"github.com/skillsenselab/authd/provider"
)

// Type is the registry key this provider is registered under.
const Type = "password"

const (
	fieldPassword = "password"
	fieldHash     = "hash"
)

// Provider implements provider.Provider for password credentials.
type Provider struct {
	cfg    Config
	hasher Hasher
}

// New creates the password provider from configuration.
func New(cfg Config) (*Provider, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("password: %w", err)
	}
	return &Provider{cfg: cfg, hasher: newHasher(cfg)}, nil
}

// Validate requires a non-empty password of at least the configured minimum
// length. The clean record carries the raw password forward only so Commit
// can hash it; it is never persisted in this form.
func (p *Provider) Validate(raw provider.Credentials) (provider.Credentials, *fault.Error) {
	pw := raw.String(fieldPassword)
	if pw == "" {
		return nil, fault.Request("password is required")
	}
	if len(pw) < p.cfg.MinLength {
		return nil, fault.Requestf("password must be at least %d characters", p.cfg.MinLength)
	}
	return provider.Credentials{
		provider.TypeKey: Type,
		fieldPassword:    pw,
	}, nil
}

// Commit replaces the validated password with its salted hash.
func (p *Provider) Commit(clean provider.Credentials) (provider.Credentials, error) {
	hash, err := p.hasher.Hash(clean.String(fieldPassword))
	if err != nil {
		return nil, err
	}
	return provider.Credentials{
		provider.TypeKey: Type,
		fieldHash:        hash,
	}, nil
}

// Authenticate compares the supplied password against the committed hash.
// The result shape is identical for every failure mode so callers learn
// nothing beyond pass/fail.
func (p *Provider) Authenticate(stored, supplied provider.Credentials) *fault.Error {
	pw := supplied.String(fieldPassword)
	if pw == "" {
		return fault.Request("password is required")
	}
	hash := stored.String(fieldHash)
	if hash == "" {
		return fault.ServerConfig("stored credentials are missing a password hash")
	}
	if err := p.hasher.Verify(pw, hash); err != nil {
		return fault.AuthFailed("invalid credentials")
	}
	return nil
}
