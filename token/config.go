package token

import (
	"fmt"
	"time"
)

// Config configures the token service.
type Config struct {
	// Secret is the HMAC signing key. When empty a random secret is
	// generated at startup; tokens then do not survive a process restart.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// TTL is the default token lifetime (default: 30m).
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`

	// Issuer is the "iss" claim (optional).
	Issuer string `yaml:"issuer" mapstructure:"issuer"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = 30 * time.Minute
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.TTL < 0 {
		return fmt.Errorf("token.ttl must be positive (got: %s)", c.TTL)
	}
	return nil
}
