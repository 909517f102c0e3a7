package config

import (
	"fmt"

	"github.com/skillsenselab/authd/identity"
	"github.com/skillsenselab/authd/logger"
	"github.com/skillsenselab/authd/observability"
	"github.com/skillsenselab/authd/provider/password"
	"github.com/skillsenselab/authd/server"
	"github.com/skillsenselab/authd/token"
)

// Config is the root configuration of the authentication service.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Token         token.Config         `yaml:"token" mapstructure:"token"`
	Password      password.Config      `yaml:"password" mapstructure:"password"`
	Identity      IdentityConfig       `yaml:"identity" mapstructure:"identity"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// IdentityConfig configures the identity registry.
type IdentityConfig struct {
	// Functions restricts which functions may be granted through the HTTP
	// endpoints. Empty means unrestricted.
	Functions []string `yaml:"functions" mapstructure:"functions"`

	// Seeds are identities registered at startup, before the server accepts
	// requests. Creation through the API requires an already-authorized
	// caller, so the first administrator has to come from here.
	Seeds []identity.Spec `yaml:"seeds" mapstructure:"seeds"`
}

// ApplyDefaults applies default values to all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "authd"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Token.ApplyDefaults()
	c.Password.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates all sections.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}

	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Token.Validate(); err != nil {
		return err
	}
	if err := c.Password.Validate(); err != nil {
		return err
	}
	if err := c.Observability.Validate(); err != nil {
		return err
	}

	for _, fn := range c.Identity.Functions {
		if !identity.FunctionPattern.MatchString(fn) {
			return fmt.Errorf("identity.functions contains malformed name %q", fn)
		}
	}
	return nil
}
