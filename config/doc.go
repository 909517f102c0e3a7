// Package config loads and validates the authentication service
// configuration.
//
// Configuration is layered: a config.yml file provides the base, a .env file
// and process environment variables override it through Viper. Environment
// keys use underscores for nesting (e.g. SERVER_PORT, TOKEN_TTL).
package config
