// Package security provides TLS configuration for the service listener,
// including optional mutual TLS with a client CA.
package security
