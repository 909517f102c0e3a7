// Package middleware provides the Gin middleware stack for the
// authentication service: panic recovery, request IDs, CORS, body-size
// limits, request logging, and the bearer-token authorization pair.
//
// Claims and RequireFunction split authorization in two: Claims attaches
// verified token claims to the request context without ever rejecting, and
// RequireFunction guards a route group behind a granted function.
package middleware
