// Package server hosts the HTTP surface of the authentication service: a
// Gin engine behind an h2c-capable http.Server, the standard middleware
// stack, and the route bindings for authentication, identity
// administration, and the probes.
//
//	srv := server.New(cfg, log)
//	srv.ApplyMiddleware()
//	srv.RegisterRoutes("authd", deps)
//	srv.Start(ctx)
package server
