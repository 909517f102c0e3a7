package server

import (
	"github.com/skillsenselab/authd/server/endpoint"
	"github.com/skillsenselab/authd/server/middleware"
)

// RegisterRoutes mounts the authentication API under the configured base
// path and the probes at the root.
//
// The base group runs the Claims middleware, so any handler under it can
// read verified token claims; the user subtree additionally requires the
// "auth" function. Authentication itself is open by construction.
func (s *Server) RegisterRoutes(serviceName string, deps endpoint.Deps) {
	base := s.engine.Group(s.config.BasePath)
	base.Use(middleware.Claims(deps.Tokens.Verify))
	base.POST("", endpoint.Authenticate(deps))

	user := base.Group("/user", middleware.RequireFunction(endpoint.FunctionAuth))
	user.POST("", endpoint.AddIdentity(deps))
	user.PUT("/:name", endpoint.SetIdentity(deps))
	user.DELETE("/:name", endpoint.RemoveIdentity(deps))

	s.engine.GET("/health", endpoint.Health(serviceName, deps.Store))
	s.engine.GET("/version", endpoint.Version())
}
