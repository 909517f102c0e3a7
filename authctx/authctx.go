// Package authctx propagates verified token claims through request contexts.
//
// The authorization middleware stores claims after a successful verification;
// downstream guards and handlers retrieve them:
//
//	claims, ok := authctx.Get(c.Request.Context())
//	if !ok || !claims.HasFunction("auth") { ... }
package authctx

import (
	"context"

	"github.com/skillsenselab/authd/token"
)

// contextKey is unexported to prevent collisions with other packages.
type contextKey struct{}

var claimsKey = contextKey{}

// Set stores verified claims in the context.
func Set(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// Get retrieves claims from the context. The second return is false when the
// request never presented a verifiable token.
func Get(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
