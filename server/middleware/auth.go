package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/authd/authctx"
	"github.com/skillsenselab/authd/token"
)

// VerifyFunc checks a bearer token and returns its decoded claims.
type VerifyFunc func(tok string) (*token.Claims, bool)

// Claims returns middleware that reads the Authorization header, verifies
// the bearer token, and attaches the claims to the request context. It never
// rejects on its own: requests without a verifiable token simply proceed
// anonymously and downstream guards decide.
func Claims(verify VerifyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if claims, ok := verify(tok); ok {
				c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), claims))
			}
		}
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value. The
// scheme word is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}

// RequireFunction returns a guard rejecting any request whose verified
// claims do not grant the named function. The rejection is a 403 with an
// empty body so unauthorized callers learn nothing about the cause.
func RequireFunction(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authctx.Get(c.Request.Context())
		if !ok || !claims.HasFunction(name) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
