package endpoint

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/authd/fault"
	"github.com/skillsenselab/authd/identity"
	"github.com/skillsenselab/authd/logger"
	"github.com/skillsenselab/authd/observability"
	"github.com/skillsenselab/authd/token"
)

// FunctionAuth is the function an identity must hold to administer the
// registry over HTTP.
const FunctionAuth = "auth"

// Deps bundles the services the handlers operate on. Metrics and Log may be
// nil.
type Deps struct {
	Store  *identity.Store
	Tokens *token.Service

	// ValidFunctions restricts which functions may be granted through the
	// HTTP endpoints. Nil means unrestricted.
	ValidFunctions []string

	Metrics *observability.Metrics
	Log     *logger.Logger
}

func (d Deps) logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Global()
}

// respondFault writes the fault as its mapped HTTP status with the fault
// itself as the body.
func respondFault(c *gin.Context, f *fault.Error) {
	c.JSON(f.HTTPStatus(), f)
}

// respondSuccess writes a success result object, merging any extra fields.
func respondSuccess(c *gin.Context, status int, extra gin.H) {
	body := gin.H{"state": fault.StateSuccess}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// bindSpec decodes the request body into an identity spec.
func bindSpec(c *gin.Context, spec *identity.Spec) *fault.Error {
	if err := c.ShouldBindJSON(spec); err != nil {
		return fault.Request("malformed request body")
	}
	return nil
}
