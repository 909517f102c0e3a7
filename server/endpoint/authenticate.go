package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/authd/fault"
	"github.com/skillsenselab/authd/identity"
	"github.com/skillsenselab/authd/logger"
)

// Authenticate handles POST on the service base path. It checks the supplied
// credentials against the named identity and, on success, issues a bearer
// token carrying a snapshot of the identity's granted functions.
func Authenticate(d Deps) gin.HandlerFunc {
	log := d.logger().WithComponent("authenticate")

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var spec identity.Spec
		if f := bindSpec(c, &spec); f != nil {
			d.Metrics.RecordAuthentication(ctx, string(f.State))
			respondFault(c, f)
			return
		}

		rec, f := d.Store.Authenticate(spec)
		if f != nil {
			d.Metrics.RecordAuthentication(ctx, string(f.State))
			log.Warn("authentication rejected", logger.Fields(
				logger.FieldIdentity, spec.Name,
				logger.FieldState, string(f.State),
			))
			respondFault(c, f)
			return
		}

		tok, err := d.Tokens.Issue(rec.Name, rec.Functions)
		if err != nil {
			d.Metrics.RecordAuthentication(ctx, string(fault.StateServerConfig))
			log.Error("token issuance failed", logger.ErrorFields("issue", err))
			respondFault(c, fault.ServerConfig("token issuance failed"))
			return
		}

		d.Metrics.RecordAuthentication(ctx, string(fault.StateSuccess))
		d.Metrics.RecordTokenIssued(ctx)
		log.Info("token issued", logger.Fields(logger.FieldIdentity, rec.Name))
		respondSuccess(c, http.StatusOK, gin.H{"token": tok})
	}
}
