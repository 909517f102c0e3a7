package endpoint

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/authd/identity"
	"github.com/skillsenselab/authd/observability"
	"github.com/skillsenselab/authd/version"
)

// Health returns the GET /health handler. The identity registry is in-memory
// so the service is up whenever it can answer; the component entry reports
// the registry size for operators.
func Health(serviceName string, store *identity.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sh := observability.NewServiceHealth(serviceName, version.Version)
		sh.AddComponent(observability.Health{
			Name:   "identity",
			Status: observability.HealthStatusUp,
			Details: map[string]string{
				"identities": strconv.Itoa(store.Len()),
			},
		})

		status := http.StatusOK
		if sh.Status == observability.HealthStatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, sh)
	}
}
