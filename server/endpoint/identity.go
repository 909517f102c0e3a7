package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/authd/fault"
	"github.com/skillsenselab/authd/identity"
	"github.com/skillsenselab/authd/validation"
)

// AddIdentity handles POST {base}/user: registers a new identity. Success is
// a bare 201.
func AddIdentity(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var spec identity.Spec
		if f := bindSpec(c, &spec); f != nil {
			d.Metrics.RecordIdentityOp(ctx, "add", string(f.State))
			respondFault(c, f)
			return
		}
		if f := validation.Struct(spec); f != nil {
			d.Metrics.RecordIdentityOp(ctx, "add", string(f.State))
			respondFault(c, f)
			return
		}

		if _, f := d.Store.Add(spec, identity.Options{ValidFunctions: d.ValidFunctions}); f != nil {
			d.Metrics.RecordIdentityOp(ctx, "add", string(f.State))
			respondFault(c, f)
			return
		}

		d.Metrics.RecordIdentityOp(ctx, "add", string(fault.StateSuccess))
		c.Status(http.StatusCreated)
	}
}

// SetIdentity handles PUT {base}/user/:name: applies the provided fields to
// an existing identity. The path parameter names the identity; a name in the
// body is ignored.
func SetIdentity(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var spec identity.Spec
		if f := bindSpec(c, &spec); f != nil {
			d.Metrics.RecordIdentityOp(ctx, "set", string(f.State))
			respondFault(c, f)
			return
		}
		spec.Name = c.Param("name")

		if _, f := d.Store.Set(spec, identity.Options{ValidFunctions: d.ValidFunctions}); f != nil {
			d.Metrics.RecordIdentityOp(ctx, "set", string(f.State))
			respondFault(c, f)
			return
		}

		d.Metrics.RecordIdentityOp(ctx, "set", string(fault.StateSuccess))
		respondSuccess(c, http.StatusOK, nil)
	}
}

// RemoveIdentity handles DELETE {base}/user/:name.
func RemoveIdentity(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if f := d.Store.Remove(c.Param("name")); f != nil {
			d.Metrics.RecordIdentityOp(ctx, "remove", string(f.State))
			respondFault(c, f)
			return
		}

		d.Metrics.RecordIdentityOp(ctx, "remove", string(fault.StateSuccess))
		respondSuccess(c, http.StatusOK, nil)
	}
}
