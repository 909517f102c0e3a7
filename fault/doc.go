// Package fault defines the closed failure-state taxonomy shared by the
// identity pipeline, authentication providers, and the HTTP layer.
//
// Every failure crossing the identity-mutation boundary is a *fault.Error
// carrying one of the enumerated states and a human-readable reason. No
// other error type crosses that boundary; provider Commit errors are
// converted at the store.
//
//	if f := store.Remove("alice"); f != nil {
//	    c.JSON(f.HTTPStatus(), f)
//	    return
//	}
package fault
