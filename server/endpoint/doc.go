// Package endpoint implements the HTTP handlers of the authentication
// service: authentication and token issuance on the service base path,
// identity administration under the protected user subtree, and the
// health and version probes.
//
// Every failure response carries the structured result object from the
// fault package; the HTTP status is derived from its state.
package endpoint
