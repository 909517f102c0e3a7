// Package token issues and verifies the signed bearer tokens that gate
// access to protected operations.
//
// A token is self-contained: it snapshots the identity name and granted
// functions at issuance and is re-verified structurally (signature + expiry)
// on every use, never by a registry lookup. Later changes to the identity's
// functions do not affect tokens already issued.
//
// The HMAC signing secret is held only in memory. When no secret is
// configured one is generated at startup, which means a restart invalidates
// every outstanding token; that is the designed trade-off for statelessness.
package token
