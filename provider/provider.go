package provider

import (
	"github.com/skillsenselab/authd/fault"
)

// TypeKey is the credential-blob key naming the provider that owns the blob.
const TypeKey = "type"

// Credentials is an opaque credential blob as decoded from JSON. The core
// never inspects its internal shape beyond the TypeKey entry; everything else
// belongs to exactly one provider.
type Credentials map[string]any

// Type returns the provider type named by the blob, or "" when absent.
func (c Credentials) Type() string {
	t, _ := c[TypeKey].(string)
	return t
}

// String returns the string value under key, or "" when absent or not a
// string.
func (c Credentials) String(key string) string {
	s, _ := c[key].(string)
	return s
}

// Clone returns a shallow copy. Blob values are strings in practice, so a
// shallow copy is sufficient to keep callers from mutating stored records.
func (c Credentials) Clone() Credentials {
	if c == nil {
		return nil
	}
	out := make(Credentials, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Provider is the capability set a credential-verification method must
// implement. All methods are synchronous; an implementation performing
// blocking I/O must not assume it is called under any store lock.
type Provider interface {
	// Validate checks the structural validity of caller-supplied credential
	// material and returns the clean record to hand to Commit. It must not
	// leak secret material beyond what the provider intends to persist.
	Validate(raw Credentials) (Credentials, *fault.Error)

	// Commit transforms a validated clean record into the form persisted on
	// an identity record. Errors are reported to the caller as
	// serverAuthCommitFailed and leave the identity registry unmodified.
	Commit(clean Credentials) (Credentials, error)

	// Authenticate compares supplied credentials against the committed form.
	// It returns nil on success and never returns raw secret material in the
	// fault.
	Authenticate(stored, supplied Credentials) *fault.Error
}
