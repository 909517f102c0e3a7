package identity

import (
	"regexp"

	"github.com/skillsenselab/authd/provider"
)

var (
	// NamePattern constrains identity names.
	NamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

	// FunctionPattern constrains capability names granted to identities.
	FunctionPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// Record is a registered identity. Name is the primary lookup key and is
// immutable once stored; ID is an opaque generated identifier that is never
// reused.
type Record struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Auth      provider.Credentials `json:"-"`
	Functions []string             `json:"functions"`
}

// Clone returns a copy that shares no mutable state with the original.
func (r *Record) Clone() *Record {
	return &Record{
		ID:        r.ID,
		Name:      r.Name,
		Auth:      r.Auth.Clone(),
		Functions: append([]string{}, r.Functions...),
	}
}

// Spec is a caller-supplied identity mutation request. Nil Auth or Functions
// mean "leave untouched" outside creation mode.
type Spec struct {
	Name      string               `json:"name" validate:"required"`
	Auth      provider.Credentials `json:"auth,omitempty"`
	Functions []string             `json:"functions,omitempty"`
}

// Options controls pipeline semantics.
type Options struct {
	// NewIdentity toggles creation mode: the name must be absent and auth
	// details become mandatory.
	NewIdentity bool

	// ValidFunctions, when non-nil, restricts which function names may be
	// granted. It is supplied by the caller context (e.g. endpoint-bound
	// creation), not enforced universally.
	ValidFunctions []string
}

// Clean is the validation pipeline's output: the only object permitted to
// carry caller input into the store.
type Clean struct {
	Name string

	// Auth is the provider's clean record, nil when credentials are left
	// untouched.
	Auth     provider.Credentials
	AuthType string

	// Functions is nil when the caller did not supply functions (update
	// mode); in creation mode it defaults to an empty, non-nil list.
	Functions []string
}
