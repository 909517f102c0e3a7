// Package identity holds the authoritative registry of named identities and
// the validation pipeline every identity mutation flows through.
//
// The Store owns every Record for the process lifetime; callers only ever see
// clones. All caller input enters a Record through ValidateSpec — there is no
// other write path. The registry is in-memory only and does not survive a
// restart.
package identity
