// Package provider defines the contract every credential-verification method
// must implement, and the registry the rest of the system resolves providers
// from.
//
// A provider owns the internal shape of the credential blobs it produces; the
// core only ever reads the "type" key to route to the right provider. The
// three-step contract is:
//
//   - Validate: structural check of caller-supplied credential material,
//     producing the clean record that may be committed. Touches no storage.
//   - Commit: transform the clean record into the form persisted on an
//     identity record (e.g. salt and hash a password).
//   - Authenticate: compare supplied credentials against the committed form.
//
// Providers are registered under a unique type string at process start:
//
//	reg := provider.NewRegistry()
//	if err := reg.Register("password", password.New(cfg)); err != nil { ... }
//
// A provider must never be able to crash the host process: Commit panics are
// recovered at the identity store boundary, and Validate/Authenticate are
// expected to return structured faults rather than panic.
package provider
