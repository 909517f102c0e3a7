// Package password implements the password credential-verification provider.
//
// Validate requires a non-empty "password" entry in the credential blob.
// Commit replaces the password with a salted hash (bcrypt or argon2id), so
// the raw secret never reaches the identity store. Authenticate compares a
// supplied password against the committed hash in constant time.
package password
