// Package password provides credential hashing, verification, and random
// password generation.
//
// Two hashing families are supported as a closed set: Argon2id (memory-hard,
// PHC-formatted records) and Bcrypt (iterated-salt, library default cost).
// Every record is self-describing — algorithm tag, work parameters, salt, and
// digest travel together — so verification needs no external parameter
// storage, and records remain verifiable by any standard-conformant verifier.
//
// # Hashing and Verifying
//
//	record, err := password.Hash("s3cret", password.Argon2id)
//	if err != nil {
//		// Randomness source or primitive failure; configuration-level error.
//	}
//
//	ok, err := password.Verify(record, "s3cret", password.Argon2id)
//	if err != nil {
//		// Record is structurally malformed or from the wrong family.
//	}
//	if !ok {
//		// Legitimate mismatch; never an error.
//	}
//
// The alg argument to Verify must match the family the record was produced
// with. The record's own prefix identifies its family, so a mismatch is a
// caller error and is reported as ErrInvalidHashFormat rather than a false
// verification.
//
// # Generating Passwords
//
//	pw := password.GenerateStrongPassword(12)
//
// The result always contains at least one lowercase letter, one uppercase
// letter, one digit, and one special character. Lengths below 4 cannot
// satisfy that contract and panic.
//
// # Performance Notes
//
// Argon2id is intentionally memory-hard and slow. Keep hashing off
// latency-sensitive request paths or run it on a dedicated worker. All
// operations are pure and safe for concurrent use; each call draws its own
// salt.
package password
