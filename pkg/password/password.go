package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Algorithm selects one of the supported hashing families.
type Algorithm uint8

const (
	// Argon2id is the memory-hard Argon2id derivation, producing a
	// PHC-formatted record.
	Argon2id Algorithm = iota + 1
	// Bcrypt is the iterated-salt bcrypt derivation at the library default
	// cost factor.
	Bcrypt
)

// String returns the canonical family name.
func (a Algorithm) String() string {
	switch a {
	case Argon2id:
		return "argon2id"
	case Bcrypt:
		return "bcrypt"
	default:
		return "unknown"
	}
}

// Argon2Params holds the work parameters embedded in an Argon2id record.
type Argon2Params struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params are the parameters used by Hash for new records.
var DefaultArgon2Params = Argon2Params{
	Memory:  64 * 1024,
	Time:    3,
	Threads: 2,
	SaltLen: 16,
	KeyLen:  32,
}

const argon2idPrefix = "$argon2id$"

// bcrypt records start with $2a$, $2b$, or $2y$ depending on the encoder
// revision; all verify the same way.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// Hash derives a salted, self-describing hash record from plaintext using the
// selected family. The record embeds every parameter needed for later
// verification, so no separate parameter storage is required. Salts come from
// a cryptographically secure source and are never reused across calls.
//
// No length or complexity policy is applied here; empty plaintext is
// accepted. Callers needing policy must enforce it before hashing.
func Hash(plaintext string, alg Algorithm) (string, error) {
	switch alg {
	case Argon2id:
		return hashArgon2id(plaintext, DefaultArgon2Params)
	case Bcrypt:
		encoded, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrHashingFailed, err)
		}
		return string(encoded), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, alg)
	}
}

// Verify recomputes the digest of plaintext using the parameters embedded in
// the encoded record and compares in constant time. A legitimate mismatch
// returns (false, nil); only a structurally malformed record, or a record
// whose family tag does not match alg, returns ErrInvalidHashFormat.
func Verify(encoded, plaintext string, alg Algorithm) (bool, error) {
	switch alg {
	case Argon2id:
		if !strings.HasPrefix(encoded, argon2idPrefix) {
			return false, fmt.Errorf("record is not argon2id: %w", ErrInvalidHashFormat)
		}
		return verifyArgon2id(encoded, plaintext)
	case Bcrypt:
		if !hasBcryptPrefix(encoded) {
			return false, fmt.Errorf("record is not bcrypt: %w", ErrInvalidHashFormat)
		}
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plaintext))
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, fmt.Errorf("%w: %v", ErrInvalidHashFormat, err)
		}
	default:
		return false, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, alg)
	}
}

// NeedsRehash reports whether an Argon2id record was produced with work
// parameters different from want, signalling the stored hash should be
// regenerated on next successful login.
func NeedsRehash(encoded string, want Argon2Params) (bool, error) {
	got, _, _, err := decodeArgon2id(encoded)
	if err != nil {
		return false, err
	}
	return got.Memory != want.Memory || got.Time != want.Time ||
		got.Threads != want.Threads || got.KeyLen != want.KeyLen, nil
}

// hashArgon2id produces a PHC string like:
// $argon2id$v=19$m=65536,t=3,p=2$<b64 salt>$<b64 key>
func hashArgon2id(plaintext string, p Argon2Params) (string, error) {
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: read salt: %v", ErrHashingFailed, err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, p.Time, p.Memory, p.Threads, p.KeyLen)

	// PHC uses base64 without padding.
	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

func verifyArgon2id(encoded, plaintext string) (bool, error) {
	p, salt, key, err := decodeArgon2id(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(plaintext), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return subtle.ConstantTimeCompare(key, computed) == 1, nil
}

// decodeArgon2id parses a PHC string into its parameters, salt, and key.
func decodeArgon2id(encoded string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	// ["", "argon2id", "v=19", "m=..,t=..,p=..", "<salt>", "<key>"]
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("not a PHC argon2id record: %w", ErrInvalidHashFormat)
	}
	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return p, nil, nil, fmt.Errorf("unsupported argon2 version %q: %w", parts[2], ErrInvalidHashFormat)
	}

	for _, kv := range strings.Split(parts[3], ",") {
		pair := strings.SplitN(kv, "=", 2)
		if len(pair) != 2 {
			return p, nil, nil, fmt.Errorf("bad parameter %q: %w", kv, ErrInvalidHashFormat)
		}
		val, err := strconv.ParseUint(pair[1], 10, 32)
		if err != nil {
			return p, nil, nil, fmt.Errorf("bad parameter %q: %w", kv, ErrInvalidHashFormat)
		}
		switch pair[0] {
		case "m":
			p.Memory = uint32(val)
		case "t":
			p.Time = uint32(val)
		case "p":
			p.Threads = uint8(val)
		default:
			return p, nil, nil, fmt.Errorf("unknown parameter %q: %w", pair[0], ErrInvalidHashFormat)
		}
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("decode salt: %w", ErrInvalidHashFormat)
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("decode key: %w", ErrInvalidHashFormat)
	}

	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))

	return p, salt, key, nil
}

func hasBcryptPrefix(encoded string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(encoded, prefix) {
			return true
		}
	}
	return false
}
