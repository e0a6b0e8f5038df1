package hashing

import "strings"

// SchemeName identifies a crypt(3) hashing scheme.
// Using a named string type prevents accidental confusion with plain strings.
type SchemeName string

const (
	// SchemeYescrypt selects yescrypt ($y$), recommended for new systems.
	SchemeYescrypt SchemeName = "yescrypt"
	// SchemeGostYescrypt selects gost-yescrypt ($gy$), yescrypt with
	// GOST R 34.11-2012 pre-hashing as required in some jurisdictions.
	SchemeGostYescrypt SchemeName = "gost-yescrypt"
	// SchemeBcrypt selects bcrypt ($2b$).
	SchemeBcrypt SchemeName = "bcrypt"
	// SchemeSHA512Crypt selects SHA-512 crypt ($6$), the long-time glibc
	// default still found in most existing shadow(5) databases.
	SchemeSHA512Crypt SchemeName = "sha512crypt"
)

// schemePrefixes maps each supported scheme to the tag passed to
// xcrypt.GenSalt and found at the front of its settings and hashes.
var schemePrefixes = map[SchemeName]string{
	SchemeYescrypt:     "$y$",
	SchemeGostYescrypt: "$gy$",
	SchemeBcrypt:       "$2b$",
	SchemeSHA512Crypt:  "$6$",
}

// Prefix returns the scheme tag (e.g. "$y$") for a supported scheme, or
// the empty string for an unknown one.
func (s SchemeName) Prefix() string { return schemePrefixes[s] }

// Hasher is the core interface satisfied by all password-hashing drivers.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash string.
	// A fresh cryptographic salt is generated for every call, so two calls
	// with the same password will produce different outputs.
	Make(password string) (string, error)

	// Check verifies that password matches the previously encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the hash is structurally invalid.
	//
	// Comparison is performed in constant time to prevent timing attacks.
	Check(password, hash string) (bool, error)

	// NeedsRehash returns true when the hash was produced with a cost that
	// differs from the hasher's current configuration, or by an obsolete
	// variant of the hasher's scheme. Callers should re-hash the password
	// on next successful login when this returns true.
	NeedsRehash(hash string) (bool, error)

	// Info extracts metadata from an encoded hash string without verifying
	// it. Useful for auditing, migration tooling, or logging.
	Info(hash string) (HashInfo, error)

	// Scheme returns the SchemeName implemented by this hasher.
	Scheme() SchemeName
}

// HashInfo carries metadata parsed from an encoded hash string.
type HashInfo struct {
	// Scheme is the hashing scheme that produced the hash.
	Scheme SchemeName

	// Params holds scheme-specific parameters extracted from the hash string.
	//
	// For bcrypt:
	//   "cost" → int (logarithmic work factor)
	//
	// For yescrypt and gost-yescrypt:
	//   "params" → string (encoded N/r cost block, e.g. "j9T")
	//   "salt"   → string
	//
	// For sha512crypt:
	//   "rounds" → int (5000 when the hash omits the rounds= field)
	//   "salt"   → string
	Params map[string]any
}

// DetectScheme inspects a hash (or setting) string and returns the
// [SchemeName] that produced it. It is a best-effort heuristic based on
// the scheme tag and does not verify the hash itself.
//
// The second return value is false when the tag is not recognised.
func DetectScheme(hash string) (SchemeName, bool) {
	switch {
	case strings.HasPrefix(hash, "$gy$"):
		return SchemeGostYescrypt, true
	case strings.HasPrefix(hash, "$y$"):
		return SchemeYescrypt, true
	// bcrypt hashes start with $2b$, or $2a$/$2y$ for older variants
	case strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2y$"):
		return SchemeBcrypt, true
	case strings.HasPrefix(hash, "$6$"):
		return SchemeSHA512Crypt, true
	default:
		return "", false
	}
}
