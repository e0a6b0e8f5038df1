// Package xcrypt provides safe Go bindings for the libxcrypt password
// hashing library (crypt(3)).
//
// # Architecture
//
// libxcrypt exposes a family of one-way hashing methods (yescrypt, bcrypt,
// SHA-2 crypt, and others) behind two C entry points. This package wraps
// their reentrant variants:
//
//   - [GenSalt] — crypt_gensalt_rn: compiles a "setting" string (scheme
//     tag, cost parameter, and salt) for use as the second argument to Crypt.
//   - [Crypt] — crypt_r: irreversibly hashes a phrase under a setting,
//     suitable for storage in the system password database (shadow(5)).
//
// Both functions are safe for concurrent use by multiple goroutines: every
// call owns its output buffer and, for [Crypt], a freshly zeroed
// crypt_data scratch block, so no state is shared between calls.
//
// All raw pointers, fixed-size buffers, and errno handling live inside
// this package. Callers only ever see Go strings and the sentinel errors
// declared in errors.go.
//
// # Quick start
//
// Hash a phrase with the best available hashing method and default
// parameters:
//
//	setting, err := xcrypt.GenSalt("", 0, nil)
//	if err != nil { log.Fatal(err) }
//	hash, err := xcrypt.Crypt("hello", setting)
//
// You can also explicitly request a specific hashing method by its scheme
// tag:
//
//	setting, err := xcrypt.GenSalt("$6$", 0, nil)
//	if err != nil { log.Fatal(err) }
//	hash, err := xcrypt.Crypt("hello", setting)
//
// # Verifying a phrase
//
// crypt(3) hashes are self-describing: a stored hash doubles as a setting.
// Re-hash the candidate phrase under the stored hash and compare:
//
//	recomputed, err := xcrypt.Crypt(candidate, storedHash)
//	ok := err == nil && subtle.ConstantTimeCompare([]byte(recomputed), []byte(storedHash)) == 1
//
// The hashing package in this module wraps this pattern in a higher-level
// driver interface.
//
// # Platform requirements
//
// This package requires cgo and links against libcrypt (-lcrypt). It is
// built on Linux only; libxcrypt must be installed with development
// headers (<crypt.h>).
package xcrypt
