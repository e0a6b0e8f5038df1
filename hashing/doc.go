// Package hashing exposes the xcrypt bindings through an extensible
// password-hashing driver interface.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface. One driver family
// ships with this package: [CryptHasher], parameterised by the crypt(3)
// scheme it targets:
//
//   - [SchemeYescrypt] ($y$) — recommended for new systems
//   - [SchemeGostYescrypt] ($gy$) — yescrypt with GOST 2012 pre-hashing
//   - [SchemeBcrypt] ($2b$) — widest ecosystem compatibility
//   - [SchemeSHA512Crypt] ($6$) — legacy glibc default, still common in shadow(5)
//
// All of them implement [Hasher], so callers can depend on the interface
// rather than a concrete type.
//
// The [Manager] is a named scheme registry and dispatcher. Register one or
// more [Hasher] implementations, designate a default scheme, then delegate
// all hashing operations through the Manager.
//
// # Quick start
//
//	m, err := hashing.NewDefaultManager() // yescrypt default, all schemes registered
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := m.Make("my-secret-password")
//	ok, _   := m.Check("my-secret-password", hash) // true
//
// # Scheme migration
//
// Call [Manager.NeedsRehash] on every successful login. It returns true
// when the stored hash was produced by a different scheme or with a weaker
// cost than the current default. Re-hash and persist immediately:
//
//	ok, _ := m.CheckWithDetect(password, storedHash)
//	if ok {
//	    if needs, _ := m.NeedsRehash(storedHash); needs {
//	        newHash, _ := m.Make(password)
//	        persist(userID, newHash)
//	    }
//	}
//
// # Hash format
//
// All hashes are in the modular crypt format used by shadow(5):
//
//	$<tag>$<cost parameters>$<salt>$<digest>
//
// Every parameter is self-contained in the string, so no external
// configuration is needed to verify a previously produced hash — the hash
// itself is the setting.
//
// # Platform requirements
//
// This package builds on the xcrypt package and shares its requirements:
// Linux, cgo, and libxcrypt with development headers.
package hashing
