//go:build linux && cgo

package hashing_test

import (
	"fmt"
	"log"

	"github.com/hasbyte1/go-xcrypt/hashing"
)

// Example_defaultManager demonstrates the recommended out-of-the-box setup.
func Example_defaultManager() {
	// NewDefaultManager registers yescrypt, gost-yescrypt, bcrypt, and
	// sha512crypt. The default scheme is yescrypt.
	m, err := hashing.NewDefaultManager()
	if err != nil {
		log.Fatal(err)
	}

	hash, err := m.Make("my-secret-password")
	if err != nil {
		log.Fatal(err)
	}

	ok, err := m.Check("my-secret-password", hash)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ok)
	// Output: true
}

// ExampleCryptHasher demonstrates a single scheme used directly.
func ExampleCryptHasher() {
	h, err := hashing.NewCryptHasher(hashing.SchemeYescrypt, hashing.DefaultCryptOptions())
	if err != nil {
		log.Fatal(err)
	}

	hash, _ := h.Make("hunter2")
	ok, _ := h.Check("hunter2", hash)
	fmt.Println(ok)
	// Output: true
}

// Example_schemeMigration illustrates the scheme-upgrade pattern: detect
// when a stored hash uses a different scheme than the current default,
// then re-hash on next successful login.
func Example_schemeMigration() {
	m, _ := hashing.NewDefaultManager()

	// Simulate a legacy sha512crypt hash still in the database.
	legacyH, _ := m.Scheme(hashing.SchemeSHA512Crypt)
	legacyHash, _ := legacyH.Make("user-password")

	// On login: first verify the password against whatever scheme the
	// stored hash uses.
	ok, err := m.CheckWithDetect("user-password", legacyHash)
	if err != nil || !ok {
		log.Fatal("login failed")
	}

	// Check whether the hash should be upgraded.
	needs, _ := m.NeedsRehash(legacyHash)
	if needs {
		// Re-hash with the current default (yescrypt) and persist the result.
		newHash, _ := m.Make("user-password")
		_ = newHash // persist newHash to database here
		fmt.Println("password re-hashed with yescrypt")
	}
	// Output: password re-hashed with yescrypt
}

// ExampleDetectScheme demonstrates identifying which scheme produced a hash.
func ExampleDetectScheme() {
	hash := "$y$j9T$VlxJo/WDfFCOPzIIjNMDW.$dsfHohjtMq.tSGo8x8n9EZx9zqVomsGYSfWEyApH1k."
	scheme, ok := hashing.DetectScheme(hash)
	fmt.Println(scheme, ok)
	// Output: yescrypt true
}

// Example_hashInfo shows how to inspect the parameters embedded in a hash.
func Example_hashInfo() {
	h, _ := hashing.NewCryptHasher(hashing.SchemeBcrypt, hashing.CryptOptions{Cost: 4})
	hash, _ := h.Make("inspect-me")

	info, err := h.Info(hash)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(info.Scheme, info.Params["cost"])
	// Output: bcrypt 4
}

// ExampleHasher_interface shows using the Hasher interface for dependency
// injection — callers accept a hashing.Hasher and remain independent of
// which scheme is in use.
func ExampleHasher_interface() {
	storePassword := func(h hashing.Hasher, password string) string {
		hash, _ := h.Make(password)
		return hash
	}
	verifyPassword := func(h hashing.Hasher, password, hash string) bool {
		ok, _ := h.Check(password, hash)
		return ok
	}

	// Use yescrypt.
	yH, _ := hashing.NewCryptHasher(hashing.SchemeYescrypt, hashing.DefaultCryptOptions())
	hash := storePassword(yH, "demo")
	fmt.Println(verifyPassword(yH, "demo", hash))

	// Use sha512crypt — same calling code.
	sH, _ := hashing.NewCryptHasher(hashing.SchemeSHA512Crypt, hashing.DefaultCryptOptions())
	hash = storePassword(sH, "demo")
	fmt.Println(verifyPassword(sH, "demo", hash))

	// Output:
	// true
	// true
}
