//go:build linux && cgo

package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe scheme registry and dispatcher for password
// hashing.
//
// Register one or more named [Hasher] implementations, nominate a default
// scheme, and then call [Manager.Make] / [Manager.Check] /
// [Manager.NeedsRehash] through the Manager for all day-to-day hashing
// operations. Because crypt(3) hashes are self-describing, the Manager
// can also route verification by the hash itself ([Manager.CheckWithDetect]),
// which is what makes gradual scheme migrations possible.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterScheme, SetDefaultScheme)
// while allowing concurrent reads (Make, Check, etc.).
type Manager struct {
	mu      sync.RWMutex
	schemes map[SchemeName]Hasher
	def     SchemeName
}

// NewManager creates an empty Manager with the given default scheme name.
// Hashers must be registered with [Manager.RegisterScheme] before any
// hashing operation is invoked through the Manager.
//
// Use [NewDefaultManager] for the batteries-included variant that
// registers all four built-in schemes.
func NewManager(defaultScheme SchemeName) *Manager {
	return &Manager{
		schemes: make(map[SchemeName]Hasher),
		def:     defaultScheme,
	}
}

// NewDefaultManager creates a Manager with all four built-in schemes
// pre-registered at the library's default cost. The default scheme is
// [SchemeYescrypt].
//
// This is the recommended starting point for most applications.
//
//	m, err := hashing.NewDefaultManager()
//	hash, _ := m.Make("secret")
func NewDefaultManager() (*Manager, error) {
	m := NewManager(SchemeYescrypt)
	for _, scheme := range []SchemeName{
		SchemeYescrypt, SchemeGostYescrypt, SchemeBcrypt, SchemeSHA512Crypt,
	} {
		h, err := NewCryptHasher(scheme, DefaultCryptOptions())
		if err != nil {
			return nil, fmt.Errorf("hashing: failed to create default %s hasher: %w", scheme, err)
		}
		if err := m.RegisterScheme(scheme, h); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RegisterScheme adds or replaces a named hasher in the Manager.
// It is safe to call RegisterScheme while other goroutines are using the
// Manager.
func (m *Manager) RegisterScheme(name SchemeName, h Hasher) error {
	if name == "" {
		return ErrEmptySchemeName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schemes[name] = h
	return nil
}

// Scheme returns the [Hasher] registered under name, or [ErrSchemeNotFound]
// if no such scheme has been registered.
func (m *Manager) Scheme(name SchemeName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchemeNotFound, name)
	}
	return h, nil
}

// SetDefaultScheme changes the scheme used by [Manager.Make],
// [Manager.Check], and [Manager.NeedsRehash]. The named scheme must
// already be registered.
func (m *Manager) SetDefaultScheme(name SchemeName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.schemes[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterScheme first",
			ErrSchemeNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultScheme returns the name of the currently configured default scheme.
func (m *Manager) DefaultScheme() SchemeName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasScheme reports whether a scheme with the given name is registered.
func (m *Manager) HasScheme(name SchemeName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.schemes[name]
	return ok
}

// Make hashes password using the default scheme.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against hash using the default scheme.
//
// To verify a hash that was produced by a specific (non-default) scheme,
// use [Manager.CheckWithDetect] or resolve the hasher with [Manager.Scheme]
// first.
func (m *Manager) Check(password, hash string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// CheckWithDetect verifies password against hash by detecting which scheme
// produced the hash. This is what a login path should call while hashes
// from multiple schemes coexist (e.g. during a sha512crypt-to-yescrypt
// migration).
//
// Returns [ErrSchemeNotFound] if the detected scheme is not registered.
// Returns [ErrInvalidHash] if the scheme tag is unrecognised.
func (m *Manager) CheckWithDetect(password, hash string) (bool, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// NeedsRehash reports whether hash should be re-hashed.
//
// It returns true when:
//  1. The hash was produced by a different scheme than the current
//     default, OR
//  2. The hash was produced by the current default scheme but with a
//     different cost than a fresh Make would use.
//
// On the next successful login, callers should call [Manager.Make] and
// persist the new hash when this returns true.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	detected, ok := DetectScheme(hash)
	if !ok {
		return false, ErrInvalidHash
	}

	m.mu.RLock()
	def := m.def
	m.mu.RUnlock()

	// Different scheme: always needs rehash to match the current default.
	if detected != def {
		return true, nil
	}

	// Same scheme: delegate to the hasher to compare costs.
	h, err := m.Scheme(detected)
	if err != nil {
		return false, err
	}
	return h.NeedsRehash(hash)
}

// Info extracts metadata from hash by detecting which scheme produced it.
func (m *Manager) Info(hash string) (HashInfo, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.schemes[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default scheme %q has not been registered",
			ErrSchemeNotFound, m.def)
	}
	return h, nil
}

func (m *Manager) resolveByHash(hash string) (Hasher, error) {
	name, ok := DetectScheme(hash)
	if !ok {
		return nil, ErrInvalidHash
	}
	return m.Scheme(name)
}
