package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Check(password, hash)
//	if errors.Is(err, hashing.ErrInvalidHash) {
//	    // hash string is malformed
//	}
var (
	// ErrInvalidHash is returned when a hash string cannot be used because
	// it has an unrecognised scheme tag, missing fields, or is otherwise
	// rejected by libxcrypt.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a constructor is called with an
	// unknown scheme or a cost value outside the scheme's allowed range.
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrSchemeNotFound is returned by [Manager.Scheme] or indirectly by
	// [Manager.Make] / [Manager.Check] when the requested scheme has not
	// been registered.
	ErrSchemeNotFound = errors.New("hashing: scheme not registered")

	// ErrEmptySchemeName is returned by [Manager.RegisterScheme] when the
	// supplied scheme name is an empty string.
	ErrEmptySchemeName = errors.New("hashing: scheme name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterScheme] when a nil
	// [Hasher] is supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")

	// ErrSchemeMismatch is returned by a [Hasher]'s Check, NeedsRehash, or
	// Info method when the hash string was produced by a different scheme
	// than the one the hasher targets.
	ErrSchemeMismatch = errors.New("hashing: hash was produced by a different scheme")
)
