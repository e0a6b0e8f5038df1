//go:build linux && cgo

package xcrypt

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// Sentinel errors returned by [GenSalt] and [Crypt].
//
// Use [errors.Is] for comparisons:
//
//	_, err := xcrypt.Crypt(phrase, setting)
//	if errors.Is(err, xcrypt.ErrInvalidArgument) {
//	    // setting string is malformed
//	}
var (
	// ErrInvalidArgument is returned when a caller-supplied value is
	// structurally unusable: an embedded NUL byte, an unrecognised or
	// malformed setting, an invalid prefix or count, or oversized random
	// material. The wrapped message identifies the offending operand.
	ErrInvalidArgument = errors.New("xcrypt: invalid argument")

	// ErrPhraseTooLong is returned by [Crypt] when the phrase exceeds the
	// maximum length supported by the selected hashing method. The phrase
	// is never silently truncated.
	ErrPhraseTooLong = errors.New("xcrypt: phrase is too long for the hashing method")

	// ErrRngUnavailable is returned by [GenSalt] when no random number
	// generator is available on the platform (missing entropy device,
	// permission denied, or an I/O fault reading it). It never arises when
	// the caller supplies its own random bytes.
	ErrRngUnavailable = errors.New("xcrypt: no random number generator is available")

	// ErrIo wraps any other platform-reported failure. The underlying
	// [syscall.Errno] is attached to the chain, so errors.Is(err,
	// unix.ENOMEM) and friends work for diagnostics.
	ErrIo = errors.New("xcrypt: i/o error")
)

func invalidArgument(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, detail)
}

// translateGenSaltError maps the errno captured at the crypt_gensalt_rn
// call site to a sentinel error. Only called when the foreign call returned
// NULL; a non-NULL result is success regardless of the errno value.
func translateGenSaltError(err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		// NULL result but no errno set. Never fabricate success out of
		// a platform anomaly.
		return fmt.Errorf("%w: crypt_gensalt_rn failed with unknown error (errno 0)", ErrIo)
	}
	switch errno {
	case unix.EINVAL:
		return invalidArgument("invalid prefix, count, or random bytes")
	case unix.ENOSYS, unix.EACCES, unix.EIO:
		return fmt.Errorf("%w: %w", ErrRngUnavailable, errno)
	default:
		return fmt.Errorf("%w: crypt_gensalt_rn: %w", ErrIo, errno)
	}
}

// translateCryptError is the crypt_r counterpart of [translateGenSaltError].
// The same raw codes carry different meanings at this call site.
func translateCryptError(err error) error {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return fmt.Errorf("%w: crypt_r failed with unknown error (errno 0)", ErrIo)
	}
	switch errno {
	case unix.EINVAL:
		return invalidArgument("invalid setting")
	case unix.ERANGE:
		return ErrPhraseTooLong
	default:
		return fmt.Errorf("%w: crypt_r: %w", ErrIo, errno)
	}
}
