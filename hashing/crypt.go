//go:build linux && cgo

package hashing

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hasbyte1/go-xcrypt/xcrypt"
)

// CryptOptions configures a [CryptHasher].
type CryptOptions struct {
	// Cost is the scheme-specific work factor passed to the setting
	// generator. 0 requests the library's default for the scheme.
	//
	// For bcrypt this is the logarithmic cost in
	// [bcrypt.MinCost, bcrypt.MaxCost]; for sha512crypt the number of
	// rounds; for the yescrypt family an abstract cost level.
	Cost uint
}

// DefaultCryptOptions returns CryptOptions requesting the library default
// cost, which libxcrypt keeps aligned with current hardware.
func DefaultCryptOptions() CryptOptions {
	return CryptOptions{Cost: 0}
}

// CryptHasher hashes passwords with one of the crypt(3) schemes provided
// by libxcrypt.
//
// Salt generation and hashing are delegated to the xcrypt package, so
// every Make call draws a fresh salt from the platform RNG and every hash
// is a standard modular-crypt-format string interoperable with shadow(5),
// PAM, and any other consumer of crypt(3) hashes.
//
// # Thread safety
//
// CryptHasher is immutable after construction and safe for concurrent use.
type CryptHasher struct {
	scheme SchemeName
	cost   uint
}

// NewCryptHasher constructs a CryptHasher for the given scheme.
// Returns [ErrInvalidOption] for an unknown scheme or, for bcrypt, a
// non-zero cost outside [bcrypt.MinCost, bcrypt.MaxCost].
//
// Other schemes accept any cost here; libxcrypt itself rejects an
// out-of-range cost at Make time with an invalid-argument error.
func NewCryptHasher(scheme SchemeName, opts CryptOptions) (*CryptHasher, error) {
	if scheme.Prefix() == "" {
		return nil, fmt.Errorf("%w: unknown scheme %q", ErrInvalidOption, scheme)
	}
	if scheme == SchemeBcrypt && opts.Cost != 0 &&
		(opts.Cost < uint(bcrypt.MinCost) || opts.Cost > uint(bcrypt.MaxCost)) {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &CryptHasher{scheme: scheme, cost: opts.Cost}, nil
}

// Scheme returns the scheme this hasher targets.
func (h *CryptHasher) Scheme() SchemeName { return h.scheme }

// Cost returns the configured work factor (0 means library default).
func (h *CryptHasher) Cost() uint { return h.cost }

// Make hashes password and returns the modular-crypt-format string
// (e.g. "$y$j9T$<salt>$<digest>"). A fresh random salt is generated
// internally for every call.
func (h *CryptHasher) Make(password string) (string, error) {
	setting, err := xcrypt.GenSalt(h.scheme.Prefix(), h.cost, nil)
	if err != nil {
		return "", fmt.Errorf("hashing: %s: generate setting: %w", h.scheme, err)
	}
	hash, err := xcrypt.Crypt(password, setting)
	if err != nil {
		return "", fmt.Errorf("hashing: %s: %w", h.scheme, err)
	}
	return hash, nil
}

// Check verifies that password matches the previously encoded hash by
// re-hashing the password with the stored hash as the setting and
// comparing the two strings in constant time.
//
// Returns (false, nil) on a clean mismatch. Returns [ErrSchemeMismatch]
// when the hash carries a different scheme tag than this hasher, and
// [ErrInvalidHash] (wrapping the underlying xcrypt error) when libxcrypt
// rejects the hash as a setting. A password containing a NUL byte fails
// with the underlying [xcrypt.ErrInvalidArgument] naming the phrase, not
// with ErrInvalidHash.
func (h *CryptHasher) Check(password, hash string) (bool, error) {
	if err := h.checkScheme(hash); err != nil {
		return false, err
	}
	recomputed, err := xcrypt.Crypt(password, hash)
	if errors.Is(err, xcrypt.ErrInvalidArgument) {
		// An invalid-argument failure with a NUL-free password can only
		// be about the hash; a NUL in the password is the caller's input
		// problem and must not be blamed on the stored hash.
		if strings.ContainsRune(password, 0) {
			return false, fmt.Errorf("hashing: %s: %w", h.scheme, err)
		}
		return false, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	if err != nil {
		return false, fmt.Errorf("hashing: %s: %w", h.scheme, err)
	}
	return subtle.ConstantTimeCompare([]byte(recomputed), []byte(hash)) == 1, nil
}

// NeedsRehash returns true when the cost encoded in hash differs from the
// cost a fresh Make would use, or when the hash uses an obsolete variant
// tag of this hasher's scheme (e.g. a $2a$ hash under the $2b$ scheme).
//
// The comparison is against a freshly generated setting rather than a
// table of library defaults, so a Cost of 0 tracks whatever default the
// installed libxcrypt currently uses.
func (h *CryptHasher) NeedsRehash(hash string) (bool, error) {
	if err := h.checkScheme(hash); err != nil {
		return false, err
	}
	if !strings.HasPrefix(hash, h.scheme.Prefix()) {
		// Same family, older variant tag.
		return true, nil
	}
	ref, err := xcrypt.GenSalt(h.scheme.Prefix(), h.cost, nil)
	if err != nil {
		return false, fmt.Errorf("hashing: %s: generate reference setting: %w", h.scheme, err)
	}
	refCost, err := costToken(h.scheme, ref)
	if err != nil {
		return false, fmt.Errorf("hashing: %s: %w", h.scheme, err)
	}
	hashCost, err := costToken(h.scheme, hash)
	if err != nil {
		return false, err
	}
	return refCost != hashCost, nil
}

// Info extracts scheme parameters from a hash string.
// See [HashInfo] for the per-scheme Params keys.
func (h *CryptHasher) Info(hash string) (HashInfo, error) {
	if err := h.checkScheme(hash); err != nil {
		return HashInfo{}, err
	}
	params, err := parseParams(h.scheme, hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{Scheme: h.scheme, Params: params}, nil
}

func (h *CryptHasher) checkScheme(hash string) error {
	detected, ok := DetectScheme(hash)
	if !ok {
		return fmt.Errorf("%w: unrecognised scheme tag", ErrInvalidHash)
	}
	if detected != h.scheme {
		return fmt.Errorf("%w: got %s, this hasher targets %s",
			ErrSchemeMismatch, detected, h.scheme)
	}
	return nil
}

// costToken extracts the cost-bearing field of a setting or hash as an
// opaque token. Tokens from the same scheme are comparable for equality;
// they are not interpreted further.
func costToken(scheme SchemeName, hash string) (string, error) {
	fields := strings.Split(hash, "$")
	// "$y$j9T$..." splits into ["", "y", "j9T", ...].
	if len(fields) < 3 {
		return "", fmt.Errorf("%w: missing fields", ErrInvalidHash)
	}
	switch scheme {
	case SchemeSHA512Crypt:
		// The rounds= field is optional and omitted at the default cost.
		if strings.HasPrefix(fields[2], "rounds=") {
			return fields[2], nil
		}
		return "rounds=5000", nil
	default:
		return fields[2], nil
	}
}

func parseParams(scheme SchemeName, hash string) (map[string]any, error) {
	fields := strings.Split(hash, "$")
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: missing fields", ErrInvalidHash)
	}
	switch scheme {
	case SchemeBcrypt:
		cost, err := bcrypt.Cost([]byte(hash))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
		}
		return map[string]any{"cost": cost}, nil
	case SchemeSHA512Crypt:
		rounds := 5000
		salt := fields[2]
		if strings.HasPrefix(fields[2], "rounds=") {
			n, err := strconv.Atoi(strings.TrimPrefix(fields[2], "rounds="))
			if err != nil {
				return nil, fmt.Errorf("%w: malformed rounds field", ErrInvalidHash)
			}
			rounds = n
			if len(fields) < 5 {
				return nil, fmt.Errorf("%w: missing fields", ErrInvalidHash)
			}
			salt = fields[3]
		}
		return map[string]any{"rounds": rounds, "salt": salt}, nil
	default: // yescrypt family
		return map[string]any{"params": fields[2], "salt": fields[3]}, nil
	}
}
