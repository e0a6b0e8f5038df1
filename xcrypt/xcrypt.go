//go:build linux && cgo

package xcrypt

/*
#cgo LDFLAGS: -lcrypt

#include <stdlib.h>
#include <crypt.h>
*/
import "C"
import (
	"math"
	"strings"
	"unsafe"
)

// GenSalt compiles a string for use as the setting argument to [Crypt].
//
// prefix selects the hashing method by its scheme tag (for example "$y$"
// for yescrypt or "$6$" for SHA-512 crypt) and may embed further tuning
// for methods that support it. The empty string selects the best method
// available in the installed libxcrypt.
//
// count is the method-specific cost (work factor); 0 requests the
// method's default.
//
// random, when non-empty, is consumed by the library to derive the salt
// deterministically instead of drawing from the platform entropy source.
// Identical prefix, count, and random bytes yield a byte-for-byte
// identical setting; this exists to make tests and reproducible
// deployments possible. When random is nil (the common case), the salt is
// drawn from the platform RNG and two calls with the same prefix produce
// different settings.
//
// Internally this calls crypt_gensalt_rn with a per-call output buffer,
// so GenSalt is safe for concurrent use by multiple goroutines.
func GenSalt(prefix string, count uint, random []byte) (string, error) {
	if strings.ContainsRune(prefix, 0) {
		return "", invalidArgument("prefix contains NUL byte")
	}
	if len(random) > math.MaxInt32 {
		return "", invalidArgument("too many random bytes")
	}

	var cPrefix *C.char
	if prefix != "" {
		cPrefix = C.CString(prefix)
		defer C.free(unsafe.Pointer(cPrefix))
	}

	var cRandom *C.char
	if len(random) > 0 {
		cRandom = (*C.char)(unsafe.Pointer(&random[0]))
	}

	var out [C.CRYPT_GENSALT_OUTPUT_SIZE]byte
	setting, err := C.crypt_gensalt_rn(
		cPrefix,
		C.ulong(count),
		cRandom,
		C.int(len(random)),
		(*C.char)(unsafe.Pointer(&out[0])),
		C.int(len(out)),
	)
	if setting == nil {
		// errno was captured atomically with the call above; nothing may
		// run between the foreign call and this sample.
		return "", translateGenSaltError(err)
	}
	// A non-NULL result is success; a stale leftover errno is ignored.
	return C.GoString(setting), nil
}

// Crypt irreversibly hashes phrase under setting using a cryptographic
// hashing method, producing a string suitable for storage in the system
// password database (shadow(5)).
//
// setting is either a string produced by [GenSalt] or a previously stored
// hash; in the latter case the output can be compared against the stored
// hash to verify the phrase. The result embeds the scheme tag, cost, and
// salt of the setting followed by the digest.
//
// A phrase longer than the selected method supports fails with
// [ErrPhraseTooLong]; it is never truncated. An unrecognised or malformed
// setting fails with [ErrInvalidArgument]. Both the NULL return of plain
// builds and the "*0"/"*1" failure tokens of failure-token builds of
// libxcrypt are detected as failures; a token is never returned as a hash.
//
// Internally this calls crypt_r with a freshly zeroed crypt_data scratch
// block owned by the call, so Crypt is safe for concurrent use by
// multiple goroutines.
func Crypt(phrase, setting string) (string, error) {
	if strings.ContainsRune(phrase, 0) {
		return "", invalidArgument("phrase contains NUL byte")
	}
	if strings.ContainsRune(setting, 0) {
		return "", invalidArgument("setting contains NUL byte")
	}

	cPhrase := C.CString(phrase)
	defer C.free(unsafe.Pointer(cPhrase))
	cSetting := C.CString(setting)
	defer C.free(unsafe.Pointer(cSetting))

	data := newCryptData()
	defer data.free()

	hash, err := C.crypt_r(cPhrase, cSetting, data.ptr())
	if hash == nil {
		return "", translateCryptError(err)
	}
	// The result points into the scratch block; GoString copies it out
	// before the deferred free releases the block.
	result := C.GoString(hash)
	// libxcrypt built with failure tokens reports errors by returning
	// "*0" (or "*1" when the setting itself was "*0") instead of NULL,
	// with errno set as usual. A '*' result can never be a valid hash,
	// so treat it as the failed call it is. The != setting guard is the
	// crypt(3) documented check.
	if strings.HasPrefix(result, "*") && result != setting {
		return "", translateCryptError(err)
	}
	return result, nil
}
