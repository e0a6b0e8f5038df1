//go:build linux && cgo

package xcrypt

/*
#include <stdlib.h>
#include <crypt.h>
*/
import "C"
import "unsafe"

// cryptData owns the struct crypt_data scratch block required by crypt_r.
//
// The block lives on the C heap because crypt_data is large (tens of
// kilobytes) and its address is handed to C for the duration of the call.
// crypt(3) requires the block to be zeroed before first use; calloc takes
// care of that. Each call to [Crypt] allocates its own block and frees it
// before returning, so concurrent calls never share scratch state.
type cryptData struct {
	p *C.struct_crypt_data
}

func newCryptData() cryptData {
	p := (*C.struct_crypt_data)(C.calloc(1, C.sizeof_struct_crypt_data))
	if p == nil {
		// The size is fixed and small relative to available memory; a
		// failed allocation here is resource exhaustion the caller cannot
		// recover from.
		panic("xcrypt: cannot allocate crypt_data scratch state")
	}
	return cryptData{p: p}
}

func (d cryptData) ptr() *C.struct_crypt_data { return d.p }

func (d cryptData) free() { C.free(unsafe.Pointer(d.p)) }
