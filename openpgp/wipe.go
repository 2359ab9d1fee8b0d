// This is free and unencumbered software released into the public domain.

package openpgp

import "runtime"

// wipe zeroes b in place. Sensitive buffers (session keys, PKCS#1
// blocks, literal-data scratch) are wiped on every release and error
// path; runtime.KeepAlive prevents the compiler from treating the
// store as dead code ahead of the slice going out of scope.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
