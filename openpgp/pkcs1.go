// This is free and unencumbered software released into the public domain.

package openpgp

import "crypto/rand"

// emePKCS1Encode builds an OpenPGP-variant EME-PKCS1-v1.5 block with p
// non-zero random padding bytes: [0x02] [p random non-zero bytes] [0x00].
// The leading 0x00 of classic PKCS#1 is omitted because OpenPGP's MPI
// encoding would elide it anyway (spec.md §4.3).
func emePKCS1Encode(p int) ([]byte, error) {
	if p < 8 {
		return nil, newErr(ErrInvalidValue)
	}
	out := make([]byte, 1+p+1)
	out[0] = 0x02
	pad := out[1 : 1+p]
	if _, err := rand.Read(pad); err != nil {
		return nil, wrapErr(ErrSys, err)
	}
	for i, b := range pad {
		for b == 0 {
			var one [1]byte
			if _, err := rand.Read(one[:]); err != nil {
				return nil, wrapErr(ErrSys, err)
			}
			b = one[0]
		}
		pad[i] = b
	}
	out[len(out)-1] = 0x00
	return out, nil
}

// emePKCS1Decode recovers the body following the padding, per spec.md
// §4.3: at least 10 bytes, first byte 0x02, at least 8 non-zero padding
// bytes before the terminating 0x00. Any violation is reported as
// WrongKey, since it is the expected symptom of decrypting under the
// wrong RSA private key rather than of malformed input.
func emePKCS1Decode(em []byte) ([]byte, error) {
	if len(em) < 10 {
		return nil, newErr(ErrWrongKey)
	}
	if em[0] != 0x02 {
		return nil, newErr(ErrWrongKey)
	}
	n := 2
	for n < len(em) && em[n] != 0 {
		n++
	}
	if n >= len(em) {
		return nil, newErr(ErrWrongKey)
	}
	if n-1 < 8 {
		return nil, newErr(ErrWrongKey)
	}
	return em[n+1:], nil
}
