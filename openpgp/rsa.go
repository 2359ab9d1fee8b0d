// This is free and unencumbered software released into the public domain.

package openpgp

import "math/big"

// rsaDecryptRaw performs raw RSA decryption m = c^d mod n and returns m
// as a big-endian byte string with no leading zero, matching what
// original_source/src/cryptglue.c's _tgpg_pk_decrypt produces through
// libgcrypt. crypto/rsa's own PKCS1 decrypt helpers assume and strip a
// leading 0x00 octet that OpenPGP's MPI encoding never carries in the
// first place, so they can't be reused here; big.Int.Exp gives the same
// modular exponentiation without that assumption.
func rsaDecryptRaw(rec PublicKeyRecord, c MPI) ([]byte, error) {
	if len(rec.MPIs) <= mpiD {
		return nil, newErr(ErrInvalidValue)
	}
	n := rec.MPIs[mpiN].bigInt()
	d := rec.MPIs[mpiD].bigInt()
	cc := c.bigInt()
	if cc.Cmp(n) >= 0 {
		return nil, newErr(ErrWrongKey)
	}
	m := new(big.Int).Exp(cc, d, n)
	return m.Bytes(), nil
}

// rsaEncryptRaw performs raw RSA encryption c = m^e mod n, returning the
// result as an MPI (spec.md §4.10 step 4).
func rsaEncryptRaw(rec PublicKeyRecord, m []byte) (MPI, error) {
	if len(rec.MPIs) <= mpiE {
		return MPI{}, newErr(ErrInvalidValue)
	}
	n := rec.MPIs[mpiN].bigInt()
	e := rec.MPIs[mpiE].bigInt()
	mm := new(big.Int).SetBytes(m)
	if mm.Cmp(n) >= 0 {
		return MPI{}, newErr(ErrInvalidValue)
	}
	c := new(big.Int).Exp(mm, e, n)
	return mpiFromBig(c), nil
}
