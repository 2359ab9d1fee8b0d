// This is free and unencumbered software released into the public domain.

package openpgp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"

	"golang.org/x/crypto/cast5"
)

// cipherKeyLen returns the key length in bytes for a symmetric algo id.
func cipherKeyLen(algo int) (int, error) {
	switch algo {
	case Cipher3DES:
		return 24, nil
	case CipherCAST5:
		return 16, nil
	case CipherAES128:
		return 16, nil
	case CipherAES192:
		return 24, nil
	case CipherAES256:
		return 32, nil
	default:
		return 0, newErr(ErrInvalidAlgo)
	}
}

// cipherBlockLen returns the cipher's block size in bytes (spec.md §4.9
// step 5: AES variants are 16, 3DES and CAST5 are 8).
func cipherBlockLen(algo int) (int, error) {
	switch algo {
	case Cipher3DES, CipherCAST5:
		return 8, nil
	case CipherAES128, CipherAES192, CipherAES256:
		return 16, nil
	default:
		return 0, newErr(ErrInvalidAlgo)
	}
}

// newBlockCipher builds the cipher.Block for algo/key, grounded on the
// teacher's own golang.org/x/crypto dependency (cast5) plus stdlib aes
// and des for the other recipient ciphers named in spec.md §6.
func newBlockCipher(algo int, key []byte) (cipher.Block, error) {
	var (
		b   cipher.Block
		err error
	)
	switch algo {
	case Cipher3DES:
		b, err = des.NewTripleDESCipher(key)
	case CipherCAST5:
		b, err = cast5.NewCipher(key)
	case CipherAES128, CipherAES192, CipherAES256:
		b, err = aes.NewCipher(key)
	default:
		return nil, newErr(ErrInvalidAlgo)
	}
	if err != nil {
		return nil, wrapErr(ErrCryptError, err)
	}
	return b, nil
}
