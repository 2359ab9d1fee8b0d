// This is free and unencumbered software released into the public domain.

package openpgp

import "crypto/cipher"

// OpenPGP-CFB ("OCFB"), RFC 4880 §13.9, glossary "OpenPGP-CFB". Go's
// standard library removed its CFB-resync primitive along with the old
// crypto/openpgp package, and golang.org/x/crypto/openpgp's equivalent
// type is unexported, so this is hand-rolled here, grounded on the
// construction visible in
// _examples/other_examples/.../symmetrically_encrypted.go.go (the old
// stdlib crypto/openpgp/packet, which this mirrors closely): a
// blocksize random prefix is CFB-encrypted, its last two bytes are
// repeated and re-encrypted as a "quick check", and then (resync mode
// only) the feedback register is resynchronized from ciphertext bytes
// [2:blocksize+2] before the remaining stream continues as ordinary
// full-block CFB.

// ocfbResync selects whether the feedback register resynchronizes
// after the two-byte quick check (the classic "CFB-PGP" body cipher) or
// continues uninterrupted (the MDC body cipher, tag 18).
type ocfbResync int

const (
	ocfbResyncOn ocfbResync = iota
	ocfbResyncOff
)

type ocfbStream struct {
	b         cipher.Block
	fre       []byte
	outUsed   int
	decrypt   bool
}

// newOCFBDecrypter sets up decryption of an OpenPGP-CFB stream whose
// first blockSize()+2 bytes of ciphertext are the random-prefix quick
// check. It returns the decrypted prefix (blockSize+2 bytes) and a
// Stream positioned to decrypt the remaining ciphertext via
// XORKeyStream.
func newOCFBDecrypter(block cipher.Block, ciphertext []byte, resync ocfbResync) (cipher.Stream, []byte, error) {
	blockSize := block.BlockSize()
	if len(ciphertext) < blockSize+2 {
		return nil, nil, newErr(ErrInvalidMessage)
	}

	x := &ocfbStream{b: block, fre: make([]byte, blockSize), decrypt: true}
	prefix := make([]byte, blockSize+2)

	block.Encrypt(x.fre, x.fre)
	for i := 0; i < blockSize; i++ {
		prefix[i] = ciphertext[i] ^ x.fre[i]
	}

	block.Encrypt(x.fre, ciphertext[:blockSize])
	prefix[blockSize] = ciphertext[blockSize] ^ x.fre[0]
	prefix[blockSize+1] = ciphertext[blockSize+1] ^ x.fre[1]

	if resync == ocfbResyncOn {
		block.Encrypt(x.fre, ciphertext[2:blockSize+2])
		x.outUsed = 0
	} else {
		x.fre[0] = ciphertext[blockSize]
		x.fre[1] = ciphertext[blockSize+1]
		x.outUsed = 2
	}
	return x, prefix, nil
}

// newOCFBEncrypter is the mirror of newOCFBDecrypter: randData supplies
// the blockSize random prefix bytes, and the returned prefix is the
// ciphertext for those blockSize+2 bytes.
func newOCFBEncrypter(block cipher.Block, randData []byte, resync ocfbResync) (cipher.Stream, []byte, error) {
	blockSize := block.BlockSize()
	if len(randData) != blockSize {
		return nil, nil, newErr(ErrInvalidValue)
	}

	x := &ocfbStream{b: block, fre: make([]byte, blockSize), decrypt: false}
	prefix := make([]byte, blockSize+2)

	block.Encrypt(x.fre, x.fre)
	for i := 0; i < blockSize; i++ {
		prefix[i] = randData[i] ^ x.fre[i]
	}

	block.Encrypt(x.fre, prefix[:blockSize])
	prefix[blockSize] = x.fre[0] ^ randData[blockSize-2]
	prefix[blockSize+1] = x.fre[1] ^ randData[blockSize-1]

	if resync == ocfbResyncOn {
		block.Encrypt(x.fre, prefix[2:])
		x.outUsed = 0
	} else {
		x.fre[0] = prefix[blockSize]
		x.fre[1] = prefix[blockSize+1]
		x.outUsed = 2
	}
	return x, prefix, nil
}

// XORKeyStream advances the feedback register and produces dst from
// src. Encryption feeds the resulting ciphertext byte back into the
// register in place; decryption must feed back the *ciphertext* byte
// (src), which differs from the plaintext byte written to dst, so the
// two directions update fre differently.
func (x *ocfbStream) XORKeyStream(dst, src []byte) {
	for i := 0; i < len(src); i++ {
		if x.outUsed == len(x.fre) {
			x.b.Encrypt(x.fre, x.fre)
			x.outUsed = 0
		}
		if x.decrypt {
			c := src[i]
			dst[i] = x.fre[x.outUsed] ^ src[i]
			x.fre[x.outUsed] = c
		} else {
			x.fre[x.outUsed] ^= src[i]
			dst[i] = x.fre[x.outUsed]
		}
		x.outUsed++
	}
}
