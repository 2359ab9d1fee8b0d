// This is free and unencumbered software released into the public domain.

package openpgp

import "crypto/rand"

// Encrypt implements the encrypt pipeline of spec.md §4.10, grounded on
// original_source/src/encrypt.c and pktwriter.c. Body encryption always
// uses AES-256 and the tag-9 Encrypted packet (no MDC on the write
// side), matching spec.md §9's note on the write-side tag ambiguity:
// "default to tag 9 if the encrypt pipeline does not yet produce MDC."
func (ctx *Context) Encrypt(plain *Data, recipient PublicKeyRecord, out *Data) error {
	if len(recipient.MPIs) <= mpiE {
		return newErr(ErrInvalidValue)
	}

	const algo = CipherAES256
	keylen, err := cipherKeyLen(algo)
	if err != nil {
		return err
	}
	blocksize, err := cipherBlockLen(algo)
	if err != nil {
		return err
	}

	modBytes := recipient.MPIs[mpiN].ByteLen()
	p := modBytes - (1 + 1) - (1 + keylen + 2)
	if p < 8 {
		return newErr(ErrInvalidValue)
	}

	em, err := emePKCS1Encode(p)
	if err != nil {
		return err
	}
	defer wipe(em)

	sessKey := make([]byte, keylen)
	if _, err := rand.Read(sessKey); err != nil {
		return wrapErr(ErrSys, err)
	}
	defer wipe(sessKey)

	frame := buildSessionKeyFrame(algo, sessKey)
	em = append(em, frame...)
	wipe(frame)
	defer wipe(em)

	encMPI, err := rsaEncryptRaw(recipient, em)
	if err != nil {
		return err
	}

	pkeskBody := writePKESK(recipient.ID, PKRSA, encMPI)

	literal := buildLiteral(plain.Bytes())
	defer wipe(literal)

	block, err := newBlockCipher(algo, sessKey)
	if err != nil {
		return err
	}
	randPrefix := make([]byte, blocksize)
	if _, err := rand.Read(randPrefix); err != nil {
		return wrapErr(ErrSys, err)
	}
	defer wipe(randPrefix)

	stream, prefixCipher, err := newOCFBEncrypter(block, randPrefix, ocfbResyncOn)
	if err != nil {
		return err
	}
	cipherBody := make([]byte, len(literal))
	stream.XORKeyStream(cipherBody, literal)

	symBody := make([]byte, 0, len(prefixCipher)+len(cipherBody))
	symBody = append(symBody, prefixCipher...)
	symBody = append(symBody, cipherBody...)

	result := writePacket(nil, tagPubKeyEnc, pkeskBody)
	result = writePacket(result, tagEncrypted, symBody)

	out.SetBytes(result)
	return nil
}
