// This is free and unencumbered software released into the public domain.

package openpgp

import "crypto/sha1"

// Decrypt implements the decrypt pipeline of spec.md §4.9. It is
// grounded on original_source/src/decrypt.c's general shape
// (decrypt_session_key then body decrypt) and pktparser.c's
// _tgpg_parse_encrypted_message walk, but written directly from the
// prose algorithm: none of the decrypt.c variants retrieved into the
// example pack are the authoritative MDC-aware one spec.md §9 names.
func (ctx *Context) Decrypt(ciphertext, plain *Data) error {
	buf := ciphertext.Bytes()
	r := newPacketReader(buf)

	var (
		matchedKey  PublicKeyRecord
		matchedEnc  MPI
		haveMatch   bool
		sawAnyPKESK bool
		body        []byte
		mdc         bool
		found       bool
	)

loop:
	for !r.done() {
		pkt, err := r.next()
		if err != nil {
			return err
		}
		switch pkt.tag {
		case tagMarker, tagSymKeyEnc:
			continue
		case tagPubKeyEnc:
			sawAnyPKESK = true
			pk, err := parsePKESKForRSA(pkt.body)
			if err != nil {
				return err
			}
			if !haveMatch && pk.algo == PKRSA {
				if rec, ok := ctx.Keys.lookup(pk.algo, pk.id); ok {
					matchedKey = rec
					matchedEnc = pk.enc[0]
					haveMatch = true
				}
			}
		case tagEncryptedMDC:
			mdc = true
			body = pkt.body
			found = true
			break loop
		case tagEncrypted:
			mdc = false
			body = pkt.body
			found = true
			break loop
		default:
			return newErr(ErrUnexpectedPacket)
		}
	}

	if !found {
		if sawAnyPKESK {
			return newErr(ErrNoSecKey)
		}
		return newErr(ErrNoData)
	}
	if !mdc && ctx.Flags&MandatoryMDC != 0 {
		return newErr(ErrMDCFailed)
	}
	if !haveMatch {
		return newErr(ErrNoSecKey)
	}

	plainFrame, err := rsaDecryptRaw(matchedKey, matchedEnc)
	if err != nil {
		return err
	}
	defer wipe(plainFrame)

	unpadded, err := emePKCS1Decode(plainFrame)
	if err != nil {
		return err
	}

	algo, sessKey, err := parseSessionKeyFrame(unpadded)
	if err != nil {
		return err
	}

	blocksize, err := cipherBlockLen(algo)
	if err != nil {
		return err
	}
	if len(body) < blocksize+2 {
		return newErr(ErrInvalidMessage)
	}

	block, err := newBlockCipher(algo, sessKey)
	if err != nil {
		return err
	}

	resync := ocfbResyncOn
	if mdc {
		resync = ocfbResyncOff
	}
	stream, prefix, err := newOCFBDecrypter(block, body, resync)
	if err != nil {
		return err
	}
	defer wipe(prefix)

	if prefix[blocksize-2] != prefix[blocksize] || prefix[blocksize-1] != prefix[blocksize+1] {
		return newErr(ErrInvalidMessage)
	}

	rest := body[blocksize+2:]
	decrypted := make([]byte, len(rest))
	stream.XORKeyStream(decrypted, rest)
	defer wipe(decrypted)

	var literalStream []byte
	if mdc {
		if len(decrypted) < 22 {
			return newErr(ErrMDCFailed)
		}
		hashed := decrypted[:len(decrypted)-20]
		mdcHeader := decrypted[len(decrypted)-22 : len(decrypted)-20]
		wantHash := decrypted[len(decrypted)-20:]
		if mdcHeader[0] != 0xD3 || mdcHeader[1] != 20 {
			return newErr(ErrMDCFailed)
		}
		h := sha1.New()
		h.Write(prefix)
		h.Write(hashed)
		got := h.Sum(nil)
		if !bytesEqual(got, wantHash) {
			return newErr(ErrMDCFailed)
		}
		literalStream = decrypted[:len(decrypted)-22]
	} else {
		literalStream = decrypted
	}

	pr := newPacketReader(literalStream)
	if pr.done() {
		return newErr(ErrInvalidMessage)
	}
	litPkt, err := pr.next()
	if err != nil {
		return err
	}
	if litPkt.tag != tagPlaintext {
		return newErr(ErrUnexpectedPacket)
	}
	lit, err := parseLiteral(litPkt.body)
	if err != nil {
		return err
	}

	plain.SetBytes(lit.payload)
	return nil
}
