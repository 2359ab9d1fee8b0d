// This is free and unencumbered software released into the public domain.

package openpgp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"strconv"
)

// protectAlgoIndex mirrors original_source/src/protect.c's protect_info
// table: how many trailing parameters are passphrase-protected for each
// algorithm atom. Only rsa is unprotected by Unprotect (this library
// decrypts RSA only); a dsa or elg key is recognized and reports
// NotImplemented, while any other algorithm atom reports InvalidAlgo.
var protectAlgoIndex = map[string]int{
	"rsa": 4, // d, p, q, u (4 protected params)
	"dsa": 1, // x
	"elg": 1, // x
}

// encodeAtom renders a canonical-sexp atom token.
func encodeAtom(text []byte) []byte {
	out := []byte(strconv.Itoa(len(text)))
	out = append(out, ':')
	return append(out, text...)
}

func atomStr(s string) []byte {
	return encodeAtom([]byte(s))
}

// readRawList copies the canonical bytes of the list the cursor is
// positioned at (must start with '(') and advances past it.
func readRawList(c *sexpCursor) ([]byte, error) {
	start := c.pos
	n := sexpLength(c.remaining(), len(c.remaining()))
	if n == 0 {
		return nil, newErr(ErrInvalidData)
	}
	raw := c.buf[start : start+n]
	c.pos = start + n
	return raw, nil
}

// Unprotect implements the protected-private-key reader of spec.md §4.7,
// grounded on original_source/src/protect.c (_tgpg_unprotect,
// calculate_mic, do_decryption, merge_lists). sexp must be a canonical
// S-expression. On success it returns the rebuilt unprotected canonical
// key. If sexp is already an unprotected "(private-key ...)" blob,
// Unprotect returns the NoData sentinel error per spec.md §4.7 step 1.
func Unprotect(sexp []byte, passphrase []byte) ([]byte, error) {
	c := newSexpCursor(sexp)
	if err := c.expectOpen(); err != nil {
		return nil, err
	}
	head, err := c.readAtom()
	if err != nil {
		return nil, err
	}
	switch string(head) {
	case "private-key":
		return nil, newErr(ErrNoData)
	case "protected-private-key":
		// proceed
	default:
		return nil, newErr(ErrInvalidData)
	}

	if err := c.expectOpen(); err != nil {
		return nil, err
	}
	algoAtom, err := c.readAtom()
	if err != nil {
		return nil, err
	}
	if _, ok := protectAlgoIndex[string(algoAtom)]; !ok {
		return nil, newErr(ErrInvalidAlgo)
	}
	if string(algoAtom) != "rsa" {
		return nil, newErr(ErrNotImplemented)
	}

	var unprotected [][]byte // raw (n ...), (e ...) lists, in order
	var other [][]byte       // raw sibling lists after (protected ...), e.g. (protected-at ...)
	var salt, iv, ciphertext []byte
	count := 0
	sawProtected := false

	for {
		if c.eof() {
			return nil, newErr(ErrInvalidData)
		}
		if c.buf[c.pos] == ')' {
			c.pos++
			break
		}
		if c.buf[c.pos] != '(' {
			return nil, newErr(ErrInvalidData)
		}
		// peek the list's head atom without consuming the list.
		peek := newSexpCursor(c.buf)
		peek.pos = c.pos
		if err := peek.expectOpen(); err != nil {
			return nil, err
		}
		tok, err := peek.readAtom()
		if err != nil {
			return nil, err
		}
		if string(tok) != "protected" {
			raw, err := readRawList(c)
			if err != nil {
				return nil, err
			}
			if sawProtected {
				other = append(other, raw)
			} else {
				unprotected = append(unprotected, raw)
			}
			continue
		}

		// (protected openpgp-s2k3-sha1-aes-cbc ((sha1 salt count) iv) ciphertext)
		sawProtected = true
		if err := c.expectOpen(); err != nil {
			return nil, err
		}
		if err := c.matchToken("protected"); err != nil {
			return nil, err
		}
		method, err := c.readAtom()
		if err != nil {
			return nil, err
		}
		if string(method) != "openpgp-s2k3-sha1-aes-cbc" {
			return nil, newErr(ErrNotImplemented)
		}
		if err := c.expectOpen(); err != nil {
			return nil, err
		}
		if err := c.expectOpen(); err != nil {
			return nil, err
		}
		if err := c.matchToken("sha1"); err != nil {
			return nil, err
		}
		salt, err = c.readAtom()
		if err != nil {
			return nil, err
		}
		if len(salt) != 8 {
			return nil, newErr(ErrInvalidData)
		}
		countAtom, err := c.readAtom()
		if err != nil {
			return nil, err
		}
		count, err = strconv.Atoi(string(countAtom))
		if err != nil {
			return nil, newErr(ErrInvalidData)
		}
		if err := c.expectClose(); err != nil { // close (sha1 ...)
			return nil, err
		}
		iv, err = c.readAtom()
		if err != nil {
			return nil, err
		}
		if len(iv) != aes.BlockSize {
			return nil, newErr(ErrInvalidData)
		}
		if err := c.expectClose(); err != nil { // close ((sha1...) iv)
			return nil, err
		}
		ciphertext, err = c.readAtom()
		if err != nil {
			return nil, err
		}
		if err := c.expectClose(); err != nil { // close (protected ...)
			return nil, err
		}
	}
	if !sawProtected {
		return nil, newErr(ErrInvalidData)
	}
	if err := c.expectClose(); err != nil { // close (protected-private-key ...)
		return nil, err
	}

	if len(ciphertext)%aes.BlockSize != 0 || len(ciphertext) == 0 {
		return nil, newErr(ErrInvalidData)
	}

	key, err := s2kHash(s2kIterated, HashSHA1, passphrase, salt, count, 16)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, wrapErr(ErrCryptError, err)
	}
	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)
	defer wipe(plain)

	if len(plain) < 2 || plain[0] != '(' || plain[1] != '(' {
		return nil, newErr(ErrInvalidPassphrase)
	}
	protlen := sexpLength(plain, len(plain))
	if protlen == 0 || protlen > len(plain) {
		return nil, newErr(ErrInvalidPassphrase)
	}
	slack := len(plain) - protlen
	if slack >= aes.BlockSize {
		return nil, newErr(ErrInvalidPassphrase)
	}

	cleartext, mic, err := parseProtectedParams(plain[:protlen])
	if err != nil {
		return nil, err
	}

	// Rebuild: (private-key (rsa <n><e><cleartext d,p,q,u>) <other...>)
	var algoList []byte
	algoList = append(algoList, '(')
	algoList = append(algoList, atomStr(string(algoAtom))...)
	for _, u := range unprotected {
		algoList = append(algoList, u...)
	}
	for _, ct := range cleartext {
		algoList = append(algoList, ct...)
	}
	algoList = append(algoList, ')')

	sum := sha1.Sum(algoList)
	if !bytesEqual(sum[:], mic) {
		return nil, newErr(ErrInvalidData)
	}

	var out []byte
	out = append(out, '(')
	out = append(out, atomStr("private-key")...)
	out = append(out, algoList...)
	for _, o := range other {
		out = append(out, o...)
	}
	out = append(out, ')')
	return out, nil
}

// parseProtectedParams splits the decrypted "((d..)(p..)(q..)(u..)(hash sha1 <mic>))"
// list into its cleartext MPI lists and the trailing 20-byte MIC.
func parseProtectedParams(blob []byte) (params [][]byte, mic []byte, err error) {
	c := newSexpCursor(blob)
	if err := c.expectOpen(); err != nil {
		return nil, nil, err
	}
	var lists [][]byte
	for {
		if c.eof() {
			return nil, nil, newErr(ErrInvalidData)
		}
		if c.buf[c.pos] == ')' {
			c.pos++
			break
		}
		raw, err := readRawList(c)
		if err != nil {
			return nil, nil, err
		}
		lists = append(lists, raw)
	}
	if len(lists) < 2 {
		return nil, nil, newErr(ErrInvalidData)
	}
	last := lists[len(lists)-1]
	hc := newSexpCursor(last)
	if err := hc.expectOpen(); err != nil {
		return nil, nil, err
	}
	if err := hc.matchToken("hash"); err != nil {
		return nil, nil, err
	}
	if err := hc.matchToken("sha1"); err != nil {
		return nil, nil, err
	}
	micBytes, err := hc.readAtom()
	if err != nil {
		return nil, nil, err
	}
	if len(micBytes) != 20 {
		return nil, nil, newErr(ErrInvalidData)
	}
	return lists[:len(lists)-1], micBytes, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
