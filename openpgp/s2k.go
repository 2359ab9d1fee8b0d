// This is free and unencumbered software released into the public domain.

package openpgp

import (
	"crypto/sha1"
	"io"
)

// s2kMode identifies an RFC 4880 §3.7.1 String-to-Key mode.
type s2kMode int

const (
	s2kSimple   s2kMode = 0
	s2kSalted   s2kMode = 1
	s2kIterated s2kMode = 3
)

// s2kCount decodes the one-byte coded iteration count of mode 3, per
// RFC 4880 §3.7.1.3: (16+(c&15)) << ((c>>4)+6).
func s2kCount(c byte) int {
	return (16 + int(c&15)) << ((c >> 4) + 6)
}

// s2kHash implements the salted+iterated String-to-Key hash (spec.md
// §4.5), grounded on original_source/src/s2k.c's _tgpg_s2k_hash. Only
// SHA-1 (hash algo 2) is in scope.
func s2kHash(mode s2kMode, hashAlgo int, passphrase, salt []byte, count, keylen int) ([]byte, error) {
	if hashAlgo != HashSHA1 {
		return nil, newErr(ErrInvalidAlgo)
	}
	if mode == s2kSalted || mode == s2kIterated {
		if len(salt) != 8 {
			return nil, newErr(ErrInvalidValue)
		}
	}

	var nbytes int
	switch mode {
	case s2kSimple:
		nbytes = len(passphrase)
	case s2kSalted:
		nbytes = len(salt) + len(passphrase)
	case s2kIterated:
		nbytes = count
		if min := len(salt) + len(passphrase); nbytes < min {
			nbytes = min
		}
	default:
		return nil, newErr(ErrInvalidValue)
	}

	key := make([]byte, 0, keylen)
	for pass := 0; len(key) < keylen; pass++ {
		h := sha1.New()
		if pass > 0 {
			zeros := make([]byte, pass)
			h.Write(zeros)
		}
		if err := feedStream(h, salt, passphrase, mode, nbytes); err != nil {
			return nil, err
		}
		digest := h.Sum(nil)
		need := keylen - len(key)
		if need > len(digest) {
			need = len(digest)
		}
		key = append(key, digest[:need]...)
	}
	return key, nil
}

// feedStream feeds exactly nbytes bytes drawn from a virtual repeating
// salt||passphrase stream into h, per s2k.c: modes 1/3 prepend the salt
// (possibly truncated if nbytes<len(salt)) and repeat the
// salt||passphrase pair as needed to reach nbytes bytes total. Mode 0
// just repeats the passphrase.
func feedStream(h io.Writer, salt, passphrase []byte, mode s2kMode, nbytes int) error {
	if mode == s2kSimple {
		return feedRepeating(h, passphrase, nbytes)
	}
	combined := append(append([]byte{}, salt...), passphrase...)
	if len(combined) == 0 {
		return newErr(ErrInvalidValue)
	}
	return feedRepeating(h, combined, nbytes)
}

func feedRepeating(h io.Writer, unit []byte, nbytes int) error {
	for nbytes > 0 {
		n := len(unit)
		if n > nbytes {
			n = nbytes
		}
		if _, err := h.Write(unit[:n]); err != nil {
			return wrapErr(ErrSys, err)
		}
		nbytes -= n
	}
	return nil
}
