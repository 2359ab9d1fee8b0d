// This is free and unencumbered software released into the public domain.

// Package testkeys stands in for the offline keystore-generator tool
// that spec.md §6 "Keystore embedding" treats as an out-of-scope
// collaborator: it builds a compiled-in openpgp.KeyTable from a
// freshly generated RSA key rather than from a canonical S-expression
// private key processed ahead of time, since no such offline tool or
// its reference fixture key is part of this repository. It exists so
// cmd/tgpgtest has a concrete key to encrypt to and decrypt with.
package testkeys

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"math/big"

	"github.com/go-tgpg/tgpg/openpgp"
)

// TestKeyID is the arbitrary key id assigned to the generated test key;
// real OpenPGP key ids are derived from a public-key fingerprint, which
// is signing-key machinery this library does not implement.
var TestKeyID = openpgp.KeyID{High: 0x00000000, Low: 0x74677067} // "tgpg"

// New generates a fresh RSA key and returns it as a one-entry KeyTable
// in the [n, e, d, p, q, u] MPI order spec.md §3 specifies.
func New(bits int) (openpgp.KeyTable, error) {
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("generating test key: %w", err)
	}
	if len(priv.Primes) != 2 {
		return nil, fmt.Errorf("generating test key: expected 2 primes, got %d", len(priv.Primes))
	}
	priv.Precompute()

	n := priv.PublicKey.N
	e := big.NewInt(int64(priv.PublicKey.E))
	d := priv.D
	p := priv.Primes[0]
	q := priv.Primes[1]
	u := new(big.Int).ModInverse(p, q)
	if u == nil {
		return nil, fmt.Errorf("generating test key: p has no inverse mod q")
	}

	rec := openpgp.PublicKeyRecord{
		Algo: openpgp.PKRSA,
		ID:   TestKeyID,
		MPIs: []openpgp.MPI{
			mpiOf(n), mpiOf(e), mpiOf(d), mpiOf(p), mpiOf(q), mpiOf(u),
		},
	}
	return openpgp.KeyTable{rec}, nil
}

func mpiOf(n *big.Int) openpgp.MPI {
	return openpgp.MPI{Bits: uint16(n.BitLen()), Bytes: n.Bytes()}
}
