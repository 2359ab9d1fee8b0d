// This is free and unencumbered software released into the public domain.

package openpgp

import (
	"crypto/rand"
	"crypto/rsa"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// testRecord generates a usable RSA test key in the wire order spec.md
// §3 names: n, e, d, p, q, u. The original C test suite's reference key
// (907B5D16 40619DD0) is not part of the retrieved example pack, so
// round-trip tests here generate their own key instead.
func testRecord(t *testing.T, bits int) PublicKeyRecord {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)
	priv.Precompute()
	p, q := priv.Primes[0], priv.Primes[1]
	u := new(big.Int).ModInverse(p, q)
	require.NotNil(t, u)
	mk := func(n *big.Int) MPI { return MPI{Bits: uint16(n.BitLen()), Bytes: n.Bytes()} }
	return PublicKeyRecord{
		Algo: PKRSA,
		ID:   KeyID{High: 0xAABBCCDD, Low: 0x11223344},
		MPIs: []MPI{
			mk(priv.PublicKey.N),
			mk(big.NewInt(int64(priv.PublicKey.E))),
			mk(priv.D),
			mk(p),
			mk(q),
			mk(u),
		},
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	rec := testRecord(t, 1024)
	ctx := NewContext(KeyTable{rec}, 0)

	payloads := [][]byte{
		{0x42},
		[]byte("short message"),
		make([]byte, 4096),
	}
	for i := range payloads[2] {
		payloads[2][i] = byte(i)
	}

	for _, p := range payloads {
		plain := NewDataFromMem(p, false)
		cipherOut := NewData()
		require.NoError(t, ctx.Encrypt(plain, rec, cipherOut))

		decOut := NewData()
		require.NoError(t, ctx.Decrypt(cipherOut, decOut))
		require.Equal(t, p, decOut.Bytes())
	}
}

func TestDecryptWrongRecipientIsNoSecKey(t *testing.T) {
	rec := testRecord(t, 1024)
	other := testRecord(t, 1024)
	other.ID = KeyID{High: 0xDEADBEEF, Low: 0xDEADBEEF}

	ctx := NewContext(KeyTable{rec}, 0)

	plain := NewDataFromMem([]byte("hello"), false)
	cipherOut := NewData()
	require.NoError(t, ctx.Encrypt(plain, other, cipherOut))

	decOut := NewData()
	err := ctx.Decrypt(cipherOut, decOut)
	require.Error(t, err)
	require.True(t, Is(err, ErrNoSecKey))
}

func TestIdentifyEncryptedMessage(t *testing.T) {
	rec := testRecord(t, 1024)
	ctx := NewContext(KeyTable{rec}, 0)
	plain := NewDataFromMem([]byte("hello"), false)
	cipherOut := NewData()
	require.NoError(t, ctx.Encrypt(plain, rec, cipherOut))

	mt, err := Identify(cipherOut.Bytes())
	require.NoError(t, err)
	require.Equal(t, Encrypted, mt)
}
