// This is free and unencumbered software released into the public domain.

package openpgp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMPIRoundTrip(t *testing.T) {
	cases := []MPI{
		{Bits: 0, Bytes: []byte{}},
		{Bits: 1, Bytes: []byte{0x01}},
		{Bits: 8, Bytes: []byte{0xFF}},
		{Bits: 9, Bytes: []byte{0x01, 0x00}},
		{Bits: 16, Bytes: []byte{0xAB, 0xCD}},
	}
	for _, m := range cases {
		out := writeMPI(nil, m)
		got, rest, err := readMPI(out)
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, m.Bits, got.Bits)
		require.Equal(t, m.Bytes, got.Bytes)
	}
}

func TestMPINoLeadingZeroReintroduced(t *testing.T) {
	m := MPI{Bits: 8, Bytes: []byte{0xFF}}
	out := writeMPI(nil, m)
	require.Len(t, out, 3) // 2-byte length + 1 magnitude byte, not 2
}

func TestReadMPITruncated(t *testing.T) {
	_, _, err := readMPI([]byte{0x00, 0x09}) // says 9 bits, no payload
	require.Error(t, err)
	require.True(t, Is(err, ErrInvalidMPI))
}

func TestReadMPITooShortHeader(t *testing.T) {
	_, _, err := readMPI([]byte{0x00})
	require.Error(t, err)
	require.True(t, Is(err, ErrInvalidMPI))
}
