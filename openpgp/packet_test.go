// This is free and unencumbered software released into the public domain.

package openpgp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPacketFramingRoundTrip(t *testing.T) {
	bodies := [][]byte{
		{},
		{0x01},
		make([]byte, 191),
		make([]byte, 192),
		make([]byte, 8383),
		make([]byte, 8384),
		make([]byte, 70000),
	}
	for _, body := range bodies {
		for i := range body {
			body[i] = byte(i)
		}
		wire := writePacket(nil, tagPlaintext, body)
		r := newPacketReader(wire)
		pkt, err := r.next()
		require.NoError(t, err)
		require.Equal(t, tagPlaintext, pkt.tag)
		require.Equal(t, body, pkt.body)
		require.True(t, r.done())
	}
}

func TestPacketFramingEmitsShortestLength(t *testing.T) {
	require.Equal(t, 2, headerSize(0))
	require.Equal(t, 2, headerSize(191))
	require.Equal(t, 3, headerSize(192))
	require.Equal(t, 3, headerSize(8383))
	require.Equal(t, 6, headerSize(8384))
}

func TestOldFormatPacketHeader(t *testing.T) {
	// CTB 0x98: old format, tag 6 (PublicKey), 1-byte length.
	buf := []byte{0x98, 0x01, 0xAA}
	r := newPacketReader(buf)
	pkt, err := r.next()
	require.NoError(t, err)
	require.Equal(t, tagPublicKey, pkt.tag)
	require.Equal(t, []byte{0xAA}, pkt.body)
}

func TestOldFormatPacketHeaderFourByteLength(t *testing.T) {
	// CTB 0x9A: old format, tag 6 (PublicKey), 4-byte length.
	buf := []byte{0x9A, 0x00, 0x00, 0x00, 0x01, 0xAA}
	r := newPacketReader(buf)
	pkt, err := r.next()
	require.NoError(t, err)
	require.Equal(t, tagPublicKey, pkt.tag)
	require.Equal(t, []byte{0xAA}, pkt.body)
}

func TestPartialLengthNotImplemented(t *testing.T) {
	// new-format CTB, tag 11, first length byte 224 => partial length.
	buf := []byte{0xC0 | 0x40 | 11, 224}
	r := newPacketReader(buf)
	_, err := r.next()
	require.Error(t, err)
	require.True(t, Is(err, ErrNotImplemented))
}

func TestIndeterminateOldLengthNotImplemented(t *testing.T) {
	buf := []byte{0x80 | (6 << 2) | 3}
	r := newPacketReader(buf)
	_, err := r.next()
	require.Error(t, err)
	require.True(t, Is(err, ErrNotImplemented))
}

func TestDeclaredLengthBeyondBufferRejected(t *testing.T) {
	// A packet whose declared body length exceeds the remaining buffer
	// is rejected as an invalid packet.
	buf := []byte{0xC0 | 1, 10} // new-format tag 1, length 10, no body
	r := newPacketReader(buf)
	_, err := r.next()
	require.Error(t, err)
	require.True(t, Is(err, ErrInvalidPacket))
}
