// This is free and unencumbered software released into the public domain.

package openpgp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPKCS1EncodeDecodeRoundTrip(t *testing.T) {
	em, err := emePKCS1Encode(16)
	require.NoError(t, err)
	require.Len(t, em, 18)
	require.Equal(t, byte(0x02), em[0])
	require.Equal(t, byte(0x00), em[len(em)-1])
	for _, b := range em[1 : len(em)-1] {
		require.NotZero(t, b)
	}

	body := []byte("hello")
	full := append(append([]byte{}, em...), body...)
	got, err := emePKCS1Decode(full)
	require.NoError(t, err)
	require.Equal(t, body, got)
}

func TestPKCS1DecodeRejectsShortBlock(t *testing.T) {
	_, err := emePKCS1Decode(make([]byte, 9))
	require.Error(t, err)
	require.True(t, Is(err, ErrWrongKey))
}

func TestPKCS1DecodeRejectsWrongBlockType(t *testing.T) {
	em := make([]byte, 12)
	em[0] = 0x01
	_, err := emePKCS1Decode(em)
	require.Error(t, err)
	require.True(t, Is(err, ErrWrongKey))
}

func TestPKCS1DecodeRejectsShortPadding(t *testing.T) {
	em := make([]byte, 12)
	em[0] = 0x02
	em[1] = 0xFF
	em[2] = 0xFF
	em[3] = 0x00 // only 2 non-zero padding bytes before terminator
	_, err := emePKCS1Decode(em)
	require.Error(t, err)
	require.True(t, Is(err, ErrWrongKey))
}

func TestPKCS1DecodeRejectsMissingTerminator(t *testing.T) {
	em := make([]byte, 12)
	em[0] = 0x02
	for i := 1; i < len(em); i++ {
		em[i] = 0xFF // never a zero byte
	}
	_, err := emePKCS1Decode(em)
	require.Error(t, err)
	require.True(t, Is(err, ErrWrongKey))
}
