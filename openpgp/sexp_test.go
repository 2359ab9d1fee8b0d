// This is free and unencumbered software released into the public domain.

package openpgp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSexpLengthMatchesEmittedLength(t *testing.T) {
	atom := atomStr("hello")
	list := append([]byte{'('}, atom...)
	list = append(list, ')')
	require.Equal(t, len(list), sexpLength(list, len(list)))
}

func TestSexpLengthZeroOnMalformed(t *testing.T) {
	require.Equal(t, 0, sexpLength([]byte("(1:a"), 4)) // missing close paren
	require.Equal(t, 0, sexpLength([]byte(")"), 1))    // leading close paren
	require.Equal(t, 0, sexpLength([]byte("[[1:a]]"), 7))
}

func TestSexpLengthIgnoresTrailingGarbage(t *testing.T) {
	list := []byte("(3:foo)garbage")
	require.Equal(t, 7, sexpLength(list, len(list)))
}

func TestSexpCursorMatchTokenAndSkip(t *testing.T) {
	buf := []byte("(3:foo3:bar)")
	c := newSexpCursor(buf)
	require.NoError(t, c.expectOpen())
	require.NoError(t, c.matchToken("foo"))
	require.NoError(t, c.skip(1)) // skip "bar" atom then the closing paren
	require.True(t, c.eof())
}

func TestSexpCursorMatchTokenMismatch(t *testing.T) {
	buf := []byte("3:foo")
	c := newSexpCursor(buf)
	err := c.matchToken("bar")
	require.Error(t, err)
	require.True(t, Is(err, ErrUnexpectedData))
}
