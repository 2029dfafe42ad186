package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorSplice(t *testing.T) {
	t.Run("backslash before line break", func(t *testing.T) {
		text := "a\\\nb"
		c := newCursor(text, '\\', 1, len(text))
		require.True(t, c.splice())
		require.Equal(t, byte('b'), c.ch())
	})

	t.Run("carriage return between escape and line break", func(t *testing.T) {
		text := "a\\\r\nb"
		c := newCursor(text, '\\', 1, len(text))
		require.True(t, c.splice())
		require.Equal(t, byte('b'), c.ch())
	})

	t.Run("consecutive continuations", func(t *testing.T) {
		text := "a\\\n\\\nb"
		c := newCursor(text, '\\', 1, len(text))
		require.True(t, c.splice())
		require.Equal(t, byte('b'), c.ch())
	})

	t.Run("escape without line break is content", func(t *testing.T) {
		text := "a\\b"
		c := newCursor(text, '\\', 1, len(text))
		require.False(t, c.splice())
		require.Equal(t, byte('\\'), c.ch())
	})

	t.Run("escape at end of input is content", func(t *testing.T) {
		text := "a\\"
		c := newCursor(text, '\\', 1, len(text))
		require.False(t, c.splice())
		require.True(t, c.more())
	})

	t.Run("backtick escape", func(t *testing.T) {
		text := "a`\nb"
		c := newCursor(text, '`', 1, len(text))
		require.True(t, c.splice())
		require.Equal(t, byte('b'), c.ch())
	})

	t.Run("backslash is content under backtick escape", func(t *testing.T) {
		text := "a\\\nb"
		c := newCursor(text, '`', 1, len(text))
		require.False(t, c.splice())
		require.Equal(t, byte('\\'), c.ch())
	})

	t.Run("no continuation leaves position alone", func(t *testing.T) {
		text := "abc"
		c := newCursor(text, '\\', 0, len(text))
		require.False(t, c.splice())
		require.Equal(t, 0, c.pos)
	})
}

func TestCursorBounds(t *testing.T) {
	text := "abcdef"
	c := newCursor(text, '\\', 2, 4)
	require.True(t, c.more())
	require.Equal(t, byte('c'), c.ch())
	c.pos++
	require.True(t, c.more())
	c.pos++
	require.False(t, c.more())
}

func TestCursorSpliceStopsAtWindowEnd(t *testing.T) {
	// the continuation sequence straddles the window end and must not be
	// consumed past it
	text := "a\\\nb"
	c := newCursor(text, '\\', 1, 2)
	require.False(t, c.splice())
	require.Equal(t, 1, c.pos)
}
