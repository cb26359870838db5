package java

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineWrapper(t *testing.T) {
	t.Run("wraps when the limit would be exceeded", func(t *testing.T) {
		var sb strings.Builder
		w := newLineWrapper(&sb, "  ", 10)
		require.NoError(t, w.Append("abcde"))
		require.NoError(t, w.WrappingSpace(2))
		require.NoError(t, w.Append("fghij"))
		require.NoError(t, w.Close())
		require.Equal(t, "abcde\n    fghij", sb.String())
	})

	t.Run("keeps the space when the text fits", func(t *testing.T) {
		var sb strings.Builder
		w := newLineWrapper(&sb, "  ", 10)
		require.NoError(t, w.Append("abc"))
		require.NoError(t, w.WrappingSpace(1))
		require.NoError(t, w.Append("def"))
		require.NoError(t, w.Close())
		require.Equal(t, "abc def", sb.String())
	})

	t.Run("the deferred space occupies a column", func(t *testing.T) {
		// "12345" + space + "6789" is exactly ten columns and fits, one
		// more character does not.
		var sb strings.Builder
		w := newLineWrapper(&sb, "  ", 10)
		require.NoError(t, w.Append("12345"))
		require.NoError(t, w.WrappingSpace(1))
		require.NoError(t, w.Append("6789"))
		require.NoError(t, w.Close())
		require.Equal(t, "12345 6789", sb.String())

		sb.Reset()
		w = newLineWrapper(&sb, "  ", 10)
		require.NoError(t, w.Append("12345"))
		require.NoError(t, w.WrappingSpace(1))
		require.NoError(t, w.Append("67890"))
		require.NoError(t, w.Close())
		require.Equal(t, "12345\n  67890", sb.String())
	})

	t.Run("zero width point vanishes when the text fits", func(t *testing.T) {
		var sb strings.Builder
		w := newLineWrapper(&sb, "  ", 10)
		require.NoError(t, w.Append("abc"))
		require.NoError(t, w.ZeroWidthSpace(1))
		require.NoError(t, w.Append("def"))
		require.NoError(t, w.Close())
		require.Equal(t, "abcdef", sb.String())
	})

	t.Run("zero width point breaks when the text does not fit", func(t *testing.T) {
		var sb strings.Builder
		w := newLineWrapper(&sb, "  ", 10)
		require.NoError(t, w.Append("abcdefgh"))
		require.NoError(t, w.ZeroWidthSpace(2))
		require.NoError(t, w.Append("ijklm"))
		require.NoError(t, w.Close())
		require.Equal(t, "abcdefgh\n    ijklm", sb.String())
	})

	t.Run("zero width point at column zero is a no-op", func(t *testing.T) {
		var sb strings.Builder
		w := newLineWrapper(&sb, "  ", 10)
		require.NoError(t, w.ZeroWidthSpace(2))
		require.NoError(t, w.Append("abc"))
		require.NoError(t, w.Close())
		require.Equal(t, "abc", sb.String())
	})

	t.Run("a newline in the pending text resolves the point", func(t *testing.T) {
		// The text up to the newline fits, so the space stays a space.
		var sb strings.Builder
		w := newLineWrapper(&sb, "  ", 10)
		require.NoError(t, w.Append("abc"))
		require.NoError(t, w.WrappingSpace(1))
		require.NoError(t, w.Append("def\nghi"))
		require.NoError(t, w.Close())
		require.Equal(t, "abc def\nghi", sb.String())
	})

	t.Run("close never wraps retroactively", func(t *testing.T) {
		var sb strings.Builder
		w := newLineWrapper(&sb, "  ", 10)
		require.NoError(t, w.Append("abcdefgh"))
		require.NoError(t, w.WrappingSpace(1))
		require.NoError(t, w.Close())
		require.Equal(t, "abcdefgh ", sb.String())
	})

	t.Run("append after close fails", func(t *testing.T) {
		var sb strings.Builder
		w := newLineWrapper(&sb, "  ", 10)
		require.NoError(t, w.Close())
		require.Error(t, w.Append("x"))
	})

	t.Run("buffered appends accumulate until the decision", func(t *testing.T) {
		var sb strings.Builder
		w := newLineWrapper(&sb, "  ", 10)
		require.NoError(t, w.Append("abcde"))
		require.NoError(t, w.WrappingSpace(1))
		require.NoError(t, w.Append("fg"))
		require.NoError(t, w.Append("hi"))
		require.NoError(t, w.Append("jk"))
		require.NoError(t, w.Close())
		require.Equal(t, "abcde\n  fghijk", sb.String())
	})
}
