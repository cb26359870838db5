package java

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameAllocator(t *testing.T) {
	t.Run("keywords and duplicates get underscores", func(t *testing.T) {
		a := NewNameAllocator()
		suggestions := []string{"do", "do", "1x"}
		var got []string
		for _, s := range suggestions {
			name, err := a.NewName(s, nil)
			require.NoError(t, err)
			got = append(got, name)
		}
		require.Equal(t, []string{"do_", "do__", "_1x"}, got)
	})

	t.Run("every allocated name is a valid identifier", func(t *testing.T) {
		a := NewNameAllocator()
		for _, s := range []string{"public", "foo bar", "a-b", "", "日本語", "9lives"} {
			name, err := a.NewName(s, nil)
			require.NoError(t, err)
			require.True(t, isValidIdentifier(name), "allocated %q for %q", name, s)
		}
	})

	t.Run("tags look names up again", func(t *testing.T) {
		a := NewNameAllocator()
		name, err := a.NewName("count", "tag-a")
		require.NoError(t, err)

		got, err := a.Get("tag-a")
		require.NoError(t, err)
		require.Equal(t, name, got)

		_, err = a.Get("tag-b")
		require.Error(t, err)
	})

	t.Run("reusing a tag fails", func(t *testing.T) {
		a := NewNameAllocator()
		_, err := a.NewName("first", "tag")
		require.NoError(t, err)
		_, err = a.NewName("second", "tag")
		require.Error(t, err)
	})

	t.Run("clones do not collide with the parent", func(t *testing.T) {
		a := NewNameAllocator()
		parent, err := a.NewName("name", nil)
		require.NoError(t, err)
		require.Equal(t, "name", parent)

		clone := a.Clone()
		fromClone, err := clone.NewName("name", nil)
		require.NoError(t, err)
		require.Equal(t, "name_", fromClone)

		// The parent never sees the clone's allocations.
		fromParent, err := a.NewName("name_", nil)
		require.NoError(t, err)
		require.Equal(t, "name_", fromParent)
	})
}
