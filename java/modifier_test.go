package java

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalModifiers(t *testing.T) {
	t.Run("sorts into print order", func(t *testing.T) {
		got := canonicalModifiers([]Modifier{Final, Static, Public})
		require.Equal(t, []Modifier{Public, Static, Final}, got)
	})

	t.Run("deduplicates", func(t *testing.T) {
		got := canonicalModifiers([]Modifier{Public, Public, Final, Final})
		require.Equal(t, []Modifier{Public, Final}, got)
	})

	t.Run("keeps rank across the whole keyword set", func(t *testing.T) {
		got := canonicalModifiers([]Modifier{Strictfp, Native, Abstract, Private})
		require.Equal(t, []Modifier{Private, Abstract, Native, Strictfp}, got)
	})
}

func TestCheckModifiers(t *testing.T) {
	require.NoError(t, checkModifiers([]Modifier{Public, Final}, Public, Final))
	require.Error(t, checkModifiers([]Modifier{Volatile}, Public, Final))
	require.Error(t, checkModifiers([]Modifier{Modifier("bogus")}))
	require.False(t, Modifier("bogus").IsValid())
	require.True(t, Synchronized.IsValid())
}
