package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	ctx := &typeContext{packageName: "com.example"}

	cases := []struct {
		input string
		want  string
	}{
		{"int", "int"},
		{"void", "void"},
		{"int[]", "int[]"},
		{"int[][]", "int[][]"},
		{"String", "java.lang.String"},
		{"Widget", "com.example.Widget"},
		{"com.other.Widget", "com.other.Widget"},
		{"java.util.Map.Entry", "java.util.Map.Entry"},
		{"java.util.List<String>", "java.util.List<java.lang.String>"},
		{"java.util.Map<String, java.util.List<Integer>>",
			"java.util.Map<java.lang.String, java.util.List<java.lang.Integer>>"},
		{"java.util.List<String>[]", "java.util.List<java.lang.String>[]"},
		{"?", "?"},
		{"? extends Number", "? extends java.lang.Number"},
		{"? super String", "? super java.lang.String"},
		{"java.util.List<? extends Number>", "java.util.List<? extends java.lang.Number>"},
		{" java.util.List< String > ", "java.util.List<java.lang.String>"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ctx.parseType(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}

func TestParseTypeVariables(t *testing.T) {
	ctx := &typeContext{packageName: "com.example"}
	scoped := ctx.withTypeVariables([]TypeParameterModel{{Name: "T"}})

	got, err := scoped.parseType("java.util.List<T>")
	require.NoError(t, err)
	require.Equal(t, "java.util.List<T>", got.String())

	// Outside the scope, T is a class in the file's package.
	got, err = ctx.parseType("T")
	require.NoError(t, err)
	require.Equal(t, "com.example.T", got.String())
}

func TestParseTypeErrors(t *testing.T) {
	ctx := &typeContext{packageName: "com.example"}
	for _, input := range []string{
		"",
		"java.util.List<",
		"java.util.List<String",
		"java.util.List<String>>",
		"int] ",
		"Foo Bar",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ctx.parseType(input)
			require.Error(t, err)
		})
	}
}
