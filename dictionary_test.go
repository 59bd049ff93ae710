package localize_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
)

func TestParseDictionary(t *testing.T) {
	t.Parallel()

	t.Run("parses the canonical literal", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionary(deDE)
		require.NoError(t, err)
		require.Equal(t, 2, dict.Len())

		word, ok := dict.Lookup("hello")
		require.True(t, ok)
		require.Equal(t, "Hallo", word)
	})

	t.Run("accepts compact form without trailing comma", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionary(`Dictionary(words: {"a": "b"})`)
		require.NoError(t, err)
		require.Equal(t, 1, dict.Len())
	})

	t.Run("accepts empty words map", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionary(`Dictionary(words: {})`)
		require.NoError(t, err)
		require.Equal(t, 0, dict.Len())
	})

	t.Run("accepts trailing comma after the map", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionary(`Dictionary(words: {"a": "b",},)`)
		require.NoError(t, err)
		require.Equal(t, 1, dict.Len())
	})

	t.Run("skips line and block comments", func(t *testing.T) {
		t.Parallel()
		blob := `
		// header comment
		Dictionary(
		    words: { /* inline */
		        "hello": "Hallo", // trailing
		    }
		)
		`
		dict, err := localize.ParseDictionary(blob)
		require.NoError(t, err)
		word, ok := dict.Lookup("hello")
		require.True(t, ok)
		require.Equal(t, "Hallo", word)
	})

	t.Run("decodes escapes", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionary(`Dictionary(words: {"quote": "say \"hi\"\n", "heart": "\u{2764}"})`)
		require.NoError(t, err)

		word, ok := dict.Lookup("quote")
		require.True(t, ok)
		require.Equal(t, "say \"hi\"\n", word)

		word, ok = dict.Lookup("heart")
		require.True(t, ok)
		require.Equal(t, "❤", word)
	})

	t.Run("duplicate keys keep the last value", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionary(`Dictionary(words: {"a": "1", "a": "2"})`)
		require.NoError(t, err)

		word, _ := dict.Lookup("a")
		require.Equal(t, "2", word)
	})

	t.Run("lookup misses report absence", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionary(`Dictionary(words: {})`)
		require.NoError(t, err)

		word, ok := dict.Lookup("missing")
		require.False(t, ok)
		require.Empty(t, word)
	})
}

func TestParseDictionaryErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		blob string
		line int
	}{
		{name: "empty blob", blob: "", line: 1},
		{name: "wrong head", blob: `Lexicon(words: {})`, line: 1},
		{name: "missing words field", blob: `Dictionary(terms: {})`, line: 1},
		{name: "unterminated string", blob: "Dictionary(words: {\n    \"hello\": \"Hallo\n})", line: 2},
		{name: "missing value", blob: "Dictionary(words: {\n    \"hello\":\n})", line: 3},
		{name: "missing separator", blob: "Dictionary(words: {\n    \"a\": \"1\" \"b\": \"2\"\n})", line: 2},
		{name: "unclosed paren", blob: `Dictionary(words: {}`, line: 1},
		{name: "trailing garbage", blob: "Dictionary(words: {})\nextra", line: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := localize.ParseDictionary(tt.blob)
			require.Error(t, err)
			require.ErrorIs(t, err, localize.ErrInvalidDictionary)

			var perr *localize.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "dict", perr.Format)
			assert.Equal(t, tt.line, perr.Line)
			assert.Positive(t, perr.Column)
		})
	}
}

func TestParseDictionaryCodecs(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionaryJSON(`{"words": {"hello": "Hallo"}}`)
		require.NoError(t, err)

		word, ok := dict.Lookup("hello")
		require.True(t, ok)
		require.Equal(t, "Hallo", word)
	})

	t.Run("json without words field yields empty dictionary", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionaryJSON(`{}`)
		require.NoError(t, err)
		require.Equal(t, 0, dict.Len())
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		_, err := localize.ParseDictionaryJSON(`{"words"`)
		require.ErrorIs(t, err, localize.ErrInvalidDictionary)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionaryYAML("words:\n  hello: Hallo\n  world: Welt\n")
		require.NoError(t, err)
		require.Equal(t, 2, dict.Len())
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := localize.ParseDictionaryYAML("words: [broken")
		require.ErrorIs(t, err, localize.ErrInvalidDictionary)
	})

	t.Run("toml", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionaryTOML("[words]\nhello = \"Hallo\"\n")
		require.NoError(t, err)

		word, ok := dict.Lookup("hello")
		require.True(t, ok)
		require.Equal(t, "Hallo", word)
	})

	t.Run("malformed toml reports position", func(t *testing.T) {
		t.Parallel()
		_, err := localize.ParseDictionaryTOML("[words]\nhello = \n")
		require.ErrorIs(t, err, localize.ErrInvalidDictionary)

		var perr *localize.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "toml", perr.Format)
		assert.Positive(t, perr.Line)
	})

	t.Run("custom decoder", func(t *testing.T) {
		t.Parallel()
		dict, err := localize.ParseDictionaryFunc("json", `{"words": {"a": "b"}}`, json.Unmarshal)
		require.NoError(t, err)
		require.Equal(t, 1, dict.Len())
	})
}

func TestBuilderCodecs(t *testing.T) {
	t.Parallel()

	loc, err := localize.Create().
		Language("de_DE").
		DictionaryJSON("de_DE", `{"words": {"hello": "Hallo"}}`).
		DictionaryYAML("en_US", "words:\n  hello: Hello\n").
		DictionaryTOML("fr_FR", "[words]\nhello = \"Bonjour\"\n").
		Build()
	require.NoError(t, err)

	require.Equal(t, "Hallo", loc.Text("hello"))
	loc.SetLanguage("en_US")
	require.Equal(t, "Hello", loc.Text("hello"))
	loc.SetLanguage("fr_FR")
	require.Equal(t, "Bonjour", loc.Text("hello"))
}
