package localize

import (
	"encoding/json"
	"errors"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dictionary is an immutable mapping from word key to translated string for a
// single language. It is constructed once from a textual blob and never
// mutated afterwards.
type Dictionary struct {
	words map[string]string
}

// UnmarshalFunc decodes a dictionary blob into v. It has the signature of
// json.Unmarshal, yaml.Unmarshal and toml.Unmarshal, so any of them (or a
// caller-supplied decoder) can be plugged in directly.
type UnmarshalFunc func(data []byte, v any) error

// dictionaryDoc is the one-field schema shared by all blob formats.
type dictionaryDoc struct {
	Words map[string]string `json:"words" yaml:"words" toml:"words"`
}

// ParseDictionary parses a blob in the canonical dictionary literal format:
//
//	Dictionary(
//	    words: {
//	        "hello": "Hallo",
//	        "world": "Welt",
//	    }
//	)
//
// Trailing commas and // or /* */ comments are accepted. Malformed input
// fails with a *ParseError carrying the line and column of the first
// offending token.
func ParseDictionary(blob string) (Dictionary, error) {
	words, err := decodeDictLiteral(blob)
	if err != nil {
		return Dictionary{}, err
	}
	return Dictionary{words: words}, nil
}

// ParseDictionaryFunc parses a blob with the given decoder. The blob must
// decode into an object with a single `words` field mapping string to string.
// The format name is only used in error messages.
func ParseDictionaryFunc(format, blob string, unmarshal UnmarshalFunc) (Dictionary, error) {
	var doc dictionaryDoc
	if err := unmarshal([]byte(blob), &doc); err != nil {
		return Dictionary{}, wrapDecodeError(format, err)
	}
	words := doc.Words
	if words == nil {
		words = map[string]string{}
	}
	return Dictionary{words: words}, nil
}

// ParseDictionaryJSON parses a JSON blob of the form {"words": {...}}.
func ParseDictionaryJSON(blob string) (Dictionary, error) {
	return ParseDictionaryFunc("json", blob, json.Unmarshal)
}

// ParseDictionaryYAML parses a YAML blob with a top-level `words` mapping.
func ParseDictionaryYAML(blob string) (Dictionary, error) {
	return ParseDictionaryFunc("yaml", blob, yaml.Unmarshal)
}

// ParseDictionaryTOML parses a TOML blob with a [words] table.
func ParseDictionaryTOML(blob string) (Dictionary, error) {
	return ParseDictionaryFunc("toml", blob, toml.Unmarshal)
}

// Lookup returns the translated string for key and whether it exists.
func (d Dictionary) Lookup(key string) (string, bool) {
	word, ok := d.words[key]
	return word, ok
}

// Len returns the number of words in the dictionary.
func (d Dictionary) Len() int {
	return len(d.words)
}

// wrapDecodeError converts a third-party decode error into a *ParseError,
// extracting the position when the decoder reports one.
func wrapDecodeError(format string, err error) error {
	var de *toml.DecodeError
	if errors.As(err, &de) {
		row, col := de.Position()
		return &ParseError{Format: format, Msg: de.Error(), Line: row, Column: col}
	}
	return &ParseError{Format: format, Msg: err.Error()}
}
