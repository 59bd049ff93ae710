package localize

import "sort"

// Localization resolves translation keys against the dictionary of its active
// language. The dictionary set is immutable after Build; only the active
// language can change afterwards, via SetLanguage.
//
// A Localization is safe for concurrent readers as long as nothing calls
// SetLanguage. Mixing SetLanguage with concurrent lookups must be serialized
// by the caller; Store provides a ready-made handle for that.
type Localization struct {
	language     string
	dictionaries map[string]Dictionary
}

// Builder accumulates dictionaries and the initial language before producing
// an immutable Localization. It is consumed by Build and must not be reused
// afterwards.
type Builder struct {
	language     string
	dictionaries map[string]Dictionary
	err          error
	built        bool
}

// Create returns an empty Builder: no dictionaries, empty language key.
func Create() *Builder {
	return &Builder{dictionaries: make(map[string]Dictionary)}
}

// Dictionary parses blob in the canonical dictionary literal format and
// registers it under the given language key, overwriting any previous entry
// for that key. A parse failure is recorded and surfaced by Build; later
// calls on a failed builder are no-ops.
func (b *Builder) Dictionary(key, blob string) *Builder {
	return b.add(key, blob, nil)
}

// DictionaryJSON registers a dictionary parsed from a JSON blob.
func (b *Builder) DictionaryJSON(key, blob string) *Builder {
	return b.add(key, blob, ParseDictionaryJSON)
}

// DictionaryYAML registers a dictionary parsed from a YAML blob.
func (b *Builder) DictionaryYAML(key, blob string) *Builder {
	return b.add(key, blob, ParseDictionaryYAML)
}

// DictionaryTOML registers a dictionary parsed from a TOML blob.
func (b *Builder) DictionaryTOML(key, blob string) *Builder {
	return b.add(key, blob, ParseDictionaryTOML)
}

// DictionaryFunc registers a dictionary parsed with a caller-supplied
// decoder. The format name is only used in error messages.
func (b *Builder) DictionaryFunc(key, format, blob string, unmarshal UnmarshalFunc) *Builder {
	return b.add(key, blob, func(blob string) (Dictionary, error) {
		return ParseDictionaryFunc(format, blob, unmarshal)
	})
}

func (b *Builder) add(key, blob string, parse func(string) (Dictionary, error)) *Builder {
	if b.built || b.err != nil {
		return b
	}
	if key == "" {
		b.err = ErrEmptyLanguageKey
		return b
	}
	if parse == nil {
		parse = ParseDictionary
	}
	dict, err := parse(blob)
	if err != nil {
		b.err = err
		return b
	}
	b.dictionaries[key] = dict
	return b
}

// Language sets the initial active language. No validation is performed
// against the registered dictionaries; an unknown key simply makes every
// lookup fall back to the requested word key.
func (b *Builder) Language(key string) *Builder {
	if b.built {
		return b
	}
	b.language = key
	return b
}

// Build moves the accumulated state into an immutable Localization. It
// returns the first error recorded by the dictionary methods, if any. The
// builder is consumed: a second Build returns ErrBuilderReused.
func (b *Builder) Build() (*Localization, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	b.built = true
	if b.err != nil {
		return nil, b.err
	}
	loc := &Localization{
		language:     b.language,
		dictionaries: b.dictionaries,
	}
	b.dictionaries = nil
	return loc, nil
}

// MustBuild is like Build but panics on error. Intended for dictionaries
// embedded at compile time, where a parse failure is a programming error.
func (b *Builder) MustBuild() *Localization {
	loc, err := b.Build()
	if err != nil {
		panic(err)
	}
	return loc
}

// New is a one-shot constructor for the common single-dictionary case: it
// parses blob, registers it under key, and selects key as the active
// language.
func New(key, blob string) (*Localization, error) {
	return Create().Dictionary(key, blob).Language(key).Build()
}

// Language returns the current active language key.
func (l *Localization) Language() string {
	return l.language
}

// SetLanguage unconditionally overwrites the active language key. Setting a
// key with no registered dictionary is not an error; subsequent lookups fall
// back to returning their word key.
func (l *Localization) SetLanguage(key string) {
	l.language = key
}

// Text returns the translation of key in the active language. If the active
// language has no dictionary, or the dictionary has no entry for key, the
// key itself is returned unchanged. Text never fails: it always yields a
// displayable string, and missing translations are visible as their keys.
func (l *Localization) Text(key string) string {
	word, _ := l.lookup(key)
	return word
}

// lookup resolves key and reports whether a real translation was found.
func (l *Localization) lookup(key string) (string, bool) {
	if dict, ok := l.dictionaries[l.language]; ok {
		if word, ok := dict.Lookup(key); ok {
			return word, true
		}
	}
	return key, false
}

// Languages returns the sorted list of language keys that have a dictionary.
// The active language is not included unless a dictionary exists for it.
func (l *Localization) Languages() []string {
	langs := make([]string, 0, len(l.dictionaries))
	for key := range l.dictionaries {
		langs = append(langs, key)
	}
	sort.Strings(langs)
	return langs
}
