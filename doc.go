// Package localize provides a small localization lookup service: dictionaries
// map word keys to translated strings per language, and a Localization value
// resolves keys against its active language with identity fallback: a
// missing translation returns the key itself, so lookups never fail and gaps
// stay visible in the UI instead of crashing it.
//
// # Basic Usage
//
// Build a Localization with the fluent builder and resolve keys:
//
//	const deDE = `
//	Dictionary(
//	    words: {
//	        "hello": "Hallo",
//	        "world": "Welt",
//	    }
//	)
//	`
//
//	loc, err := localize.Create().
//		Language("de_DE").
//		Dictionary("de_DE", deDE).
//		Build()
//	if err != nil {
//		// malformed dictionary blob
//	}
//
//	loc.Text("hello") // "Hallo"
//	loc.Text("oops")  // "oops" (no translation, key echoed back)
//
// Dictionaries are typically embedded at compile time and passed in as
// strings; MustBuild panics on parse errors, which is appropriate for static
// assets:
//
//	//go:embed locales/de_DE.dict
//	var deDE string
//
//	var loc = localize.Create().Language("de_DE").Dictionary("de_DE", deDE).MustBuild()
//
// # Blob Formats
//
// The canonical format is the dictionary literal shown above. JSON, YAML and
// TOML blobs with the same one-field schema are accepted through
// DictionaryJSON, DictionaryYAML and DictionaryTOML, and any decoder with an
// Unmarshal-style signature can be plugged in via DictionaryFunc.
//
// # Fallback Semantics
//
// Text is total. If the active language has no dictionary, or its dictionary
// has no entry for the key, the key comes back unchanged. SetLanguage never
// validates its argument; switching to an unknown language silently degrades
// every lookup to fallback until a known language is set again.
//
// # Concurrency
//
// A Localization is immutable after Build except for the active language.
// Concurrent readers are safe as long as nothing calls SetLanguage; when the
// language can change at runtime, wrap the value in a Store, which guards it
// with a read-write mutex and additionally supports atomic replacement of
// the whole dictionary set via Swap.
package localize
