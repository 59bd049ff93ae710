package localize

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the Accept-Language header size before
// parsing; browsers never send anything close to this.
const maxAcceptLanguageLength = 4096

// MatchLanguage picks the best match for an Accept-Language header from the
// available language keys. Quality values are honored and base languages
// match regional variants ("de" matches "de_DE"). When the header is empty
// or nothing matches, the first available language is returned; when no
// languages are available, the empty string.
//
// Language keys may use either underscore ("de_DE") or hyphen ("de-DE")
// separators.
func MatchLanguage(acceptLanguage string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if acceptLanguage == "" {
		return available[0]
	}
	if len(acceptLanguage) > maxAcceptLanguageLength {
		acceptLanguage = acceptLanguage[:maxAcceptLanguageLength]
	}

	tags := make([]language.Tag, 0, len(available))
	keys := make([]string, 0, len(available))
	for _, key := range available {
		tag, err := language.Parse(strings.ReplaceAll(key, "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		keys = append(keys, key)
	}
	if len(tags) == 0 {
		return available[0]
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return available[0]
	}
	_, index, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return available[0]
	}
	return keys[index]
}
