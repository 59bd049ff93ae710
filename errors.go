package localize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDictionary is wrapped by every dictionary parse failure,
	// regardless of the blob format that produced it.
	ErrInvalidDictionary = errors.New("localize: invalid dictionary")

	// ErrBuilderReused is returned by Build when the builder has already
	// produced a Localization.
	ErrBuilderReused = errors.New("localize: builder already consumed by Build")

	// ErrEmptyLanguageKey is returned when a dictionary is registered under
	// an empty language key.
	ErrEmptyLanguageKey = errors.New("localize: language key cannot be empty")
)

// ParseError describes a dictionary blob that does not conform to the
// expected schema. Line and Column are 1-based and refer to the offending
// position in the blob; both are zero when the underlying decoder does not
// report a position.
type ParseError struct {
	Format string
	Msg    string
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("localize: parse %s dictionary: %d:%d: %s", e.Format, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("localize: parse %s dictionary: %s", e.Format, e.Msg)
}

// Unwrap makes every ParseError match ErrInvalidDictionary via errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrInvalidDictionary
}
