package localize

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// decodeDictLiteral parses the canonical dictionary literal format into a
// word map. The grammar is deliberately small:
//
//	Dictionary ( words : { "key" : "value" , ... } )
//
// Commas are optional after the last pair and after the closing brace.
// Line comments (//) and block comments (/* */) are skipped wherever
// whitespace is allowed.
func decodeDictLiteral(blob string) (map[string]string, error) {
	s := &dictScanner{src: blob, line: 1, col: 1}

	if err := s.expectIdent("Dictionary"); err != nil {
		return nil, err
	}
	if err := s.expect('('); err != nil {
		return nil, err
	}
	if err := s.expectIdent("words"); err != nil {
		return nil, err
	}
	if err := s.expect(':'); err != nil {
		return nil, err
	}
	if err := s.expect('{'); err != nil {
		return nil, err
	}

	words := make(map[string]string)
	for {
		s.skipSpace()
		if s.peek() == '}' {
			s.next()
			break
		}

		key, err := s.scanString()
		if err != nil {
			return nil, err
		}
		if err := s.expect(':'); err != nil {
			return nil, err
		}
		value, err := s.scanString()
		if err != nil {
			return nil, err
		}
		words[key] = value

		s.skipSpace()
		switch s.peek() {
		case ',':
			s.next()
		case '}':
			// Closing brace handled on the next iteration.
		default:
			return nil, s.errorf("expected ',' or '}' after entry %q", key)
		}
	}

	s.skipSpace()
	if s.peek() == ',' {
		s.next()
	}
	if err := s.expect(')'); err != nil {
		return nil, err
	}
	s.skipSpace()
	if s.pos < len(s.src) {
		return nil, s.errorf("unexpected trailing input")
	}

	return words, nil
}

// dictScanner walks a dictionary literal, tracking 1-based line and column
// positions for error reporting.
type dictScanner struct {
	src  string
	pos  int
	line int
	col  int
}

const eof = rune(-1)

func (s *dictScanner) peek() rune {
	if s.pos >= len(s.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

func (s *dictScanner) next() rune {
	if s.pos >= len(s.src) {
		return eof
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// skipSpace consumes whitespace and comments.
func (s *dictScanner) skipSpace() {
	for {
		switch r := s.peek(); {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			s.next()
		case r == '/' && strings.HasPrefix(s.src[s.pos:], "//"):
			for s.peek() != '\n' && s.peek() != eof {
				s.next()
			}
		case r == '/' && strings.HasPrefix(s.src[s.pos:], "/*"):
			s.next()
			s.next()
			for s.peek() != eof && !strings.HasPrefix(s.src[s.pos:], "*/") {
				s.next()
			}
			s.next()
			s.next()
		default:
			return
		}
	}
}

func (s *dictScanner) expect(r rune) error {
	s.skipSpace()
	if s.peek() != r {
		return s.errorf("expected %q", r)
	}
	s.next()
	return nil
}

func (s *dictScanner) expectIdent(ident string) error {
	s.skipSpace()
	if !strings.HasPrefix(s.src[s.pos:], ident) {
		return s.errorf("expected %q", ident)
	}
	for range ident {
		s.next()
	}
	return nil
}

// scanString reads a double-quoted string, handling the usual escapes plus
// \u{...} unicode escapes.
func (s *dictScanner) scanString() (string, error) {
	s.skipSpace()
	if s.peek() != '"' {
		return "", s.errorf("expected string")
	}
	s.next()

	var b strings.Builder
	for {
		if r := s.peek(); r == eof || r == '\n' {
			return "", s.errorf("unterminated string")
		}
		switch r := s.next(); r {
		case '"':
			return b.String(), nil
		case '\\':
			esc, err := s.scanEscape()
			if err != nil {
				return "", err
			}
			b.WriteRune(esc)
		default:
			b.WriteRune(r)
		}
	}
}

func (s *dictScanner) scanEscape() (rune, error) {
	switch r := s.next(); r {
	case '"', '\\', '/', '\'':
		return r, nil
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '0':
		return 0, nil
	case 'u':
		if s.peek() != '{' {
			return 0, s.errorf("expected '{' in unicode escape")
		}
		s.next()
		var code rune
		digits := 0
		for s.peek() != '}' {
			d := hexValue(s.next())
			if d < 0 || digits >= 6 {
				return 0, s.errorf("invalid unicode escape")
			}
			code = code<<4 | rune(d)
			digits++
		}
		s.next()
		if digits == 0 || !utf8.ValidRune(code) {
			return 0, s.errorf("invalid unicode escape")
		}
		return code, nil
	default:
		return 0, s.errorf("unknown escape %q", r)
	}
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		return -1
	}
}

func (s *dictScanner) errorf(format string, args ...any) error {
	return &ParseError{
		Format: "dict",
		Msg:    fmt.Sprintf(format, args...),
		Line:   s.line,
		Column: s.col,
	}
}
