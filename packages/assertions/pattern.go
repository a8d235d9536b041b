package assertions

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/abdul-hamid-achik/green/packages/value"
)

var (
	// ErrInvalidPattern is returned when the expected side of =~ or !~ is
	// not a usable pattern.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNotString is returned when the subject of a pattern match is a
	// container or an opaque value.
	ErrNotString = errors.New("pattern subject is not a string")
)

var closingDelimiters = map[byte]byte{
	'{': '}',
	'<': '>',
}

// CompilePattern compiles the expected side of a pattern assertion.
//
// Delimited patterns such as "/^foo/i" or "#a/b#" are unwrapped and their
// trailing flags (i, m, s, U, u) applied. Of the bracket pairs only {} and
// <> delimit. A pattern starting with a letter, digit, backslash or one of
// ^ . ( [ is used as a Go regular expression as-is, so "(?i)foo" and
// "[a-c]+" keep their regexp meaning and "(foo)i" is not unwrapped.
func CompilePattern(expected value.Value) (*regexp.Regexp, error) {
	if expected.Kind() != value.KindString {
		return nil, fmt.Errorf("%w: expected a string, got %s", ErrInvalidPattern, expected.TypeName())
	}
	raw := expected.AsString()
	if raw == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}

	expr := raw
	if isDelimiter(raw[0]) {
		body, flags, err := splitDelimited(raw)
		if err != nil {
			return nil, err
		}
		prefix, err := translateFlags(flags)
		if err != nil {
			return nil, err
		}
		expr = prefix + body
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}

func isDelimiter(c byte) bool {
	r := rune(c)
	return c < unicode.MaxASCII && !unicode.IsLetter(r) && !unicode.IsDigit(r) &&
		!unicode.IsSpace(r) && c != '\\' && c != '^' && c != '.' && c != '(' && c != '['
}

func splitDelimited(raw string) (body, flags string, err error) {
	open := raw[0]
	closing, ok := closingDelimiters[open]
	if !ok {
		closing = open
	}
	end := strings.LastIndexByte(raw, closing)
	if end <= 0 {
		return "", "", fmt.Errorf("%w: no ending delimiter %q in %q", ErrInvalidPattern, closing, raw)
	}
	return raw[1:end], raw[end+1:], nil
}

func translateFlags(flags string) (string, error) {
	var goFlags strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's', 'U':
			goFlags.WriteRune(f)
		case 'u':
			// Go patterns are always UTF-8.
		default:
			return "", fmt.Errorf("%w: unsupported modifier %q", ErrInvalidPattern, f)
		}
	}
	if goFlags.Len() == 0 {
		return "", nil
	}
	return "(?" + goFlags.String() + ")", nil
}
