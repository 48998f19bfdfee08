// escape.go validates and escapes user input before it reaches the index's
// query language.
//
// Search text tokens have every Lucene operator character backslash-escaped.
// Path segments are rendered as quoted phrases with only the quote and
// backslash escaped. Identifiers are never escaped; anything outside the
// identifier alphabet is rejected instead.

package query

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrMalformedInput is returned when an id, path segment or search text cannot
// be expressed safely in the index's query syntax.
var ErrMalformedInput = errors.New("malformed query input")

// specials are the characters with meaning in Lucene query syntax.
const specials = `+-&|!(){}[]^"~*?:\/`

// operators are the bare words the Lucene parser reads as boolean logic.
var operators = map[string]bool{"AND": true, "OR": true, "NOT": true}

// escapeTerm backslash-escapes Lucene special characters in a single token.
// An operator word is quoted so it is searched as text.
func escapeTerm(s string) string {
	if operators[s] {
		return quote(s)
	}
	if !strings.ContainsAny(s, specials) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(specials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// quote wraps s in double quotes, escaping embedded quotes and backslashes.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// validateID rejects identifiers that would change the meaning of id:<value>.
func validateID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: empty id", ErrMalformedInput)
	case hasControl(id):
		return fmt.Errorf("%w: control character in id %q", ErrMalformedInput, id)
	case strings.IndexFunc(id, unicode.IsSpace) >= 0:
		return fmt.Errorf("%w: whitespace in id %q", ErrMalformedInput, id)
	case strings.ContainsAny(id, idSpecials), id[0] == '-', id[0] == '+', operators[id]:
		return fmt.Errorf("%w: query syntax character in id %q", ErrMalformedInput, id)
	}
	return nil
}

// idSpecials are the specials that end a term. '+' and '-' are only operators
// at the start of one.
const idSpecials = `&|!(){}[]^"~*?:\/`

// validateSegment rejects path segments that cannot be matched exactly.
func validateSegment(s string) error {
	switch {
	case s == "":
		return fmt.Errorf("%w: empty path segment", ErrMalformedInput)
	case hasControl(s):
		return fmt.Errorf("%w: control character in path segment %q", ErrMalformedInput, s)
	}
	return nil
}

// validateText rejects search text with no searchable tokens.
func validateText(s string) error {
	switch {
	case strings.TrimSpace(s) == "":
		return fmt.Errorf("%w: blank search text", ErrMalformedInput)
	case strings.IndexFunc(s, func(r rune) bool { return unicode.IsControl(r) && !unicode.IsSpace(r) }) >= 0:
		return fmt.Errorf("%w: control character in search text", ErrMalformedInput)
	}
	return nil
}
