package libtdf

import (
	"testing"

	"github.com/globalmentor/go-urf/internal/testutil/assert"
)

// Parse-safe escaping (spec.md §8): any string value, once escaped by the
// serializer, must parse back to the identical text.
func Test_stringEscaping_roundTrip(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{"plain", "hello world"},
		{"embedded quote", `she said "hi"`},
		{"backslash", `a\b`},
		{"newline", "line one\nline two"},
		{"tab", "a\tb"},
		{"control char", "a\x01b"},
		{"unicode", "café 中文"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			encoded := escapeString(tc.s, delimString)
			roots := parseRoots(t, encoded)
			assert.Equal(t, 1, len(roots))
			assert.Equal(t, LiteralString, roots[0].Literal.Kind)
			assert.Equal(t, tc.s, roots[0].Literal.Str)
		})
	}
}

func Test_characterLiteral(t *testing.T) {
	roots := parseRoots(t, `'x'`)
	assert.Equal(t, LiteralCharacter, roots[0].Literal.Kind)
	assert.Equal(t, 'x', roots[0].Literal.Char)
}

func Test_characterLiteral_rejectsMultipleCodePoints(t *testing.T) {
	_, err := Parse(`'xy'`, NewGraphProcessor())
	assert.NotNil(t, err)
}

// Binary literals round-trip through base64url with no padding.
func Test_binaryLiteral_roundTrip(t *testing.T) {
	roots := parseRoots(t, "%YWJj%")
	lit := roots[0].Literal
	assert.Equal(t, LiteralBinary, lit.Kind)
	assert.Equal(t, "abc", string(lit.Bytes))

	out, err := Serialize(roots)
	assert.NoError(t, err)
	assert.Equal(t, "%YWJj%", out)
}

// UUID literals round-trip through github.com/google/uuid's canonical
// lowercase, hyphenated form.
func Test_uuidLiteral_roundTrip(t *testing.T) {
	roots := parseRoots(t, "&123e4567-e89b-12d3-a456-426614174000&")
	lit := roots[0].Literal
	assert.Equal(t, LiteralUUID, lit.Kind)

	out, err := Serialize(roots)
	assert.NoError(t, err)
	assert.Equal(t, "&123e4567-e89b-12d3-a456-426614174000&", out)
}

func Test_regexpLiteral(t *testing.T) {
	roots := parseRoots(t, `/^[a-z]+$/`)
	lit := roots[0].Literal
	assert.Equal(t, LiteralRegexp, lit.Kind)
	assert.Equal(t, "^[a-z]+$", lit.Str)
}
