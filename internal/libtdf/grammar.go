// Package libtdf implements the core parser and serializer for the Textual
// Description Format (TDF): a graph of resources bearing typed property/value
// edges, a closed set of literal value kinds, and three structured
// collections (list, set, map).
package libtdf

import "unicode"

// DefaultNamespace is the fixed IRI under which bare handles resolve.
const DefaultNamespace = "https://urf.name/"

// AdHocNamespace is the fixed IRI under which properties introduced without
// a declared namespace live.
const AdHocNamespace = "https://urf.name/urf/ad-hoc#"

// GeneralMediaType is the media type of a full TDF document: a sequence of
// root resources.
const GeneralMediaType = "text/urf"

// PropertiesMediaType is the media type of a properties-only TDF document: a
// sequence of property declarations applied to a single implicit root.
const PropertiesMediaType = "text/urf-properties"

// Synthetic property tags used by the collection forms (spec.md §4.5).
const (
	elementPropertyName  = "element"
	memberPropertyName   = "member"
	mapMemberPropertyName = "mapMember"
	mapKeyPropertyName   = "key"
	mapValuePropertyName = "value"
)

// Grammar delimiters. Each is a single ASCII character; kept as named
// constants rather than magic literals so the dispatch tables in parser.go
// and the literal parsers read like the grammar outline in spec.md §6.
const (
	delimLabelStart   = '|'
	delimLabelEnd     = '|'
	delimIRIStart     = '<'
	delimIRIEnd       = '>'
	delimMediaStart   = '>'
	delimMediaEnd     = '<'
	delimBinary       = '%'
	delimCharacter    = '\''
	delimEmail        = '^'
	delimRegexp       = '/'
	delimString       = '"'
	delimTelephone    = '+'
	delimTemporal     = '@'
	delimUUID         = '&'
	delimListStart    = '['
	delimListEnd      = ']'
	delimSetStart     = '('
	delimSetEnd       = ')'
	delimMapStart     = '{'
	delimMapEnd       = '}'
	delimObject       = '*'
	delimDecimalForce = '$'
	delimDescrStart   = ':'
	delimDescrEnd     = ';'
	delimAssign       = '='
	delimComma        = ','
	delimIDTag        = '#'
	delimNary         = '+'
	delimNamespace    = '/'
	delimSegment      = '-'
	delimKeyWrap      = '\\'
	delimComment      = '!'
	delimHeaderStart  = "==="
)

// isNameTokenBegin reports whether r may start a name-token (handle segment,
// alias, or media-type word).
func isNameTokenBegin(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isNameTokenChar reports whether r may continue a name-token.
func isNameTokenChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// isHorizontalWhitespace reports whether r is space or tab, but not a line
// break (the two are distinguished by skip_filler vs. simple whitespace
// skipping, per spec.md §4.1).
func isHorizontalWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isLineBreak reports whether r is a line-ending code point.
func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// isDigit reports whether r is an ASCII decimal digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isHexDigit reports whether r is an ASCII hex digit, used by \uXXXX escapes.
func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isValidIDToken reports whether s could be read back as a handle's "#id"
// token (labels.go's parseHandle: first rune isNameTokenBegin or a digit,
// remaining runes isNameTokenChar or a digit). An ID not matching this
// shape — e.g. one containing a space or "|" — cannot be spliced into the
// compact "handle#id" form and must fall back to the "|"id"|*Type" form.
func isValidIDToken(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isNameTokenBegin(r) && !isDigit(r) {
				return false
			}
			continue
		}
		if !isNameTokenChar(r) && !isDigit(r) {
			return false
		}
	}
	return true
}

// isPhoneChar reports whether r may appear in the raw body of a telephone
// number literal (spec.md §4.4, "+" dispatch). The literal has no closing
// delimiter; it ends at the first rune that fails this predicate.
func isPhoneChar(r rune) bool {
	return isDigit(r) || r == '-' || r == ' ' || r == '.' || r == '(' || r == ')'
}

// escapeTable maps the character following a backslash to its expanded
// rune, for the shared character/string escape grammar of spec.md §4.4.
var escapeTable = map[rune]rune{
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

// reverseEscapeTable maps a rune needing escaping back to the letter used
// after the backslash, for the serializer (spec.md §4.4, C8).
var reverseEscapeTable = map[rune]rune{
	'\\': '\\',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\v': 'v',
}
