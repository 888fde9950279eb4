package libtdf

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// parseStringBody reads the escaped content between two delim runes (the
// delimiter itself is always escape-able, spec.md §4.4) and returns the
// decoded text. It consumes both the opening and the closing delim.
func (p *Parser[R]) parseStringBody(delim rune) (string, error) {
	var b strings.Builder
	if err := p.r.check(delim); err != nil {
		return "", err
	}
	for {
		r := p.r.peek()
		switch {
		case r == eof:
			return "", newParseError(p.r.mark(), "unexpected end of input in string literal")
		case r == delim:
			p.r.advance()
			return b.String(), nil
		case r == '\\':
			decoded, err := p.parseEscape(delim)
			if err != nil {
				return "", err
			}
			b.WriteRune(decoded)
		default:
			b.WriteRune(p.r.advance())
		}
	}
}

// parseEscape parses one backslash escape, including the shared
// \uXXXX...\uXXXX surrogate-pair rule (spec.md §4.4). delim is the
// containing literal's delimiter, which is always a legal escape target.
func (p *Parser[R]) parseEscape(delim rune) (rune, error) {
	mark := p.r.mark()
	if err := p.r.check('\\'); err != nil {
		return 0, err
	}
	c := p.r.peek()
	if c == delim {
		p.r.advance()
		return delim, nil
	}
	if c == 'u' {
		p.r.advance()
		return p.parseUnicodeEscape(mark)
	}
	if repl, ok := escapeTable[c]; ok {
		p.r.advance()
		return repl, nil
	}
	return 0, newParseErrorf(mark, "illegal escape %q", "\\"+string(c))
}

func (p *Parser[R]) parseUnicodeEscape(mark Mark) (rune, error) {
	hi, err := p.readHex4(mark)
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(rune(hi)) && hi >= 0xD800 && hi <= 0xDBFF {
		if p.r.peek() != '\\' || p.r.peekAt(1) != 'u' {
			return 0, newParseErrorf(mark, "high surrogate \\u%04X not followed by \\u low surrogate", hi)
		}
		p.r.advance()
		p.r.advance()
		lo, err := p.readHex4(mark)
		if err != nil {
			return 0, err
		}
		combined := utf16.DecodeRune(rune(hi), rune(lo))
		if combined == utf8.RuneError {
			return 0, newParseErrorf(mark, "invalid surrogate pair \\u%04X\\u%04X", hi, lo)
		}
		return combined, nil
	}
	if hi >= 0xDC00 && hi <= 0xDFFF {
		return 0, newParseErrorf(mark, "unexpected low surrogate \\u%04X", hi)
	}
	return rune(hi), nil
}

func (p *Parser[R]) readHex4(mark Mark) (int, error) {
	s, err := p.r.readRequiredCount(4)
	if err != nil {
		return 0, err
	}
	var v int
	for _, r := range s {
		if !isHexDigit(r) {
			return 0, newParseErrorf(mark, "invalid hex digit %q in \\u escape", r)
		}
		v = v*16 + hexVal(r)
	}
	return v, nil
}

func hexVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

// parseString parses the '"'-delimited string literal (spec.md §4.4).
func (p *Parser[R]) parseString() (*Resource, error) {
	mark := p.r.mark()
	s, err := p.parseStringBody(delimString)
	if err != nil {
		return nil, err
	}
	return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralString, Str: s}}, nil
}

// parseCharacter parses the "'"-delimited single-code-point literal.
func (p *Parser[R]) parseCharacter() (*Resource, error) {
	mark := p.r.mark()
	s, err := p.parseStringBody(delimCharacter)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return nil, newParseErrorf(mark, "character literal must contain exactly one code point, got %d", len(runes))
	}
	return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralCharacter, Char: runes[0]}}, nil
}

// escapeString renders s back into a delim-quoted literal, escaping the
// delimiter, backslash, and control characters that would otherwise break
// the character/string grammar (spec.md §4.4,
// "parse-safe escaping").
func escapeString(s string, delim rune) string {
	var b strings.Builder
	b.WriteRune(delim)
	for _, r := range s {
		switch {
		case r == delim || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case reverseEscapeTable[r] != 0:
			b.WriteRune('\\')
			b.WriteRune(reverseEscapeTable[r])
		case r < 0x20:
			b.WriteString(escapeUnicode(r))
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(delim)
	return b.String()
}

func escapeUnicode(r rune) string {
	const hex = "0123456789abcdef"
	buf := [6]byte{'\\', 'u', 0, 0, 0, 0}
	v := uint16(r)
	for i := 5; i >= 2; i-- {
		buf[i] = hex[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}
