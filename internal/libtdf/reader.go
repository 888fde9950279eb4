package libtdf

import (
	"io"
	"strings"
)

// eof is the sentinel rune returned by peek at end of input.
const eof rune = -1

// nextItem is the tri-state result of skipSequenceDelimiters (spec.md
// §4.1): it drives whether a missing terminator is an error or a clean
// end-of-sequence.
type nextItem int

const (
	nextItemNone nextItem = iota
	nextItemOptional
	nextItemRequired
)

// reader is the code-point stream with one-rune lookahead and a bounded
// pushback, implementing the lexical layer (C1, spec.md §4.1). It is built
// on the whole input held in memory (the string decoded into a rune slice), the same
// way the teacher's Parser works against an in-memory buffer rather than an
// incremental io.Reader — TDF documents are parsed whole, never streamed
// (spec.md §1 Non-goals: "streaming partial documents").
type reader struct {
	src    []rune
	pos    int // index of the next unread rune
	line   int
	column int
	marks  []int // pushback stack of saved pos
}

func newReader(s string) *reader {
	return &reader{src: []rune(s), pos: 0, line: 1, column: 1}
}

func newReaderFrom(r io.Reader) (*reader, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		return nil, err
	}
	return newReader(b.String()), nil
}

// mark returns the current position.
func (rd *reader) mark() Mark {
	return Mark{Offset: rd.pos, Line: rd.line, Column: rd.column}
}

// peek returns the next rune without consuming it, or eof.
func (rd *reader) peek() rune {
	if rd.pos >= len(rd.src) {
		return eof
	}
	return rd.src[rd.pos]
}

// peekAt returns the rune n positions ahead (0 == peek()), or eof.
func (rd *reader) peekAt(n int) rune {
	if rd.pos+n >= len(rd.src) {
		return eof
	}
	return rd.src[rd.pos+n]
}

// advance consumes and returns the next rune, tracking line/column.
func (rd *reader) advance() rune {
	r := rd.peek()
	if r == eof {
		return eof
	}
	rd.pos++
	if r == '\n' {
		rd.line++
		rd.column = 1
	} else {
		rd.column++
	}
	return r
}

// pushMark saves the current position onto the pushback stack.
func (rd *reader) pushMark() {
	rd.marks = append(rd.marks, rd.pos)
}

// popMark discards the most recently pushed mark without resetting.
func (rd *reader) popMark() {
	rd.marks = rd.marks[:len(rd.marks)-1]
}

// resetToMark rewinds the stream to the most recently pushed mark. Line and
// column tracking is recomputed from scratch since rewinding can cross line
// boundaries; this is simple and correct, and rewinds are rare (bounded
// lookahead only).
func (rd *reader) resetToMark() {
	target := rd.marks[len(rd.marks)-1]
	rd.marks = rd.marks[:len(rd.marks)-1]
	rd.pos = 0
	rd.line = 1
	rd.column = 1
	for rd.pos < target {
		rd.advance()
	}
}

// readRequired consumes and returns the next rune, failing if at eof.
func (rd *reader) readRequired() (rune, error) {
	if rd.peek() == eof {
		return eof, newParseError(rd.mark(), "unexpected end of input")
	}
	return rd.advance(), nil
}

// readRequiredCount consumes exactly n runes, failing on early eof.
func (rd *reader) readRequiredCount(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		r, err := rd.readRequired()
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// readWhile consumes and returns runes for as long as pred holds.
func (rd *reader) readWhile(pred func(rune) bool) string {
	var b strings.Builder
	for pred(rd.peek()) {
		b.WriteRune(rd.advance())
	}
	return b.String()
}

// readUntil consumes and returns runes until pred holds (or eof), not
// consuming the terminating rune.
func (rd *reader) readUntil(pred func(rune) bool) string {
	var b strings.Builder
	for rd.peek() != eof && !pred(rd.peek()) {
		b.WriteRune(rd.advance())
	}
	return b.String()
}

// check asserts the next rune equals r and consumes it, failing otherwise.
func (rd *reader) check(r rune) error {
	if rd.peek() != r {
		return newParseErrorf(rd.mark(), "expected %q, found %q", r, describeRune(rd.peek()))
	}
	rd.advance()
	return nil
}

// checkLiteral asserts the stream continues with the literal string s and
// consumes it, failing otherwise.
func (rd *reader) checkLiteral(s string) error {
	start := rd.mark()
	for _, want := range s {
		got := rd.advance()
		if got != want {
			return newParseErrorf(start, "expected %q", s)
		}
	}
	return nil
}

// confirm consumes r if it is next, reporting whether it did.
func (rd *reader) confirm(r rune) bool {
	if rd.peek() != r {
		return false
	}
	rd.advance()
	return true
}

// confirmLiteral consumes the literal s if it is next (with unlimited
// lookahead since the whole document is in memory), reporting whether it
// did.
func (rd *reader) confirmLiteral(s string) bool {
	rs := []rune(s)
	for i, want := range rs {
		if rd.peekAt(i) != want {
			return false
		}
	}
	for range rs {
		rd.advance()
	}
	return true
}

// reach consumes runes up to but not including the first occurrence of r,
// failing if the stream runs out first.
func (rd *reader) reach(r rune) (string, error) {
	var b strings.Builder
	for {
		c := rd.peek()
		if c == eof {
			return "", newParseErrorf(rd.mark(), "expected %q before end of input", r)
		}
		if c == r {
			return b.String(), nil
		}
		b.WriteRune(rd.advance())
	}
}

// skipFiller consumes whitespace, line-endings, and "!...<EOL>" line
// comments, leaving position at the next significant character (spec.md
// §4.1).
func (rd *reader) skipFiller() {
	for {
		switch {
		case isHorizontalWhitespace(rd.peek()) || isLineBreak(rd.peek()):
			rd.advance()
		case rd.peek() == delimComment:
			rd.readUntil(isLineBreak)
		default:
			return
		}
	}
}

// skipHorizontal consumes only space/tab.
func (rd *reader) skipHorizontal() {
	rd.readWhile(isHorizontalWhitespace)
}

// skipSequenceDelimiters consumes horizontal whitespace and at most one
// explicit "," plus any number of line breaks after an item, returning the
// tri-state that drives whether a missing next item is an error (spec.md
// §4.1).
func (rd *reader) skipSequenceDelimiters() nextItem {
	rd.skipHorizontal()
	sawComma := false
	if rd.peek() == delimComma {
		rd.advance()
		sawComma = true
	}
	sawBreak := false
	for {
		rd.skipHorizontal()
		if isLineBreak(rd.peek()) {
			rd.advance()
			sawBreak = true
			continue
		}
		if rd.peek() == delimComment {
			rd.readUntil(isLineBreak)
			continue
		}
		break
	}
	switch {
	case sawComma:
		return nextItemRequired
	case sawBreak:
		return nextItemOptional
	default:
		return nextItemNone
	}
}

func describeRune(r rune) string {
	if r == eof {
		return "<eof>"
	}
	return string(r)
}
