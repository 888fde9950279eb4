// Error types for TDF parsing and serializing.
// Provides structured error reporting with line/column information, in the
// same shape as the teacher's MarkedYAMLError/ParserError/EmitterError
// family (go.yaml.in/yaml internal/libyaml/errors.go).

package libtdf

import "fmt"

// Mark holds a position in the input stream.
type Mark struct {
	Offset int // rune (code point) offset
	Line   int // 1-indexed line
	Column int // 1-indexed column
}

func (m Mark) String() string {
	if m.Line == 0 {
		return "<unknown position>"
	}
	return fmt.Sprintf("line %d, column %d", m.Line, m.Column)
}

// ParseError is the single error kind for every syntactic and semantic
// violation encountered while parsing (spec.md §7): lexical, structural,
// semantic, and numeric/temporal failures are all reported this way,
// distinguished only by Message.
type ParseError struct {
	Mark    Mark
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tdf: parse error at %s: %s: %v", e.Mark, e.Message, e.Cause)
	}
	return fmt.Sprintf("tdf: parse error at %s: %s", e.Mark, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func newParseError(mark Mark, message string) error {
	return &ParseError{Mark: mark, Message: message}
}

func newParseErrorf(mark Mark, format string, args ...any) error {
	return &ParseError{Mark: mark, Message: fmt.Sprintf(format, args...)}
}

func wrapParseError(mark Mark, message string, cause error) error {
	return &ParseError{Mark: mark, Message: message, Cause: cause}
}

// SerializeError is a usage error raised synchronously by the serializer:
// an unsupported value kind, an illegal alias name, an illegal URI, or an
// illegal telephone form. Unlike ParseError it carries no input position —
// it describes a defect in the resource graph being emitted, not in text
// being read.
type SerializeError struct {
	Message string
	Cause   error
}

func (e *SerializeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tdf: serialize error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("tdf: serialize error: %s", e.Message)
}

func (e *SerializeError) Unwrap() error {
	return e.Cause
}

func newSerializeError(message string) error {
	return &SerializeError{Message: message}
}

func wrapSerializeError(message string, cause error) error {
	return &SerializeError{Message: message, Cause: cause}
}
