// Package tdf implements the Textual Description Format (TDF): a graph
// notation of tagged, blank, and aliased resources bearing typed
// property/value edges, a closed set of literal value kinds, and the list,
// set, and map collection forms.
//
// Source code and other details for the project are available at GitHub:
//
//	https://github.com/globalmentor/go-urf
package tdf

import (
	"io"

	"github.com/globalmentor/go-urf/internal/libtdf"
)

// Re-export the data model from internal/libtdf.
type (
	Resource = libtdf.Resource
	Edge     = libtdf.Edge
	MapEntry = libtdf.MapEntry
	Tag      = libtdf.Tag
	Kind     = libtdf.Kind

	Literal      = libtdf.Literal
	LiteralKind  = libtdf.LiteralKind
	Decimal      = libtdf.Decimal
	Temporal     = libtdf.Temporal
	TemporalKind = libtdf.TemporalSubtype
)

// Re-export the Kind constants.
const (
	KindObject  = libtdf.KindObject
	KindList    = libtdf.KindList
	KindSet     = libtdf.KindSet
	KindMap     = libtdf.KindMap
	KindLiteral = libtdf.KindLiteral
)

// Re-export the LiteralKind constants.
const (
	LiteralBinary     = libtdf.LiteralBinary
	LiteralBoolean    = libtdf.LiteralBoolean
	LiteralCharacter  = libtdf.LiteralCharacter
	LiteralEmail      = libtdf.LiteralEmail
	LiteralIRI        = libtdf.LiteralIRI
	LiteralMediaType  = libtdf.LiteralMediaType
	LiteralLong       = libtdf.LiteralLong
	LiteralBigInt     = libtdf.LiteralBigInt
	LiteralDouble     = libtdf.LiteralDouble
	LiteralBigDecimal = libtdf.LiteralBigDecimal
	LiteralRegexp     = libtdf.LiteralRegexp
	LiteralString     = libtdf.LiteralString
	LiteralTelephone  = libtdf.LiteralTelephone
	LiteralTemporal   = libtdf.LiteralTemporal
	LiteralUUID       = libtdf.LiteralUUID
)

// Re-export media types, namespaces, and the namespace registry.
const (
	GeneralMediaType    = libtdf.GeneralMediaType
	PropertiesMediaType = libtdf.PropertiesMediaType
	DefaultNamespace    = libtdf.DefaultNamespace
	AdHocNamespace      = libtdf.AdHocNamespace
)

type Namespace = libtdf.Namespace

// NewNamespace returns an empty namespace registry.
func NewNamespace() *Namespace { return libtdf.NewNamespace() }

// Processor is the event-sink contract a caller supplies to [Parse]: the
// parser emits DeclareResource/ProcessStatement/ReportRoot events as it
// discovers them, then calls Result once after a successful parse. Its
// method set matches libtdf.Processor[R] exactly, so any libtdf.Processor[R]
// satisfies this interface too.
type Processor[R any] interface {
	DeclareResource(tag, typeTag *Tag) error
	ProcessStatement(subject, property, value *Resource) error
	ReportRoot(root *Resource) error
	Result() (R, error)
}

// GraphProcessor collects a parse's roots into a plain Resource slice; it is
// the Processor that ParseGraph uses.
type GraphProcessor = libtdf.GraphProcessor

// NewGraphProcessor returns a Processor that collects roots as-is.
func NewGraphProcessor() *GraphProcessor { return libtdf.NewGraphProcessor() }

// Re-export the collaborator interfaces and the default codec bundle.
type (
	Collaborators  = libtdf.Collaborators
	IRICodec       = libtdf.IRICodec
	EmailCodec     = libtdf.EmailCodec
	TelephoneCodec = libtdf.TelephoneCodec
	UUIDCodec      = libtdf.UUIDCodec
	MediaTypeCodec = libtdf.MediaTypeCodec
)

// DefaultCollaborators returns the built-in codec set.
func DefaultCollaborators() Collaborators { return libtdf.DefaultCollaborators() }

// Re-export the error types.
type (
	ParseError     = libtdf.ParseError
	SerializeError = libtdf.SerializeError
	Mark           = libtdf.Mark
)

// Re-export the options.
type (
	ParseOption     = libtdf.ParseOption
	SerializeOption = libtdf.SerializeOption
)

var (
	WithExpectedMediaType       = libtdf.WithExpectedMediaType
	WithNamespaceRegistry       = libtdf.WithNamespaceRegistry
	WithDescriptionOnNonObjects = libtdf.WithDescriptionOnNonObjects
	WithParseCollaborators      = libtdf.WithParseCollaborators

	WithFormatted               = libtdf.WithFormatted
	WithIndentWidth              = libtdf.WithIndentWidth
	WithAutoNamespaceDiscovery   = libtdf.WithAutoNamespaceDiscovery
	WithShortPropertyForm        = libtdf.WithShortPropertyForm
	WithExcludeDuplicateRoots    = libtdf.WithExcludeDuplicateRoots
	WithGeneratedAliasPrefix     = libtdf.WithGeneratedAliasPrefix
	WithSerializeMediaType       = libtdf.WithSerializeMediaType
	WithSerializeNamespaceRegistry = libtdf.WithSerializeNamespaceRegistry
	WithSerializeCollaborators   = libtdf.WithSerializeCollaborators
)

//-----------------------------------------------------------------------------
// Parse / Write API
//-----------------------------------------------------------------------------

// Parse parses a TDF document from src, reporting events to proc as it goes,
// and returns whatever proc.Result returns once parsing succeeds.
//
// Most callers have no bespoke application model and want the parsed graph
// itself; use [ParseGraph] for that case instead of supplying a Processor.
func Parse[R any](src string, proc Processor[R], opts ...ParseOption) (R, error) {
	return libtdf.Parse(src, proc, opts...)
}

// ParseGraph parses a TDF document from src and returns its root resources as
// a plain graph, using the trivial [GraphProcessor] sink.
func ParseGraph(src string, opts ...ParseOption) ([]*Resource, error) {
	return libtdf.Parse(src, NewGraphProcessor(), opts...)
}

// Serialize renders roots to the TDF textual surface form and returns it as a
// string.
func Serialize(roots []*Resource, opts ...SerializeOption) (string, error) {
	return libtdf.Serialize(roots, opts...)
}

// Write renders roots to w.
func Write(w io.Writer, roots []*Resource, opts ...SerializeOption) error {
	return libtdf.Write(w, roots, opts...)
}
