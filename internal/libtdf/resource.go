package libtdf

import "math/big"

// Kind discriminates the runtime shape of a Resource (spec.md §3).
type Kind int

const (
	KindObject Kind = iota
	KindList
	KindSet
	KindMap
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// LiteralKind enumerates the closed set of literal value kinds (spec.md §3).
type LiteralKind int

const (
	LiteralBinary LiteralKind = iota
	LiteralBoolean
	LiteralCharacter
	LiteralEmail
	LiteralIRI
	LiteralMediaType
	LiteralLong
	LiteralBigInt
	LiteralDouble
	LiteralBigDecimal
	LiteralRegexp
	LiteralString
	LiteralTelephone
	LiteralTemporal
	LiteralUUID
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralBinary:
		return "binary"
	case LiteralBoolean:
		return "boolean"
	case LiteralCharacter:
		return "character"
	case LiteralEmail:
		return "email"
	case LiteralIRI:
		return "iri"
	case LiteralMediaType:
		return "mediaType"
	case LiteralLong:
		return "integer"
	case LiteralBigInt:
		return "integer"
	case LiteralDouble:
		return "number"
	case LiteralBigDecimal:
		return "decimal"
	case LiteralRegexp:
		return "regexp"
	case LiteralString:
		return "string"
	case LiteralTelephone:
		return "telephone"
	case LiteralTemporal:
		return "temporal"
	case LiteralUUID:
		return "uuid"
	default:
		return "unknown"
	}
}

// Decimal is an arbitrary-precision decimal number: Unscaled * 10^-Scale.
// It backs LiteralBigDecimal the way java.math.BigDecimal backs the
// original format's "$"-prefixed fractional/exponent literals (spec.md
// §4.4 numeric typing table).
type Decimal struct {
	Unscaled *big.Int
	Scale    int32
}

// Literal is a tagged union over the closed literal-value set (spec.md §9
// design notes). It holds no resource reference: references to other
// resources are carried by Resource, whose Kind selects between a literal
// and a compound value. Only the field(s) matching Kind are meaningful.
type Literal struct {
	Kind LiteralKind

	Str     string   // String, Regexp, Email, IRI, MediaType, Telephone (canonical textual payload)
	Bytes   []byte   // Binary
	Bool    bool     // Boolean
	Char    rune     // Character
	Long    int64    // Long-ranged integer
	BigInt  *big.Int // integer outside the long range
	Double  float64  // floating-point number
	Decimal Decimal  // arbitrary-precision decimal
	Temporal Temporal // one of the ten ISO-8601 subtypes
	UUID    [16]byte // UUID
}

// Resource is the universal node of a TDF graph (spec.md §3). A resource
// may carry a tag, a type tag, zero or more property/value edges, or a
// literal value; identity for a tagged resource is by tag IRI, and for a
// blank resource is by Go pointer identity (spec.md §9 design notes).
type Resource struct {
	Tag     *Tag
	TypeTag *Tag
	Alias   string // document-scoped alias, set when the resource was declared via |alias|

	Kind    Kind
	Literal *Literal // non-nil iff Kind == KindLiteral

	Edges   []Edge      // KindObject: property/value pairs, in document order
	Items   []*Resource // KindList, KindSet: ordered members
	Entries []*MapEntry // KindMap: ordered entries

	// Mark records where this resource's value began, for error reporting
	// and for distinguishing "declared here" during the parse.
	Mark Mark
}

// Edge is a (property, value) pair hung off an object resource.
type Edge struct {
	Property *Resource
	Value    *Resource
}

// MapEntry is the synthetic blank map-entry resource plus its key and
// value, per spec.md §4.5 ("each entry is emitted as three statements on a
// synthetic blank map-entry resource").
type MapEntry struct {
	Entry *Resource
	Key   *Resource
	Value *Resource
}

// NewBlankObject returns a fresh, identity-only object resource.
func NewBlankObject() *Resource {
	return &Resource{Kind: KindObject}
}

// AddEdge appends a property/value edge to an object resource, merging the
// statement even if the property tag repeats — spec.md does not dedupe
// n-ary edges, each process_statement is independent.
func (r *Resource) AddEdge(property, value *Resource) {
	r.Edges = append(r.Edges, Edge{Property: property, Value: value})
}

// Property returns the first edge value for the given property tag IRI, or
// nil if none is present.
func (r *Resource) Property(tagIRI string) *Resource {
	for _, e := range r.Edges {
		if e.Property.Tag != nil && e.Property.Tag.IRI == tagIRI {
			return e.Value
		}
	}
	return nil
}

// IsCompound reports whether the resource is a collection or object — the
// kinds that participate in reference discovery (spec.md §4.6); literal
// resources are identity-substitutable and excluded.
func (r *Resource) IsCompound() bool {
	return r.Kind != KindLiteral
}
