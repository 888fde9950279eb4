package libtdf

import (
	"testing"

	"github.com/globalmentor/go-urf/internal/testutil/assert"
)

// Round-trip identity (spec.md §8): serializing a parsed document and
// reading the result back must reproduce the same surface text, when no
// ambiguity-avoiding choice (alias generation, handle vs. label) is forced.
func Test_roundTripIdentity(t *testing.T) {
	src := `*Foo:bar=1,baz="hi";`
	roots := parseRoots(t, src)
	out, err := Serialize(roots)
	assert.NoError(t, err)
	assert.Equal(t, src, out)
}

// Alias necessity + reference single-emission (spec.md §8): a blank
// resource reachable from more than one edge must be emitted in full
// exactly once, under a generated alias, and every other reference to it
// must render as a back-reference to that alias.
func Test_aliasNecessity_and_referenceSingleEmission(t *testing.T) {
	label := &Resource{Kind: KindObject, Tag: &Tag{IRI: "https://example.com/label"}}
	shared := NewBlankObject()
	shared.AddEdge(label, &Resource{Kind: KindLiteral, Literal: &Literal{Kind: LiteralString, Str: "X"}})

	propA := &Resource{Kind: KindObject, Tag: &Tag{IRI: "https://example.com/a"}}
	propB := &Resource{Kind: KindObject, Tag: &Tag{IRI: "https://example.com/b"}}
	root := NewBlankObject()
	root.AddEdge(propA, shared)
	root.AddEdge(propB, shared)

	out, err := Serialize([]*Resource{root})
	assert.NoError(t, err)

	want := `*:|<https://example.com/a>|=|_1|*:|<https://example.com/label>|="X";,` +
		`|<https://example.com/b>|=|_1|;`
	assert.Equal(t, want, out)
}

// A resource visited only once never needs a generated alias, even when it
// is a compound value nested several levels deep.
func Test_aliasNecessity_singleVisitNeedsNoAlias(t *testing.T) {
	inner := NewBlankObject()
	inner.AddEdge(&Resource{Kind: KindObject, Tag: &Tag{IRI: "https://example.com/label"}},
		&Resource{Kind: KindLiteral, Literal: &Literal{Kind: LiteralString, Str: "X"}})
	root := NewBlankObject()
	root.AddEdge(&Resource{Kind: KindObject, Tag: &Tag{IRI: "https://example.com/a"}}, inner)

	out, err := Serialize([]*Resource{root})
	assert.NoError(t, err)
	assert.Equal(t, `*:|<https://example.com/a>|=*:|<https://example.com/label>|="X";;`, out)
}

func Test_formattedOutput_isIndented(t *testing.T) {
	roots := parseRoots(t, `*Foo:bar=1;`)
	out, err := Serialize(roots, WithFormatted(true), WithIndentWidth(2))
	assert.NoError(t, err)
	assert.Equal(t, "*Foo:\n  bar=1\n;", out)
}

func Test_excludeDuplicateRoots(t *testing.T) {
	shared := &Resource{Kind: KindObject, Tag: &Tag{IRI: "https://urf.name/shared"}}
	out, err := Serialize([]*Resource{shared, shared}, WithExcludeDuplicateRoots(true))
	assert.NoError(t, err)
	assert.Equal(t, "shared", out)
}
