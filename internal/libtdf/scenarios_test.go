package libtdf

import (
	"testing"

	"github.com/globalmentor/go-urf/internal/testutil/assert"
)

func parseRoots(t *testing.T, src string, opts ...ParseOption) []*Resource {
	t.Helper()
	roots, err := Parse(src, NewGraphProcessor(), opts...)
	assert.NoError(t, err)
	return roots
}

// Scenario 1: a namespaced object, declared via a header alias.
func Test_scenario_namespacedObject(t *testing.T) {
	src := "===>urf:dc=<http://purl.org/dc/terms/>;<\n" +
		`|<https://ex.com/x>|*:dc/creator="J";`
	roots := parseRoots(t, src)
	assert.Equal(t, 1, len(roots))
	root := roots[0]
	assert.Equal(t, "https://ex.com/x", root.Tag.IRI)
	assert.Equal(t, 1, len(root.Edges))
	assert.Equal(t, "http://purl.org/dc/terms/creator", root.Edges[0].Property.Tag.IRI)
	assert.Equal(t, LiteralString, root.Edges[0].Value.Literal.Kind)
	assert.Equal(t, "J", root.Edges[0].Value.Literal.Str)
}

// Scenario 2: an n-ary property marker ("+") is accepted and resolves the
// same property as its bare form; the marker itself is not retained on the
// in-memory edge (see DESIGN.md).
func Test_scenario_naryProperty(t *testing.T) {
	roots := parseRoots(t, `*Foo:bar+=1;`)
	assert.Equal(t, 1, len(roots))
	root := roots[0]
	assert.Equal(t, "https://urf.name/Foo", root.TypeTag.IRI)
	assert.Equal(t, 1, len(root.Edges))
	assert.Equal(t, "https://urf.name/bar", root.Edges[0].Property.Tag.IRI)
	assert.Equal(t, int64(1), root.Edges[0].Value.Literal.Long)
}

// Scenario 3: an alias declared on the first root resolves a later
// back-reference to the identical resource.
func Test_scenario_aliasBackReference(t *testing.T) {
	roots := parseRoots(t, `|x|*Foo:bar=1;,|x|`)
	assert.Equal(t, 2, len(roots))
	assert.True(t, roots[0] == roots[1])
	assert.Equal(t, "x", roots[0].Alias)
}

// Scenario 4: an ID label combines with a type tag to form the effective
// tag "typeTag#id".
func Test_scenario_idAndType(t *testing.T) {
	roots := parseRoots(t, `|"42"|*Foo`)
	assert.Equal(t, 1, len(roots))
	root := roots[0]
	assert.Equal(t, "https://urf.name/Foo#42", root.Tag.IRI)
	assert.Equal(t, "https://urf.name/Foo", root.TypeTag.IRI)
	id, ok := root.Tag.Fragment()
	assert.True(t, ok)
	assert.Equal(t, "42", id)
}

// Scenario 4 (literal spec input): a bare handle carrying an id token
// ("Ex#bar"), followed by an explicit "*Type" and a description, resolves
// to tag "<default-ns>/Ex#bar" with type tag "<default-ns>/Ex", and
// round-trips through Serialize.
func Test_scenario_idAndType_handleForm(t *testing.T) {
	src := `Ex#bar*Ex:test="first";`
	roots := parseRoots(t, src)
	assert.Equal(t, 1, len(roots))
	root := roots[0]
	assert.Equal(t, "https://urf.name/Ex#bar", root.Tag.IRI)
	assert.Equal(t, "https://urf.name/Ex", root.TypeTag.IRI)
	assert.Equal(t, 1, len(root.Edges))
	assert.Equal(t, "https://urf.name/test", root.Edges[0].Property.Tag.IRI)
	assert.Equal(t, "first", root.Edges[0].Value.Literal.Str)

	out, err := Serialize(roots)
	assert.NoError(t, err)
	reparsed := parseRoots(t, out)
	assert.Equal(t, 1, len(reparsed))
	assert.Equal(t, "https://urf.name/Ex#bar", reparsed[0].Tag.IRI)
	assert.Equal(t, "https://urf.name/Ex", reparsed[0].TypeTag.IRI)
	assert.Equal(t, 1, len(reparsed[0].Edges))
	assert.Equal(t, "first", reparsed[0].Edges[0].Value.Literal.Str)
}

// Scenario 5: a map key that is itself a described object must be wrapped
// in "\...\" so its description cannot be mistaken for the entry's.
func Test_scenario_mapWithDescribedKey(t *testing.T) {
	roots := parseRoots(t, `{\|"k"|*Foo:label="L";\:"v"}`)
	assert.Equal(t, 1, len(roots))
	root := roots[0]
	assert.Equal(t, KindMap, root.Kind)
	assert.Equal(t, 1, len(root.Entries))
	entry := root.Entries[0]
	assert.Equal(t, "https://urf.name/Foo#k", entry.Key.Tag.IRI)
	assert.Equal(t, 1, len(entry.Key.Edges))
	assert.Equal(t, "https://urf.name/label", entry.Key.Edges[0].Property.Tag.IRI)
	assert.Equal(t, "L", entry.Key.Edges[0].Value.Literal.Str)
	assert.Equal(t, "v", entry.Value.Literal.Str)
}

// Scenario 6: "false"/"true" can never be emitted as a bare handle, since a
// bare handle segment of that name always parses back as the Boolean
// literal instead of an object reference.
func Test_scenario_booleanHandleAmbiguity(t *testing.T) {
	roots := parseRoots(t, `|<https://urf.name/false>|*Bar`)
	assert.Equal(t, 1, len(roots))
	root := roots[0]
	assert.Equal(t, "https://urf.name/false", root.Tag.IRI)
	assert.Equal(t, "https://urf.name/Bar", root.TypeTag.IRI)

	out, err := Serialize(roots)
	assert.NoError(t, err)
	assert.Equal(t, `|<https://urf.name/false>|*Bar`, out)
}
