package libtdf

import "fmt"

// Namespace is the bidirectional alias<->namespace-IRI registry used by
// both the parser and the serializer (C9, spec.md §4.8). Per spec.md §5 it
// is read-only during parse/emit after initial population; no locking is
// defined, and callers sharing a registry across goroutines must treat it
// as immutable, exactly as the teacher treats a shared *Namespace.
type Namespace struct {
	aliasToIRI map[string]string
	iriToAlias map[string]string
}

// NewNamespace returns an empty namespace registry.
func NewNamespace() *Namespace {
	return &Namespace{
		aliasToIRI: make(map[string]string),
		iriToAlias: make(map[string]string),
	}
}

// Register associates alias with namespace IRI. Registering the same alias
// with a different IRI is an error (spec.md §7: "alias redefined with
// different value").
func (n *Namespace) Register(alias, iri string) error {
	if existing, ok := n.aliasToIRI[alias]; ok {
		if existing != iri {
			return fmt.Errorf("namespace alias %q already registered for %q", alias, existing)
		}
		return nil
	}
	n.aliasToIRI[alias] = iri
	if _, ok := n.iriToAlias[iri]; !ok {
		n.iriToAlias[iri] = alias
	}
	return nil
}

// Resolve returns the namespace IRI for alias, and whether it is registered
// (spec.md §4.3: "failure ⇒ parse error" is the caller's responsibility).
func (n *Namespace) Resolve(alias string) (string, bool) {
	iri, ok := n.aliasToIRI[alias]
	return iri, ok
}

// AliasFor returns the alias registered for namespace IRI, and whether one
// exists — used by the serializer (§4.7) to prefer a handle over a full
// tag label when emitting a reference.
func (n *Namespace) AliasFor(iri string) (string, bool) {
	alias, ok := n.iriToAlias[iri]
	return alias, ok
}

// Aliases returns the registered aliases in no particular order — used by
// the serializer header emission (§4.7 step 3).
func (n *Namespace) Aliases() []string {
	aliases := make([]string, 0, len(n.aliasToIRI))
	for a := range n.aliasToIRI {
		aliases = append(aliases, a)
	}
	return aliases
}

// Len reports how many aliases are registered.
func (n *Namespace) Len() int { return len(n.aliasToIRI) }

// ResolveHandle joins a namespace IRI with the dash-joined name segments of
// a handle, per spec.md §4.8: "A handle alias/segment-… resolves to
// namespace.resolve(segment-…)".
func ResolveHandle(namespaceIRI string, segments []string) string {
	name := segments[0]
	for _, s := range segments[1:] {
		name += "-" + s
	}
	return namespaceIRI + name
}
