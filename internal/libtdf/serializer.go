package libtdf

import (
	"encoding/base64"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// serializer implements C7 (reference discovery, via discoverReferences)
// plus C8 (emission, spec.md §4.7). Discovery and emission are kept as
// distinct passes, never a single streaming emit, because alias decisions
// depend on global reference counts (spec.md §9, "Serializer passes").
// A serializer instance is one-shot: its reference map, emitted-set, and
// generated-alias counter are scoped to a single document (spec.md §5).
type serializer struct {
	opts   SerializeOptions
	ns     *Namespace
	collab Collaborators

	refMap       map[*Resource]bool
	emitted      map[*Resource]bool
	aliasOf      map[*Resource]string
	aliasCounter int
}

func newSerializer(o SerializeOptions) *serializer {
	return &serializer{
		opts:    o,
		ns:      o.Namespace,
		collab:  o.Collaborators,
		emitted: make(map[*Resource]bool),
		aliasOf: make(map[*Resource]string),
	}
}

// Serialize renders roots to the TDF textual surface form and returns it as
// a string (spec.md §4.7).
func Serialize(roots []*Resource, opts ...SerializeOption) (string, error) {
	o := NewSerializeOptions(opts...)
	s := newSerializer(o)
	return s.serializeDocument(roots)
}

// Write renders roots to w (spec.md §4.7).
func Write(w io.Writer, roots []*Resource, opts ...SerializeOption) error {
	out, err := Serialize(roots, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (s *serializer) serializeDocument(roots []*Resource) (string, error) {
	if s.opts.AutoNamespaceDiscovery {
		s.discoverNamespaces(roots)
	}
	s.refMap = discoverReferences(roots)

	var b strings.Builder
	if s.ns.Len() > 0 {
		b.WriteString(s.renderHeader())
		b.WriteString("\n\n")
	}

	emittedRoots := make(map[*Resource]bool)
	wroteAny := false
	for _, root := range roots {
		if s.opts.ExcludeDuplicateRoots && emittedRoots[root] {
			continue
		}
		emittedRoots[root] = true
		if wroteAny {
			if s.opts.Formatted {
				b.WriteString("\n\n")
			} else {
				b.WriteRune(delimComma)
			}
		}
		out, err := s.renderResource(root, 0, true)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
		wroteAny = true
	}
	return b.String(), nil
}

// discoverNamespaces implements spec.md §4.7 step 1: scan the graph for
// type-tag and property-tag namespaces (never arbitrary resource tags),
// excluding the ad-hoc namespace, and register each with a generated
// prefix alias.
func (s *serializer) discoverNamespaces(roots []*Resource) {
	seen := make(map[*Resource]bool)
	var visit func(r *Resource)
	visit = func(r *Resource) {
		if r == nil || seen[r] {
			return
		}
		seen[r] = true
		if r.TypeTag != nil {
			s.registerDiscoveredNamespace(r.TypeTag.Namespace())
		}
		switch r.Kind {
		case KindObject:
			for _, e := range r.Edges {
				if e.Property != nil && e.Property.Tag != nil {
					s.registerDiscoveredNamespace(e.Property.Tag.Namespace())
				}
				visit(e.Value)
			}
		case KindList, KindSet:
			for _, item := range r.Items {
				visit(item)
			}
		case KindMap:
			for _, entry := range r.Entries {
				visit(entry.Key)
				visit(entry.Value)
			}
		}
	}
	for _, root := range roots {
		visit(root)
	}
}

func (s *serializer) registerDiscoveredNamespace(ns string) {
	if ns == "" || ns == AdHocNamespace || ns == DefaultNamespace {
		return
	}
	if _, ok := s.ns.AliasFor(ns); ok {
		return
	}
	s.aliasCounter++
	prefix := s.opts.GeneratedAliasPrefix
	if prefix == "" {
		prefix = "ns"
	}
	_ = s.ns.Register(fmt.Sprintf("%s%d", prefix, s.aliasCounter), ns)
}

func (s *serializer) renderHeader() string {
	mt := s.opts.MediaType
	if mt == "" {
		mt = GeneralMediaType
	}
	var b strings.Builder
	b.WriteString(delimHeaderStart)
	b.WriteRune(delimMediaStart)
	b.WriteString(s.collab.MediaType.Format(mt))

	aliases := s.ns.Aliases()
	sort.Strings(aliases)
	if len(aliases) > 0 {
		b.WriteRune(delimDescrStart)
		for i, alias := range aliases {
			if i > 0 {
				b.WriteRune(delimComma)
			}
			iri, _ := s.ns.Resolve(alias)
			b.WriteString(alias)
			b.WriteRune(delimAssign)
			b.WriteRune(delimIRIStart)
			b.WriteString(iri)
			b.WriteRune(delimIRIEnd)
		}
		b.WriteRune(delimDescrEnd)
	}
	b.WriteRune(delimMediaEnd)
	return b.String()
}

// renderResource dispatches on runtime kind and handles the "already
// serialized" short-circuit (spec.md §4.7, "Emitting a resource").
func (s *serializer) renderResource(r *Resource, level int, declareType bool) (string, error) {
	if r.Kind == KindLiteral {
		return s.renderLiteral(r.Literal)
	}

	if s.emitted[r] {
		return s.renderBackReference(r)
	}

	var b strings.Builder
	alias := s.resolveAlias(r)
	if alias != "" && r.Tag == nil {
		for i, c := range alias {
			if (i == 0 && !isNameTokenBegin(c)) || !isNameTokenChar(c) {
				return "", newSerializeError(fmt.Sprintf("illegal alias name %q", alias))
			}
		}
		b.WriteRune(delimLabelStart)
		b.WriteString(alias)
		b.WriteRune(delimLabelEnd)
	}

	s.emitted[r] = true

	switch r.Kind {
	case KindObject:
		if r.Tag != nil {
			ref, err := s.renderObjectReference(r, declareType)
			if err != nil {
				return "", err
			}
			b.WriteString(ref)
		} else {
			b.WriteRune(delimObject)
			if declareType && r.TypeTag != nil {
				b.WriteString(s.renderTypeRef(*r.TypeTag))
			}
		}
		if len(r.Edges) > 0 {
			desc, err := s.renderDescription(r.Edges, level)
			if err != nil {
				return "", err
			}
			b.WriteString(desc)
		}
	case KindList:
		out, err := s.renderSequence(delimListStart, delimListEnd, r.Items, level)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	case KindSet:
		out, err := s.renderSequence(delimSetStart, delimSetEnd, r.Items, level)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	case KindMap:
		out, err := s.renderMap(r.Entries, level)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	default:
		return "", newSerializeError("unsupported resource kind")
	}
	return b.String(), nil
}

func (s *serializer) renderBackReference(r *Resource) (string, error) {
	if alias, ok := s.aliasOf[r]; ok && alias != "" {
		return string(delimLabelStart) + alias + string(delimLabelEnd), nil
	}
	if r.Tag != nil {
		return s.renderTagOrHandle(*r.Tag), nil
	}
	return "", newSerializeError("resource referenced more than once has neither a tag nor an alias")
}

// resolveAlias assigns (once) and returns the alias under which r is
// labeled: the user-assigned alias, a generated one if r needs one and
// lacks a tag (spec.md §8, "Alias necessity"), or "" if neither applies.
func (s *serializer) resolveAlias(r *Resource) string {
	if alias, ok := s.aliasOf[r]; ok {
		return alias
	}
	var alias string
	switch {
	case r.Alias != "":
		alias = r.Alias
	case r.Tag == nil && needsGeneratedAlias(r, s.refMap):
		s.aliasCounter++
		prefix := s.opts.GeneratedAliasPrefix
		if prefix == "" {
			prefix = "_"
		}
		alias = fmt.Sprintf("%s%d", prefix, s.aliasCounter)
	}
	s.aliasOf[r] = alias
	return alias
}

// handleFor renders tag as a compact handle if its name is a legal
// name-token and its namespace is the default namespace or has a
// registered alias; spec.md §4.7's "Handle emission rule" additionally
// forbids "true"/"false" from ever being emitted as a handle.
func (s *serializer) handleFor(tag Tag) (string, bool) {
	name := tag.Name()
	if name == "" || !isNameTokenBegin(rune(name[0])) {
		return "", false
	}
	for _, c := range name {
		if !isNameTokenChar(c) && c != '-' {
			return "", false
		}
	}
	if name == "true" || name == "false" {
		return "", false
	}
	ns := tag.Namespace()
	if ns == DefaultNamespace || ns == "" {
		return name, true
	}
	if alias, ok := s.ns.AliasFor(ns); ok {
		return alias + string(delimNamespace) + name, true
	}
	return "", false
}

// renderTagOrHandle renders tag as a handle when possible, else as a
// "|<tag>|" label.
func (s *serializer) renderTagOrHandle(tag Tag) string {
	if handle, ok := s.handleFor(tag); ok {
		return handle
	}
	return string(delimLabelStart) + string(delimIRIStart) + tag.IRI + string(delimIRIEnd) + string(delimLabelEnd)
}

func (s *serializer) renderTypeRef(tag Tag) string {
	return s.renderTagOrHandle(tag)
}

// renderObjectReference implements the object reference decision table of
// spec.md §4.7.
func (s *serializer) renderObjectReference(r *Resource, declareType bool) (string, error) {
	tag := *r.Tag
	id, hasID := tag.Fragment()
	idTypeMatches := hasID && r.TypeTag != nil && tag.IDTypeTag().Equal(*r.TypeTag)

	if hasID && idTypeMatches {
		if handle, ok := s.handleFor(*r.TypeTag); ok && isValidIDToken(id) {
			return handle + string(delimIDTag) + id, nil
		}
		idLabel := string(delimLabelStart) + string(delimString) + id + string(delimString) + string(delimLabelEnd)
		return idLabel + string(delimObject) + s.renderTagOrHandle(*r.TypeTag), nil
	}

	handle, handleOK := s.handleFor(tag)
	var typeRef string
	haveType := declareType && r.TypeTag != nil
	if haveType {
		typeRef = s.renderTagOrHandle(*r.TypeTag)
	}
	if handleOK {
		if haveType {
			return handle + string(delimObject) + typeRef, nil
		}
		return handle, nil
	}
	tagLabel := s.renderTagOrHandle(tag)
	if haveType {
		return tagLabel + string(delimObject) + typeRef, nil
	}
	return tagLabel, nil
}

// renderPropertyRef renders a property reference: a handle when possible,
// else a tag label. The source n-ary marker is not retained on Edge, so
// the "+" suffix is never re-emitted (see DESIGN.md).
func (s *serializer) renderPropertyRef(prop *Resource) (string, error) {
	if prop.Tag == nil {
		return "", newSerializeError("property reference missing a tag")
	}
	return s.renderTagOrHandle(*prop.Tag), nil
}

// renderDescription emits ":" propDecl ("," propDecl)* ";", using the
// short form "propertyRef:…;" when enabled and the value is an anonymous,
// typeless, once-only object with at least one property (spec.md §4.7).
func (s *serializer) renderDescription(edges []Edge, level int) (string, error) {
	var b strings.Builder
	b.WriteRune(delimDescrStart)
	childLevel := level + 1
	for i, e := range edges {
		if i > 0 {
			b.WriteRune(delimComma)
		}
		if s.opts.Formatted {
			b.WriteString(s.newlineIndent(childLevel))
		}
		propRef, err := s.renderPropertyRef(e.Property)
		if err != nil {
			return "", err
		}
		b.WriteString(propRef)

		if s.useShortForm(e.Value) {
			s.emitted[e.Value] = true
			desc, err := s.renderDescription(e.Value.Edges, childLevel)
			if err != nil {
				return "", err
			}
			b.WriteString(desc)
		} else {
			b.WriteRune(delimAssign)
			val, err := s.renderResource(e.Value, childLevel, true)
			if err != nil {
				return "", err
			}
			b.WriteString(val)
		}
	}
	if s.opts.Formatted && len(edges) > 0 {
		b.WriteString(s.newlineIndent(level))
	}
	b.WriteRune(delimDescrEnd)
	return b.String(), nil
}

func (s *serializer) useShortForm(v *Resource) bool {
	return s.opts.ShortPropertyForm &&
		v.Kind == KindObject &&
		v.Tag == nil &&
		v.TypeTag == nil &&
		v.Alias == "" &&
		len(v.Edges) > 0 &&
		!s.refMap[v] &&
		!s.emitted[v]
}

func (s *serializer) renderSequence(open, close rune, items []*Resource, level int) (string, error) {
	var b strings.Builder
	b.WriteRune(open)
	childLevel := level + 1
	for i, item := range items {
		if i > 0 {
			b.WriteRune(delimComma)
		}
		if s.opts.Formatted {
			b.WriteString(s.newlineIndent(childLevel))
		}
		out, err := s.renderResource(item, childLevel, true)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	if s.opts.Formatted && len(items) > 0 {
		b.WriteString(s.newlineIndent(level))
	}
	b.WriteRune(close)
	return b.String(), nil
}

func (s *serializer) renderMap(entries []*MapEntry, level int) (string, error) {
	var b strings.Builder
	b.WriteRune(delimMapStart)
	childLevel := level + 1
	for i, entry := range entries {
		if i > 0 {
			b.WriteRune(delimComma)
		}
		if s.opts.Formatted {
			b.WriteString(s.newlineIndent(childLevel))
		}
		keyNeedsWrap := entry.Key.Kind == KindObject && len(entry.Key.Edges) > 0
		if keyNeedsWrap {
			b.WriteRune(delimKeyWrap)
		}
		keyOut, err := s.renderResource(entry.Key, childLevel, true)
		if err != nil {
			return "", err
		}
		b.WriteString(keyOut)
		if keyNeedsWrap {
			b.WriteRune(delimKeyWrap)
		}
		b.WriteRune(delimDescrStart)
		valOut, err := s.renderResource(entry.Value, childLevel, true)
		if err != nil {
			return "", err
		}
		b.WriteString(valOut)
	}
	if s.opts.Formatted && len(entries) > 0 {
		b.WriteString(s.newlineIndent(level))
	}
	b.WriteRune(delimMapEnd)
	return b.String(), nil
}

func (s *serializer) newlineIndent(level int) string {
	return "\n" + strings.Repeat(" ", level*s.opts.IndentWidth)
}

func (s *serializer) renderLiteral(lit *Literal) (string, error) {
	switch lit.Kind {
	case LiteralBinary:
		return string(delimBinary) + base64.RawURLEncoding.EncodeToString(lit.Bytes) + string(delimBinary), nil
	case LiteralBoolean:
		if lit.Bool {
			return "true", nil
		}
		return "false", nil
	case LiteralCharacter:
		return escapeString(string(lit.Char), delimCharacter), nil
	case LiteralEmail:
		addr, err := s.collab.Email.Parse(lit.Str)
		if err != nil {
			return "", wrapSerializeError("invalid email address", err)
		}
		return escapeString(addr, delimEmail), nil
	case LiteralIRI:
		canon, err := s.collab.IRI.Parse(lit.Str)
		if err != nil {
			return "", wrapSerializeError("invalid IRI", err)
		}
		return string(delimIRIStart) + canon + string(delimIRIEnd), nil
	case LiteralMediaType:
		return string(delimMediaStart) + s.collab.MediaType.Format(lit.Str) + string(delimMediaEnd), nil
	case LiteralLong:
		return strconv.FormatInt(lit.Long, 10), nil
	case LiteralBigInt:
		if lit.BigInt == nil {
			return "", newSerializeError("missing big integer value")
		}
		return lit.BigInt.String(), nil
	case LiteralDouble:
		return formatDouble(lit.Double), nil
	case LiteralBigDecimal:
		return string(delimDecimalForce) + renderDecimalLiteral(lit.Decimal), nil
	case LiteralRegexp:
		return escapeString(lit.Str, delimRegexp), nil
	case LiteralString:
		return escapeString(lit.Str, delimString), nil
	case LiteralTelephone:
		canon, err := s.collab.Telephone.Parse(lit.Str)
		if err != nil {
			return "", wrapSerializeError("invalid telephone number", err)
		}
		return canon, nil
	case LiteralTemporal:
		return string(delimTemporal) + lit.Temporal.String(), nil
	case LiteralUUID:
		return string(delimUUID) + s.collab.UUID.Format(lit.UUID) + string(delimUUID), nil
	default:
		return "", newSerializeError("unsupported literal kind")
	}
}

// formatDouble renders f so it always round-trips as Double: the number
// grammar (spec.md §4.4) only types a "$"-less number as floating when a
// fraction or exponent is present, so a value that would otherwise print
// as bare digits gets a forced ".0".
func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// renderDecimalLiteral renders d so it always round-trips as BigDecimal
// rather than BigInteger: the forced-decimal grammar only types a
// "$"-prefixed number as BigDecimal when a fraction or exponent is
// present (spec.md §4.4), so a zero-or-negative-scale value gets a forced
// ".0".
func renderDecimalLiteral(d Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
