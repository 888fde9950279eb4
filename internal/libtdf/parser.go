package libtdf

// Parser is the resource-parser orchestrator (C5, spec.md §4.5). It holds
// the lexical stream, the namespace registry, the domain collaborators, the
// event sink, and the two identity tables (alias and tag) that are
// naturally confined to a single parse (spec.md §9, "Parser state").
//
// R is the event sink's result type; Parser is generic only because
// Processor is (spec.md §4.2) — the orchestration logic never inspects R.
type Parser[R any] struct {
	r      *reader
	opts   ParseOptions
	ns     *Namespace
	collab Collaborators
	proc   Processor[R]

	aliases map[string]*Resource
	tags    map[string]*Resource
}

func newParser[R any](src string, proc Processor[R], opts ParseOptions) *Parser[R] {
	return &Parser[R]{
		r:       newReader(src),
		opts:    opts,
		ns:      opts.Namespace,
		collab:  opts.Collaborators,
		proc:    proc,
		aliases: make(map[string]*Resource),
		tags:    make(map[string]*Resource),
	}
}

// Parse parses a complete TDF document from src, emitting events to proc as
// it goes, and returns the sink's final Result (spec.md §4.2: "the parser
// returns whatever the sink returns").
func Parse[R any](src string, proc Processor[R], opts ...ParseOption) (R, error) {
	o := NewParseOptions(opts...)
	p := newParser(src, proc, o)
	if err := p.parseDocument(); err != nil {
		var zero R
		return zero, err
	}
	return p.proc.Result()
}

// parseDocument implements the document-framing grammar of spec.md §4.5:
// an optional "===" header, an optional "#…#" document description block,
// then the body (root sequence or properties-only).
func (p *Parser[R]) parseDocument() error {
	p.r.skipFiller()

	mediaType := GeneralMediaType
	if p.r.confirmLiteral(delimHeaderStart) {
		mt, err := p.parseHeader()
		if err != nil {
			return err
		}
		mediaType = mt
		p.r.skipFiller()
	}

	if p.r.peek() == '#' {
		if _, err := p.parseDocDescription(); err != nil {
			return err
		}
		p.r.skipFiller()
	}

	expected := p.opts.ExpectedMediaType
	if expected == "" {
		expected = GeneralMediaType
	}
	variant := mediaType
	if variant != expected {
		variant = GeneralMediaType
	}

	if variant == PropertiesMediaType {
		return p.parsePropertiesBody()
	}
	return p.parseRootSequence()
}

// parseHeader parses the header body after "===" has already been
// consumed: a media-type literal whose description (if present) declares
// namespace aliases (spec.md §4.8, scenario 1).
func (p *Parser[R]) parseHeader() (string, error) {
	if err := p.r.check(delimMediaStart); err != nil {
		return "", err
	}
	word := p.r.readUntil(func(r rune) bool { return r == delimDescrStart || r == delimMediaEnd })
	if word == "" {
		return "", newParseError(p.r.mark(), "expected media type in document header")
	}
	if p.r.peek() == delimDescrStart {
		if err := p.parseNamespaceDescription(); err != nil {
			return "", err
		}
	}
	if err := p.r.check(delimMediaEnd); err != nil {
		return "", newParseErrorf(p.r.mark(), "header missing closing %q", delimMediaEnd)
	}
	mt, err := p.collab.MediaType.Parse(word)
	if err != nil {
		return "", wrapParseError(p.r.mark(), "invalid media type in header", err)
	}
	return mt, nil
}

// parseNamespaceDescription parses the header's "alias=<IRI>, …" sequence
// and registers each pair into the parser's namespace registry.
func (p *Parser[R]) parseNamespaceDescription() error {
	if err := p.r.check(delimDescrStart); err != nil {
		return err
	}
	p.r.skipFiller()
	if p.r.peek() == delimDescrEnd {
		p.r.advance()
		return nil
	}
	for {
		if !isNameTokenBegin(p.r.peek()) {
			return newParseErrorf(p.r.mark(), "expected namespace alias in header")
		}
		alias := p.r.readWhile(isNameTokenChar)
		p.r.skipHorizontal()
		if err := p.r.check(delimAssign); err != nil {
			return err
		}
		p.r.skipHorizontal()
		value, err := p.parseResource(false)
		if err != nil {
			return err
		}
		if value.Kind != KindLiteral || value.Literal == nil || value.Literal.Kind != LiteralIRI {
			return newParseErrorf(p.r.mark(), "namespace alias %q must be bound to an IRI", alias)
		}
		if err := p.ns.Register(alias, value.Literal.Str); err != nil {
			return wrapParseError(p.r.mark(), "namespace registration failed", err)
		}

		p.r.skipHorizontal()
		if p.r.peek() == delimDescrEnd {
			p.r.advance()
			return nil
		}
		state := p.r.skipSequenceDelimiters()
		if p.r.peek() == delimDescrEnd {
			p.r.advance()
			return nil
		}
		if state == nextItemNone {
			return newParseErrorf(p.r.mark(), "expected %q or a sequence delimiter in header", delimDescrEnd)
		}
	}
}

// parseDocDescription parses the optional "#…#" pre-body block: property
// declarations about the document itself, reported to no root. Its exact
// syntax is underspecified upstream; it is taken to mirror a description's
// propDecl grammar but using "#" as both its own delimiters, since the
// document has no tagRef of its own to attach a ":…;" description to.
func (p *Parser[R]) parseDocDescription() (*Resource, error) {
	if err := p.r.check('#'); err != nil {
		return nil, err
	}
	doc := NewBlankObject()
	p.r.skipFiller()
	if p.r.peek() == '#' {
		p.r.advance()
		return doc, nil
	}
	for {
		propTag, err := p.parseTagRef()
		if err != nil {
			return nil, err
		}
		propRes, err := p.internedTag(propTag)
		if err != nil {
			return nil, err
		}
		p.r.skipHorizontal()
		if err := p.r.check(delimAssign); err != nil {
			return nil, err
		}
		p.r.skipHorizontal()
		value, err := p.parseResource(p.opts.DescriptionOnNonObjects)
		if err != nil {
			return nil, err
		}
		doc.AddEdge(propRes, value)
		if err := p.proc.ProcessStatement(doc, propRes, value); err != nil {
			return nil, err
		}

		p.r.skipHorizontal()
		if p.r.peek() == '#' {
			p.r.advance()
			return doc, nil
		}
		state := p.r.skipSequenceDelimiters()
		if p.r.peek() == '#' {
			p.r.advance()
			return doc, nil
		}
		if state == nextItemNone {
			return nil, newParseErrorf(p.r.mark(), "expected closing %q in document description block", '#')
		}
	}
}

// parseRootSequence parses the generic document body: a top-level sequence
// of resources, each reported as a root (spec.md §4.5, §9 "report exactly
// the roots found; no synthetic root unless the variant is properties-only").
func (p *Parser[R]) parseRootSequence() error {
	p.r.skipFiller()
	for p.r.peek() != eof {
		root, err := p.parseResource(true)
		if err != nil {
			return err
		}
		if err := p.proc.ReportRoot(root); err != nil {
			return err
		}

		p.r.skipHorizontal()
		if p.r.peek() == eof {
			break
		}
		state := p.r.skipSequenceDelimiters()
		if p.r.peek() == eof {
			break
		}
		if state == nextItemNone {
			return newParseErrorf(p.r.mark(), "expected end of input or a sequence delimiter between root resources")
		}
	}
	return nil
}

// parsePropertiesBody parses the properties-only document body: a sequence
// of "propertyHandle=value" items applied to a single implicit blank root,
// which is reported exactly once (spec.md §4.5, §9).
func (p *Parser[R]) parsePropertiesBody() error {
	root := NewBlankObject()
	p.r.skipFiller()
	for p.r.peek() != eof {
		propTag, err := p.parseTagRef()
		if err != nil {
			return err
		}
		propRes, err := p.internedTag(propTag)
		if err != nil {
			return err
		}
		p.r.skipHorizontal()
		if err := p.r.check(delimAssign); err != nil {
			return err
		}
		p.r.skipHorizontal()
		value, err := p.parseResource(p.opts.DescriptionOnNonObjects)
		if err != nil {
			return err
		}
		root.AddEdge(propRes, value)
		if err := p.proc.ProcessStatement(root, propRes, value); err != nil {
			return err
		}

		p.r.skipHorizontal()
		if p.r.peek() == eof {
			break
		}
		state := p.r.skipSequenceDelimiters()
		if p.r.peek() == eof {
			break
		}
		if state == nextItemNone {
			return newParseErrorf(p.r.mark(), "expected end of input or a sequence delimiter between properties")
		}
	}
	return p.proc.ReportRoot(root)
}

// parseResource implements spec.md §4.5's parse_resource(allow_description):
// optional label, value dispatch, label registration, optional description.
func (p *Parser[R]) parseResource(allowDescription bool) (*Resource, error) {
	var lbl *label
	if p.r.peek() == delimLabelStart {
		l, err := p.parseLabel()
		if err != nil {
			return nil, err
		}
		lbl = &l

		if l.kind == labelAlias {
			if r, ok := p.aliases[l.alias]; ok {
				return r, nil
			}
		}
		if l.kind == labelTag {
			if r, ok := p.tags[l.tag.IRI]; ok {
				p.r.skipHorizontal()
				if p.r.peek() != delimObject {
					return r, nil
				}
				return p.parseObjectMerge(r)
			}
		}
	}

	p.r.skipHorizontal()

	var res *Resource
	var err error
	switch {
	case lbl != nil && lbl.kind == labelTag:
		res, err = p.parseObject(&lbl.tag)
	case lbl != nil && lbl.kind == labelID:
		res, err = p.parseIDObject(lbl.id, lbl.mark)
	default:
		res, err = p.dispatchValue()
	}
	if err != nil {
		return nil, err
	}

	if lbl != nil && lbl.kind == labelAlias {
		if res.Tag != nil {
			return nil, newParseErrorf(lbl.mark, "alias not permitted on a resource that already has a tag")
		}
		res.Alias = lbl.alias
		p.aliases[lbl.alias] = res
	}
	if lbl != nil && lbl.kind == labelTag {
		if _, ok := p.tags[lbl.tag.IRI]; !ok {
			p.tags[lbl.tag.IRI] = res
			if err := p.proc.DeclareResource(&lbl.tag, res.TypeTag); err != nil {
				return nil, err
			}
		}
	}
	if lbl != nil && lbl.kind == labelID {
		if _, ok := p.tags[res.Tag.IRI]; !ok {
			p.tags[res.Tag.IRI] = res
			if err := p.proc.DeclareResource(res.Tag, res.TypeTag); err != nil {
				return nil, err
			}
		}
	}

	descAllowed := allowDescription && (p.opts.DescriptionOnNonObjects || res.Kind != KindLiteral)
	if descAllowed && p.r.peek() == delimDescrStart {
		if err := p.parseDescription(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// parseDescription parses ":" (propDecl (sep propDecl)*)? ";" onto subject,
// including the short form where "propertyRef:…;" denotes a property whose
// value is an anonymous described object (spec.md §4.5, §6 grammar).
func (p *Parser[R]) parseDescription(subject *Resource) error {
	if err := p.r.check(delimDescrStart); err != nil {
		return err
	}
	p.r.skipFiller()
	if p.r.peek() == delimDescrEnd {
		p.r.advance()
		return nil
	}
	for {
		propTag, err := p.parseTagRef()
		if err != nil {
			return err
		}
		propRes, err := p.internedTag(propTag)
		if err != nil {
			return err
		}
		p.r.skipHorizontal()

		var value *Resource
		switch p.r.peek() {
		case delimAssign:
			p.r.advance()
			p.r.skipHorizontal()
			value, err = p.parseResource(true)
			if err != nil {
				return err
			}
		case delimDescrStart:
			value = NewBlankObject()
			if err := p.parseDescription(value); err != nil {
				return err
			}
		default:
			return newParseErrorf(p.r.mark(), "expected %q or %q after property reference", delimAssign, delimDescrStart)
		}
		subject.AddEdge(propRes, value)
		if err := p.proc.ProcessStatement(subject, propRes, value); err != nil {
			return err
		}

		p.r.skipHorizontal()
		if p.r.peek() == delimDescrEnd {
			p.r.advance()
			return nil
		}
		state := p.r.skipSequenceDelimiters()
		if p.r.peek() == delimDescrEnd {
			p.r.advance()
			return nil
		}
		if state == nextItemNone {
			return newParseErrorf(p.r.mark(), "expected %q or a sequence delimiter in description", delimDescrEnd)
		}
	}
}

// isTagRefStart reports whether r may begin a tagRef (spec.md §6 grammar):
// a "|…|" label or a handle.
func isTagRefStart(r rune) bool {
	return r == delimLabelStart || isNameTokenBegin(r)
}

// parseObject parses "*" tagRef? (spec.md §6 grammar: object ::= "*"
// tagRef?), attaching the result to a pre-existing tagged resource when one
// was resolved from the enclosing label.
func (p *Parser[R]) parseObject(existingTag *Tag) (*Resource, error) {
	mark := p.r.mark()
	if err := p.r.check(delimObject); err != nil {
		return nil, err
	}
	var typeTag *Tag
	p.r.skipHorizontal()
	if isTagRefStart(p.r.peek()) {
		t, err := p.parseTagRef()
		if err != nil {
			return nil, err
		}
		typeTag = &t
	}
	res := &Resource{Kind: KindObject, Mark: mark}
	if existingTag != nil {
		res.Tag = existingTag
	}
	res.TypeTag = typeTag
	return res, nil
}

// parseObjectMerge parses "*" tagRef? description? onto an already-known
// tagged resource, merging the new edges instead of allocating a fresh
// Resource (spec.md §4.3: "a description, if present, contributes
// additional edges").
func (p *Parser[R]) parseObjectMerge(r *Resource) (*Resource, error) {
	if err := p.r.check(delimObject); err != nil {
		return nil, err
	}
	p.r.skipHorizontal()
	if isTagRefStart(p.r.peek()) {
		t, err := p.parseTagRef()
		if err != nil {
			return nil, err
		}
		if r.TypeTag == nil {
			r.TypeTag = &t
		}
	}
	p.r.skipHorizontal()
	if p.r.peek() == delimDescrStart {
		if err := p.parseDescription(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// parseIDObject parses the body required after an ID label (spec.md §3
// invariant 3: "|"id"| may only appear with an object marker and a type
// tag; the effective tag is typeTag#id").
func (p *Parser[R]) parseIDObject(id string, mark Mark) (*Resource, error) {
	if p.r.peek() != delimObject {
		return nil, newParseErrorf(mark, "ID label requires an object value")
	}
	obj, err := p.parseObject(nil)
	if err != nil {
		return nil, err
	}
	if obj.TypeTag == nil {
		return nil, newParseErrorf(mark, "ID label requires an explicit type tag")
	}
	tag := Tag{IRI: obj.TypeTag.IRI + "#" + id}
	if existing, ok := p.tags[tag.IRI]; ok {
		if existing.TypeTag != nil && existing.TypeTag.IRI != obj.TypeTag.IRI {
			return nil, newParseErrorf(mark, "ID %q redeclared under a conflicting type tag", id)
		}
		return existing, nil
	}
	obj.Tag = &tag
	return obj, nil
}

// dispatchValue implements the §4.4 first-character dispatch table for
// values with no restricting label.
func (p *Parser[R]) dispatchValue() (*Resource, error) {
	switch r := p.r.peek(); {
	case r == delimBinary:
		return p.parseBinary()
	case r == delimCharacter:
		return p.parseCharacter()
	case r == delimEmail:
		return p.parseEmailLiteral()
	case r == delimIRIStart:
		return p.parseIRI()
	case r == delimMediaStart:
		return p.parseMediaTypeLiteral()
	case r == delimDecimalForce || isDigit(r) || r == '-':
		return p.parseNumber()
	case r == delimRegexp:
		return p.parseRegexpLiteral()
	case r == delimString:
		return p.parseString()
	case r == delimTelephone:
		return p.parseTelephoneLiteral()
	case r == delimTemporal:
		return p.parseTemporal()
	case r == delimUUID:
		return p.parseUUIDLiteral()
	case r == delimListStart:
		return p.parseList()
	case r == delimSetStart:
		return p.parseSet()
	case r == delimMapStart:
		return p.parseMap()
	case r == delimObject:
		return p.parseObject(nil)
	case isNameTokenBegin(r):
		return p.parseHandleValue()
	default:
		return nil, newParseErrorf(p.r.mark(), "unexpected character %s", describeRune(r))
	}
}

// parseHandleValue parses a handle value, resolving the "t"/"f" ambiguity
// between a Boolean literal and an object reference by matching the whole
// token against "true"/"false" only when it carries no namespace, segment
// continuation, n-ary marker, or id token (spec.md §4.4). A handle may be
// followed by an object marker ("*" tagRef? description?), per spec.md
// §4.7's "Type#id" and "handle*Type" decision-table rows; when present it
// is handled the same way an already-known tag label is (parser.go's
// parseResource, tag-label branch): merged onto the interned resource
// rather than allocating a new one.
func (p *Parser[R]) parseHandleValue() (*Resource, error) {
	mark := p.r.mark()
	h, err := p.parseHandle()
	if err != nil {
		return nil, err
	}
	if h.alias == "" && len(h.segments) == 1 && !h.nary && h.idToken == "" {
		switch h.segments[0] {
		case "true":
			return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralBoolean, Bool: true}}, nil
		case "false":
			return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralBoolean, Bool: false}}, nil
		}
	}
	iri, err := p.resolveHandleRef(h)
	if err != nil {
		return nil, err
	}
	r, err := p.internedTag(Tag{IRI: iri})
	if err != nil {
		return nil, err
	}
	p.r.skipHorizontal()
	if p.r.peek() == delimObject {
		if r, err = p.parseObjectMerge(r); err != nil {
			return nil, err
		}
	}
	// "id and typeTag come from the tag decomposition" (spec.md §4.7): an
	// ID-bearing tag implies its own type tag even with no explicit "*Type",
	// the compact "Type#id" decision-table row depends on this.
	if r.TypeTag == nil && h.idToken != "" {
		implied := r.Tag.IDTypeTag()
		r.TypeTag = &implied
	}
	return r, nil
}
