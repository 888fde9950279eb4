package libtdf

// labelKind discriminates the three forms a "|...|" label may take
// (spec.md §4.3).
type labelKind int

const (
	labelAlias labelKind = iota
	labelTag
	labelID
)

// label is the parsed form of a "|...|" label, before it has been resolved
// against the alias/tag identity tables.
type label struct {
	kind  labelKind
	alias string // labelAlias
	tag   Tag    // labelTag
	id    string // labelID
	mark  Mark
}

// parseLabel parses "|...|" (spec.md §4.3): the character after "|"
// discriminates an IRI tag, a string ID, or a bare name-token alias.
func (p *Parser[R]) parseLabel() (label, error) {
	mark := p.r.mark()
	if err := p.r.check(delimLabelStart); err != nil {
		return label{}, err
	}
	var lbl label
	lbl.mark = mark
	switch p.r.peek() {
	case delimIRIStart:
		iri, err := p.parseIRIBody()
		if err != nil {
			return label{}, err
		}
		lbl = label{kind: labelTag, tag: Tag{IRI: iri}, mark: mark}
	case delimString:
		s, err := p.parseStringBody(delimString)
		if err != nil {
			return label{}, err
		}
		lbl = label{kind: labelID, id: s, mark: mark}
	default:
		if !isNameTokenBegin(p.r.peek()) {
			return label{}, newParseErrorf(p.r.mark(), "expected IRI, string, or name token after %q", delimLabelStart)
		}
		name := p.r.readWhile(isNameTokenChar)
		lbl = label{kind: labelAlias, alias: name, mark: mark}
	}
	if err := p.r.check(delimLabelEnd); err != nil {
		return label{}, newParseErrorf(p.r.mark(), "label missing closing %q", delimLabelEnd)
	}
	return lbl, nil
}

// handleRef is the parsed form of a compact handle (spec.md §4.3), before
// namespace resolution.
type handleRef struct {
	alias    string // namespace alias, "" if the default namespace applies
	segments []string
	nary     bool
	idToken  string
	mark     Mark
}

// parseHandle parses a handle: [alias "/"] seg ("-" seg)* ["+"] ["#" id].
func (p *Parser[R]) parseHandle() (handleRef, error) {
	mark := p.r.mark()
	if !isNameTokenBegin(p.r.peek()) {
		return handleRef{}, newParseErrorf(mark, "expected handle, found %q", describeRune(p.r.peek()))
	}
	first := p.r.readWhile(isNameTokenChar)
	var h handleRef
	h.mark = mark
	if p.r.peek() == delimNamespace {
		p.r.advance()
		if !isNameTokenBegin(p.r.peek()) {
			return handleRef{}, newParseErrorf(p.r.mark(), "expected name token after %q in handle", delimNamespace)
		}
		second := p.r.readWhile(isNameTokenChar)
		h.alias = first
		h.segments = []string{second}
	} else {
		h.segments = []string{first}
	}
	for p.r.peek() == delimSegment {
		p.r.pushMark()
		p.r.advance()
		if !isNameTokenBegin(p.r.peek()) {
			p.r.resetToMark()
			break
		}
		p.r.popMark()
		h.segments = append(h.segments, p.r.readWhile(isNameTokenChar))
	}
	h.nary = p.r.confirm(delimNary)
	if p.r.confirm(delimIDTag) {
		if !isNameTokenBegin(p.r.peek()) && !isDigit(p.r.peek()) {
			return handleRef{}, newParseErrorf(p.r.mark(), "expected id token after %q in handle", delimIDTag)
		}
		h.idToken = p.r.readWhile(func(r rune) bool { return isNameTokenChar(r) || isDigit(r) })
	}
	return h, nil
}

// resolveHandleRef turns a handle into an absolute tag IRI via the namespace
// registry, applying the default namespace when no alias prefix is
// present (spec.md §4.8).
func (p *Parser[R]) resolveHandleRef(h handleRef) (string, error) {
	nsIRI := DefaultNamespace
	if h.alias != "" {
		iri, ok := p.ns.Resolve(h.alias)
		if !ok {
			return "", newParseErrorf(h.mark, "unregistered namespace alias %q", h.alias)
		}
		nsIRI = iri
	}
	tagIRI := ResolveHandle(nsIRI, h.segments)
	if h.idToken != "" {
		tagIRI += "#" + h.idToken
	}
	return tagIRI, nil
}

// parseTagRef parses a tag reference (spec.md §4.3): a "|...|" label that
// must resolve to an IRI tag, or a handle resolved via the namespace
// registry.
func (p *Parser[R]) parseTagRef() (Tag, error) {
	if p.r.peek() == delimLabelStart {
		lbl, err := p.parseLabel()
		if err != nil {
			return Tag{}, err
		}
		if lbl.kind != labelTag {
			return Tag{}, newParseErrorf(lbl.mark, "non-tag label used where a tag is required")
		}
		return lbl.tag, nil
	}
	h, err := p.parseHandle()
	if err != nil {
		return Tag{}, err
	}
	iri, err := p.resolveHandleRef(h)
	if err != nil {
		return Tag{}, err
	}
	return Tag{IRI: iri}, nil
}

// internedTag returns the shared *Resource identifying tag, creating and
// declaring it on first use. Property and type-tag references are plain
// tagged resources with no body of their own.
func (p *Parser[R]) internedTag(tag Tag) (*Resource, error) {
	if r, ok := p.tags[tag.IRI]; ok {
		return r, nil
	}
	r := &Resource{Tag: &tag, Kind: KindObject}
	p.tags[tag.IRI] = r
	if err := p.proc.DeclareResource(&tag, nil); err != nil {
		return nil, err
	}
	return r, nil
}
