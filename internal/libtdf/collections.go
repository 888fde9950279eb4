package libtdf

import "strconv"

// parseList parses "[" (resource (sep resource)*)? "]" (spec.md §4.5): each
// item i is reported as process_statement(list, elementTypeTag#i, item)
// with a monotonically assigned 0-based index.
func (p *Parser[R]) parseList() (*Resource, error) {
	mark := p.r.mark()
	if err := p.r.check(delimListStart); err != nil {
		return nil, err
	}
	res := &Resource{Kind: KindList, Mark: mark}
	p.r.skipFiller()
	elementBase := AdHocNamespace + elementPropertyName
	index := 0
	for p.r.peek() != delimListEnd {
		item, err := p.parseResource(p.opts.DescriptionOnNonObjects)
		if err != nil {
			return nil, err
		}
		propRes, err := p.internedTag(Tag{IRI: elementBase + "#" + strconv.Itoa(index)})
		if err != nil {
			return nil, err
		}
		res.Items = append(res.Items, item)
		res.AddEdge(propRes, item)
		if err := p.proc.ProcessStatement(res, propRes, item); err != nil {
			return nil, err
		}
		index++

		p.r.skipHorizontal()
		if p.r.peek() == delimListEnd {
			break
		}
		state := p.r.skipSequenceDelimiters()
		if p.r.peek() == delimListEnd {
			break
		}
		if state == nextItemNone {
			return nil, newParseErrorf(p.r.mark(), "expected %q or a sequence delimiter in list", delimListEnd)
		}
	}
	if err := p.r.check(delimListEnd); err != nil {
		return nil, err
	}
	return res, nil
}

// parseSet parses "(" (resource (sep resource)*)? ")" (spec.md §4.5): every
// member shares the single memberPropertyTag.
func (p *Parser[R]) parseSet() (*Resource, error) {
	mark := p.r.mark()
	if err := p.r.check(delimSetStart); err != nil {
		return nil, err
	}
	res := &Resource{Kind: KindSet, Mark: mark}
	p.r.skipFiller()
	memberRes, err := p.internedTag(Tag{IRI: AdHocNamespace + memberPropertyName})
	if err != nil {
		return nil, err
	}
	for p.r.peek() != delimSetEnd {
		item, err := p.parseResource(p.opts.DescriptionOnNonObjects)
		if err != nil {
			return nil, err
		}
		res.Items = append(res.Items, item)
		res.AddEdge(memberRes, item)
		if err := p.proc.ProcessStatement(res, memberRes, item); err != nil {
			return nil, err
		}

		p.r.skipHorizontal()
		if p.r.peek() == delimSetEnd {
			break
		}
		state := p.r.skipSequenceDelimiters()
		if p.r.peek() == delimSetEnd {
			break
		}
		if state == nextItemNone {
			return nil, newParseErrorf(p.r.mark(), "expected %q or a sequence delimiter in set", delimSetEnd)
		}
	}
	if err := p.r.check(delimSetEnd); err != nil {
		return nil, err
	}
	return res, nil
}

// parseMapKey parses a map key: either a bare resource with no description
// (the common case), or a "\"-wrapped resource whose description is
// unambiguous precisely because the wrapper marks where it ends (spec.md
// §4.5, scenario 5).
func (p *Parser[R]) parseMapKey() (*Resource, error) {
	if p.r.confirm(delimKeyWrap) {
		key, err := p.parseResource(true)
		if err != nil {
			return nil, err
		}
		if err := p.r.check(delimKeyWrap); err != nil {
			return nil, newParseErrorf(p.r.mark(), "map key missing closing %q", delimKeyWrap)
		}
		return key, nil
	}
	return p.parseResource(false)
}

// parseMap parses "{" (mapEntry (sep mapEntry)*)? "}" (spec.md §4.5): each
// entry becomes a synthetic blank map-entry resource carrying a key-edge
// and a value-edge, plus a member-edge from the map to the entry.
func (p *Parser[R]) parseMap() (*Resource, error) {
	mark := p.r.mark()
	if err := p.r.check(delimMapStart); err != nil {
		return nil, err
	}
	res := &Resource{Kind: KindMap, Mark: mark}
	p.r.skipFiller()

	memberRes, err := p.internedTag(Tag{IRI: AdHocNamespace + mapMemberPropertyName})
	if err != nil {
		return nil, err
	}
	keyRes, err := p.internedTag(Tag{IRI: AdHocNamespace + mapKeyPropertyName})
	if err != nil {
		return nil, err
	}
	valueRes, err := p.internedTag(Tag{IRI: AdHocNamespace + mapValuePropertyName})
	if err != nil {
		return nil, err
	}

	for p.r.peek() != delimMapEnd {
		key, err := p.parseMapKey()
		if err != nil {
			return nil, err
		}
		p.r.skipHorizontal()
		if err := p.r.check(delimDescrStart); err != nil {
			return nil, newParseErrorf(p.r.mark(), "expected %q between map key and value", delimDescrStart)
		}
		p.r.skipHorizontal()
		value, err := p.parseResource(p.opts.DescriptionOnNonObjects)
		if err != nil {
			return nil, err
		}

		entry := NewBlankObject()
		entry.AddEdge(keyRes, key)
		entry.AddEdge(valueRes, value)
		if err := p.proc.ProcessStatement(entry, keyRes, key); err != nil {
			return nil, err
		}
		if err := p.proc.ProcessStatement(entry, valueRes, value); err != nil {
			return nil, err
		}
		res.AddEdge(memberRes, entry)
		if err := p.proc.ProcessStatement(res, memberRes, entry); err != nil {
			return nil, err
		}
		res.Entries = append(res.Entries, &MapEntry{Entry: entry, Key: key, Value: value})

		p.r.skipHorizontal()
		if p.r.peek() == delimMapEnd {
			break
		}
		state := p.r.skipSequenceDelimiters()
		if p.r.peek() == delimMapEnd {
			break
		}
		if state == nextItemNone {
			return nil, newParseErrorf(p.r.mark(), "expected %q or a sequence delimiter in map", delimMapEnd)
		}
	}
	if err := p.r.check(delimMapEnd); err != nil {
		return nil, err
	}
	return res, nil
}
