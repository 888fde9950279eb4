package libtdf

// parseIRI parses the "<…>" IRI literal. Per spec.md §4.4 ("IRI (with
// short forms: inside may redirect to ^, +, &)") the character right after
// "<" may instead mark an email, telephone, or UUID value written inside
// IRI brackets rather than its own native delimiter pair; in that case the
// body is read up to the closing ">" and handed to the matching
// collaborator instead of IRICodec.
func (p *Parser[R]) parseIRI() (*Resource, error) {
	mark := p.r.mark()
	if err := p.r.check(delimIRIStart); err != nil {
		return nil, err
	}
	switch p.r.peek() {
	case delimEmail:
		p.r.advance()
		body, err := p.r.reach(delimIRIEnd)
		if err != nil {
			return nil, err
		}
		p.r.advance()
		addr, err := p.collab.Email.Parse(body)
		if err != nil {
			return nil, wrapParseError(mark, "invalid email address in IRI short form", err)
		}
		return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralEmail, Str: addr}}, nil
	case delimTelephone:
		p.r.advance()
		body, err := p.r.reach(delimIRIEnd)
		if err != nil {
			return nil, err
		}
		p.r.advance()
		canon, err := p.collab.Telephone.Parse(body)
		if err != nil {
			return nil, wrapParseError(mark, "invalid telephone number in IRI short form", err)
		}
		return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralTelephone, Str: canon}}, nil
	case delimUUID:
		p.r.advance()
		body, err := p.r.reach(delimIRIEnd)
		if err != nil {
			return nil, err
		}
		p.r.advance()
		u, err := p.collab.UUID.Parse(body)
		if err != nil {
			return nil, wrapParseError(mark, "invalid UUID in IRI short form", err)
		}
		return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralUUID, UUID: u}}, nil
	default:
		body, err := p.r.reach(delimIRIEnd)
		if err != nil {
			return nil, err
		}
		p.r.advance()
		canon, err := p.collab.IRI.Parse(body)
		if err != nil {
			return nil, wrapParseError(mark, "invalid IRI literal", err)
		}
		return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralIRI, Str: canon}}, nil
	}
}

// parseIRIBody parses a "<…>" IRI used as a tag label (spec.md §4.3): the
// raw text between the delimiters, kept verbatim rather than run through
// IRICodec, since a tag's identity is its exact IRI string (spec.md
// invariant 2) and label parsing has no short-form redirect to worry about.
func (p *Parser[R]) parseIRIBody() (string, error) {
	if err := p.r.check(delimIRIStart); err != nil {
		return "", err
	}
	body, err := p.r.reach(delimIRIEnd)
	if err != nil {
		return "", err
	}
	p.r.advance()
	return body, nil
}

// parseMediaTypeLiteral parses the ">…<" media-type literal used as an
// ordinary value (as opposed to the document header, which wraps the same
// syntax but also allows an embedded namespace description — see
// parseHeader in parser.go).
func (p *Parser[R]) parseMediaTypeLiteral() (*Resource, error) {
	mark := p.r.mark()
	if err := p.r.check(delimMediaStart); err != nil {
		return nil, err
	}
	word, err := p.r.reach(delimMediaEnd)
	if err != nil {
		return nil, err
	}
	p.r.advance()
	mt, err := p.collab.MediaType.Parse(word)
	if err != nil {
		return nil, wrapParseError(mark, "invalid media type literal", err)
	}
	return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralMediaType, Str: mt}}, nil
}
