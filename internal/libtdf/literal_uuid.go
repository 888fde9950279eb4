package libtdf

// parseUUIDLiteral parses the "&…&" UUID literal, delegating to the
// UUIDCodec collaborator (spec.md §6).
func (p *Parser[R]) parseUUIDLiteral() (*Resource, error) {
	mark := p.r.mark()
	body, err := p.parseStringBody(delimUUID)
	if err != nil {
		return nil, err
	}
	u, err := p.collab.UUID.Parse(body)
	if err != nil {
		return nil, wrapParseError(mark, "invalid UUID literal", err)
	}
	return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralUUID, UUID: u}}, nil
}
