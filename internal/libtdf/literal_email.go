package libtdf

// parseEmailLiteral parses the "^…^" email-address literal, delegating
// syntactic validation to the EmailCodec collaborator (spec.md §6).
func (p *Parser[R]) parseEmailLiteral() (*Resource, error) {
	mark := p.r.mark()
	body, err := p.parseStringBody(delimEmail)
	if err != nil {
		return nil, err
	}
	addr, err := p.collab.Email.Parse(body)
	if err != nil {
		return nil, wrapParseError(mark, "invalid email address literal", err)
	}
	return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralEmail, Str: addr}}, nil
}
