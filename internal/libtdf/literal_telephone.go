package libtdf

// parseTelephoneLiteral parses a telephone-number literal: "+" followed by
// digits and separator punctuation, with no closing delimiter — the
// literal ends at the first rune that is not part of a phone number
// (spec.md §4.4). Syntactic and range validation is delegated to the
// TelephoneCodec collaborator (§6).
func (p *Parser[R]) parseTelephoneLiteral() (*Resource, error) {
	mark := p.r.mark()
	if err := p.r.check(delimTelephone); err != nil {
		return nil, err
	}
	digits := p.r.readWhile(isPhoneChar)
	raw := string(delimTelephone) + digits
	canon, err := p.collab.Telephone.Parse(raw)
	if err != nil {
		return nil, wrapParseError(mark, "invalid telephone number literal", err)
	}
	return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralTelephone, Str: canon}}, nil
}
