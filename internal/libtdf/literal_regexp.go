package libtdf

// parseRegexpLiteral parses the "/…/" regular-expression literal. The
// pattern text is kept verbatim (no dialect is mandated by spec.md §3); the
// shared escape grammar of §4.4 still applies since "/" is itself in the
// escape table for the non-regexp case and must remain escapable here.
func (p *Parser[R]) parseRegexpLiteral() (*Resource, error) {
	mark := p.r.mark()
	pattern, err := p.parseStringBody(delimRegexp)
	if err != nil {
		return nil, err
	}
	return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralRegexp, Str: pattern}}, nil
}
