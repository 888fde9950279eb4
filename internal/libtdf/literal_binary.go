package libtdf

import "encoding/base64"

// parseBinary parses the "%…%" base64url-no-padding binary literal
// (spec.md §3, §6: "Base64url codec: encode/decode without padding").
func (p *Parser[R]) parseBinary() (*Resource, error) {
	mark := p.r.mark()
	body, err := p.parseStringBody(delimBinary)
	if err != nil {
		return nil, err
	}
	data, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, wrapParseError(mark, "invalid base64url binary literal", err)
	}
	return &Resource{Kind: KindLiteral, Mark: mark, Literal: &Literal{Kind: LiteralBinary, Bytes: data}}, nil
}
