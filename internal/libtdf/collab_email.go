package libtdf

import (
	"fmt"
	"net/mail"
)

// defaultEmailCodec implements EmailCodec on top of net/mail. No
// email-address validation library appears anywhere in the retrieval
// pack, so the standard library is the only available option here (see
// DESIGN.md).
type defaultEmailCodec struct{}

func (defaultEmailCodec) Parse(s string) (string, error) {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", fmt.Errorf("invalid email address %q: %w", s, err)
	}
	return addr.Address, nil
}
