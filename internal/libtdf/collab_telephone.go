package libtdf

import (
	"fmt"
	"strings"
)

// defaultTelephoneCodec performs syntactic E.164-style validation: a
// leading "+", 7 to 15 digits, with "-", ".", spaces, and parentheses
// permitted as separators and stripped from the canonical form. No
// telephone-number library appears anywhere in the retrieval pack, so this
// is a minimal inline validator rather than a borrowed dependency (see
// DESIGN.md).
type defaultTelephoneCodec struct{}

func (defaultTelephoneCodec) Parse(s string) (string, error) {
	if !strings.HasPrefix(s, "+") {
		return "", fmt.Errorf("telephone number %q must start with %q", s, "+")
	}
	var digits strings.Builder
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '-' || r == '.' || r == ' ' || r == '(' || r == ')':
			// separator, dropped from canonical form
		default:
			return "", fmt.Errorf("telephone number %q contains invalid character %q", s, r)
		}
	}
	n := digits.Len()
	if n < 7 || n > 15 {
		return "", fmt.Errorf("telephone number %q must have 7-15 digits, has %d", s, n)
	}
	return "+" + digits.String(), nil
}
