package libtdf

import (
	"fmt"
	"net/url"
	"strings"
)

// defaultIRICodec implements IRICodec on top of net/url. No IRI/URI
// parsing library appears anywhere in the retrieval pack, so the standard
// library is the only available option here (see DESIGN.md).
type defaultIRICodec struct{}

func (defaultIRICodec) Parse(s string) (string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid IRI %q: %w", s, err)
	}
	if u.Scheme == "" {
		return "", fmt.Errorf("IRI %q is not absolute", s)
	}
	return s, nil
}

func (defaultIRICodec) IsAbsolute(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

func (defaultIRICodec) Fragment(s string) (string, bool) {
	i := strings.LastIndexByte(s, '#')
	if i < 0 {
		return "", false
	}
	return s[i+1:], true
}
