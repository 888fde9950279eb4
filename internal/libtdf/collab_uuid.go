package libtdf

import "github.com/google/uuid"

// defaultUUIDCodec implements UUIDCodec on github.com/google/uuid, the
// UUID dependency the retrieval pack already carries (odvcencio-mane's
// go.mod; its editor and LSP layers use it for session and request IDs).
type defaultUUIDCodec struct{}

func (defaultUUIDCodec) Parse(s string) ([16]byte, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return [16]byte{}, err
	}
	return u, nil
}

func (defaultUUIDCodec) Format(u [16]byte) string {
	return uuid.UUID(u).String()
}
