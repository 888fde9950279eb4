package libtdf

import (
	"fmt"
	"mime"
)

// shortMediaTypes maps the compact header tokens spec.md §6 calls "the two
// media types" to their full "type/subtype" form, and back.
var shortMediaTypes = map[string]string{
	"urf":            GeneralMediaType,
	"urf-properties": PropertiesMediaType,
}

var shortMediaTypeNames = func() map[string]string {
	m := make(map[string]string, len(shortMediaTypes))
	for short, full := range shortMediaTypes {
		m[full] = short
	}
	return m
}()

// defaultMediaTypeCodec implements MediaTypeCodec on top of mime. No
// media-type library appears anywhere in the retrieval pack, and
// mime.ParseMediaType/mime.FormatMediaType is the idiomatic stdlib surface
// for exactly this "type/subtype" syntax (see DESIGN.md).
type defaultMediaTypeCodec struct{}

func (defaultMediaTypeCodec) Parse(s string) (string, error) {
	if full, ok := shortMediaTypes[s]; ok {
		return full, nil
	}
	t, _, err := mime.ParseMediaType(s)
	if err != nil {
		return "", fmt.Errorf("invalid media type %q: %w", s, err)
	}
	return t, nil
}

func (defaultMediaTypeCodec) Format(mediaType string) string {
	if short, ok := shortMediaTypeNames[mediaType]; ok {
		return short
	}
	return mediaType
}
