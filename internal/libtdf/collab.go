package libtdf

// This file declares the collaborator interfaces spec.md §6 keeps external
// to the core: domain-specific literal libraries for IRI, email address,
// telephone number, UUID, and media type. The core consumes only these
// small parse/format surfaces; Collaborators bundles a default
// implementation of each, grounded on real libraries where the retrieval
// pack offers one (UUID -> github.com/google/uuid) and on the standard
// library where it does not (see DESIGN.md for the per-dependency
// justification of each stdlib fallback).

// IRICodec parses and formats absolute/relative IRIs.
type IRICodec interface {
	// Parse validates s as an IRI and returns its canonical string form.
	Parse(s string) (string, error)
	// IsAbsolute reports whether s has a scheme component.
	IsAbsolute(s string) bool
	// Fragment extracts the fragment of an IRI, if any.
	Fragment(s string) (string, bool)
}

// EmailCodec parses and formats email addresses.
type EmailCodec interface {
	Parse(s string) (string, error)
}

// TelephoneCodec parses and formats telephone numbers.
type TelephoneCodec interface {
	Parse(s string) (string, error)
}

// UUIDCodec parses and formats UUIDs.
type UUIDCodec interface {
	Parse(s string) ([16]byte, error)
	Format(u [16]byte) string
}

// MediaTypeCodec parses and formats media types (RFC 2045 type/subtype,
// plus the TDF short forms registered in shortMediaTypes).
type MediaTypeCodec interface {
	Parse(s string) (string, error)
	Format(mediaType string) string
}

// Collaborators bundles the codecs the core depends on (spec.md §6). A
// nil field falls back to the corresponding default* implementation.
type Collaborators struct {
	IRI       IRICodec
	Email     EmailCodec
	Telephone TelephoneCodec
	UUID      UUIDCodec
	MediaType MediaTypeCodec
}

// DefaultCollaborators returns the built-in codec set: net/url for IRI,
// net/mail for email, a syntactic validator for telephone numbers,
// github.com/google/uuid for UUID, and mime for media types.
func DefaultCollaborators() Collaborators {
	return Collaborators{
		IRI:       defaultIRICodec{},
		Email:     defaultEmailCodec{},
		Telephone: defaultTelephoneCodec{},
		UUID:      defaultUUIDCodec{},
		MediaType: defaultMediaTypeCodec{},
	}
}

func (c Collaborators) withDefaults() Collaborators {
	d := DefaultCollaborators()
	if c.IRI == nil {
		c.IRI = d.IRI
	}
	if c.Email == nil {
		c.Email = d.Email
	}
	if c.Telephone == nil {
		c.Telephone = d.Telephone
	}
	if c.UUID == nil {
		c.UUID = d.UUID
	}
	if c.MediaType == nil {
		c.MediaType = d.MediaType
	}
	return c
}
