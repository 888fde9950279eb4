package libtdf

// ParseOptions configures a single Parse call (spec.md §9 open questions are
// resolved here as configuration rather than guessed intent).
type ParseOptions struct {
	// ExpectedMediaType is the caller's expected document variant. An empty
	// value defaults to GeneralMediaType. A header whose media type does not
	// match is not an error (spec.md §4.5: "the body media type must match
	// the caller's expected variant, else defaults to the canonical one").
	ExpectedMediaType string

	// Namespace seeds the namespace registry used to resolve handles. If
	// nil, a fresh empty registry is used and populated only from the
	// document header.
	Namespace *Namespace

	// DescriptionOnNonObjects controls whether a ":" description may follow
	// a non-object value (spec.md §9 open question). Default false: a
	// description is only legal after an object, collection, or handle
	// reference, never after a literal.
	DescriptionOnNonObjects bool

	// Collaborators supplies the domain literal codecs (§6). Unset fields
	// fall back to the package defaults.
	Collaborators Collaborators
}

// ParseOption mutates a ParseOptions during construction.
type ParseOption func(*ParseOptions)

// WithExpectedMediaType sets the document variant the caller expects.
func WithExpectedMediaType(mediaType string) ParseOption {
	return func(o *ParseOptions) { o.ExpectedMediaType = mediaType }
}

// WithNamespaceRegistry seeds the parser's namespace registry.
func WithNamespaceRegistry(ns *Namespace) ParseOption {
	return func(o *ParseOptions) { o.Namespace = ns }
}

// WithDescriptionOnNonObjects allows a description to follow any value, not
// only objects.
func WithDescriptionOnNonObjects(allow bool) ParseOption {
	return func(o *ParseOptions) { o.DescriptionOnNonObjects = allow }
}

// WithParseCollaborators overrides one or more domain literal codecs.
func WithParseCollaborators(c Collaborators) ParseOption {
	return func(o *ParseOptions) { o.Collaborators = c }
}

// NewParseOptions applies opts over the documented defaults.
func NewParseOptions(opts ...ParseOption) ParseOptions {
	o := ParseOptions{ExpectedMediaType: GeneralMediaType}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Namespace == nil {
		o.Namespace = NewNamespace()
	}
	o.Collaborators = o.Collaborators.withDefaults()
	return o
}

// SerializeOptions configures a single serialize call (spec.md §4.7).
type SerializeOptions struct {
	// Formatted selects indented, newline-separated emission. False selects
	// the compact form (explicit sequence delimiters, no newlines).
	Formatted bool
	// IndentWidth is the number of spaces per nesting level in formatted
	// mode. Zero defaults to 2.
	IndentWidth int
	// AutoNamespaceDiscovery scans the graph for type/property tag
	// namespaces (excluding the ad-hoc namespace) and registers each with a
	// generated alias prefix before emission (spec.md §4.7 step 1).
	AutoNamespaceDiscovery bool
	// ShortPropertyForm enables "propertyRef:…;" for anonymous, typeless,
	// non-aliased object values instead of "propertyRef=*:…;".
	ShortPropertyForm bool
	// ExcludeDuplicateRoots skips re-emitting a root resource (by identity)
	// that has already been emitted earlier in the same root sequence.
	ExcludeDuplicateRoots bool
	// GeneratedAliasPrefix is prepended to the serializer's generated-alias
	// counter when a compound resource needs an alias it wasn't given.
	GeneratedAliasPrefix string
	// MediaType is the document variant to declare in the header. Empty
	// defaults to GeneralMediaType.
	MediaType string
	// Namespace seeds the namespace registry consulted for handle emission.
	Namespace *Namespace
	// Collaborators supplies the domain literal codecs (§6).
	Collaborators Collaborators
}

// SerializeOption mutates a SerializeOptions during construction.
type SerializeOption func(*SerializeOptions)

// WithFormatted selects indented multi-line output.
func WithFormatted(formatted bool) SerializeOption {
	return func(o *SerializeOptions) { o.Formatted = formatted }
}

// WithIndentWidth sets the number of spaces per indent level.
func WithIndentWidth(width int) SerializeOption {
	return func(o *SerializeOptions) { o.IndentWidth = width }
}

// WithAutoNamespaceDiscovery enables automatic namespace alias generation.
func WithAutoNamespaceDiscovery(enabled bool) SerializeOption {
	return func(o *SerializeOptions) { o.AutoNamespaceDiscovery = enabled }
}

// WithShortPropertyForm enables the "propertyRef:…;" short description form.
func WithShortPropertyForm(enabled bool) SerializeOption {
	return func(o *SerializeOptions) { o.ShortPropertyForm = enabled }
}

// WithExcludeDuplicateRoots skips re-emitting an already-emitted root.
func WithExcludeDuplicateRoots(enabled bool) SerializeOption {
	return func(o *SerializeOptions) { o.ExcludeDuplicateRoots = enabled }
}

// WithGeneratedAliasPrefix sets the prefix used for generated aliases.
func WithGeneratedAliasPrefix(prefix string) SerializeOption {
	return func(o *SerializeOptions) { o.GeneratedAliasPrefix = prefix }
}

// WithSerializeMediaType sets the document variant declared in the header.
func WithSerializeMediaType(mediaType string) SerializeOption {
	return func(o *SerializeOptions) { o.MediaType = mediaType }
}

// WithSerializeNamespaceRegistry seeds the serializer's namespace registry.
func WithSerializeNamespaceRegistry(ns *Namespace) SerializeOption {
	return func(o *SerializeOptions) { o.Namespace = ns }
}

// WithSerializeCollaborators overrides one or more domain literal codecs.
func WithSerializeCollaborators(c Collaborators) SerializeOption {
	return func(o *SerializeOptions) { o.Collaborators = c }
}

// NewSerializeOptions applies opts over the documented defaults.
func NewSerializeOptions(opts ...SerializeOption) SerializeOptions {
	o := SerializeOptions{
		MediaType:   GeneralMediaType,
		IndentWidth: 2,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.IndentWidth <= 0 {
		o.IndentWidth = 2
	}
	if o.Namespace == nil {
		o.Namespace = NewNamespace()
	}
	o.Collaborators = o.Collaborators.withDefaults()
	return o
}
