package libtdf

// Processor is the event-sink contract (C6, spec.md §4.2). The parser
// emits three kinds of events to a user-supplied Processor as it discovers
// them; Result is called once after the parse completes successfully, and
// its return value becomes whatever Parse returns to its caller ("the
// parser returns whatever the sink returns").
//
// Ordering guarantee: every tagged resource passed to ProcessStatement or
// ReportRoot has been passed to DeclareResource once, the first time its
// tag was seen. DeclareResource takes only tags, so resources without a tag
// (blank objects, lists, sets, maps, and the synthetic map-entry objects)
// are never declared, and neither are literal resources, whose identity is
// structural. Statements for a given subject appear in document order.
type Processor[R any] interface {
	// DeclareResource announces that a resource of this identity exists.
	DeclareResource(tag, typeTag *Tag) error
	// ProcessStatement reports one (subject, property, value) edge.
	ProcessStatement(subject, property, value *Resource) error
	// ReportRoot reports a document-root resource.
	ReportRoot(root *Resource) error
	// Result is invoked once, after a successful parse, to obtain the
	// sink's final value.
	Result() (R, error)
}

// GraphProcessor is the default Processor: it simply collects the roots
// reported by the parser into a slice, since the parser already
// materializes the full Resource graph (subject/property/value are
// Resource pointers, not opaque IDs) — most callers have no need for a
// bespoke application model and just want the parsed graph (spec.md §1:
// "the higher-level processor that converts parse events into an
// application model" is explicitly out of the core's scope; GraphProcessor
// is the trivial identity case of that processor).
type GraphProcessor struct {
	roots []*Resource
}

// NewGraphProcessor returns a Processor that collects roots as-is.
func NewGraphProcessor() *GraphProcessor {
	return &GraphProcessor{}
}

func (g *GraphProcessor) DeclareResource(tag, typeTag *Tag) error { return nil }

func (g *GraphProcessor) ProcessStatement(subject, property, value *Resource) error {
	return nil
}

func (g *GraphProcessor) ReportRoot(root *Resource) error {
	g.roots = append(g.roots, root)
	return nil
}

func (g *GraphProcessor) Result() ([]*Resource, error) {
	return g.roots, nil
}
