// Package examplegen generates human-presentable example values from
// graph-structured API type descriptions. Given a shape node, a target media
// type, and options, it selects between author-supplied examples, stashed
// raw JSON-Schema fragments, and type-directed synthesis, producing
// ExampleViewModel results in either a structured-text (JSON) or
// tree-markup (XML) representation.
package examplegen

import (
	"strings"

	"github.com/goliatone/go-examplegen/pkg/amf"
	"github.com/goliatone/go-examplegen/pkg/shape"
)

// generatedTitlePrefix marks placeholder example names produced upstream;
// such titles are discarded rather than surfaced.
const generatedTitlePrefix = "example_"

// Generator walks shape subgraphs through a model accessor. It holds no
// state beyond the accessor: every call performs a full walk of the supplied
// subgraph and nothing is cached between calls.
type Generator struct {
	acc *amf.Accessor
}

// New creates a generator over the given accessor.
func New(acc *amf.Accessor) *Generator {
	if acc == nil {
		acc = amf.NewAccessor(nil)
	}
	return &Generator{acc: acc}
}

// Accessor exposes the model accessor the generator reads through.
func (g *Generator) Accessor() *amf.Accessor {
	return g.acc
}

// ListMedia returns the declared media type strings of the given payload
// shapes, in declaration order. Nil when the input holds no payloads.
func (g *Generator) ListMedia(payloads []amf.Node) []string {
	var media []string
	for _, payload := range payloads {
		resolved := g.acc.Resolve(payload)
		if !g.acc.HasType(resolved, amf.TypePayload) {
			continue
		}
		if mt, ok := g.acc.Value(resolved, amf.PropMediaType); ok {
			media = append(media, mt)
		}
	}
	return media
}

// GeneratePayloadsExamples selects the payload declaring the requested media
// type and generates its examples. When no payload matches, a sole payload
// is attempted anyway; otherwise the result is absent.
func (g *Generator) GeneratePayloadsExamples(payloads []amf.Node, media string, opts Options) []ExampleViewModel {
	if len(payloads) == 0 {
		return nil
	}
	for _, payload := range payloads {
		resolved := g.acc.Resolve(payload)
		if mt, ok := g.acc.Value(resolved, amf.PropMediaType); ok && mt == media {
			return g.GeneratePayloadExamples(resolved, media, opts)
		}
	}
	if len(payloads) == 1 {
		return g.GeneratePayloadExamples(payloads[0], media, opts)
	}
	return nil
}

// GeneratePayloadExamples extracts the payload's declared schema, binds the
// payload identity as the consuming type id, and generates examples for the
// schema shape.
func (g *Generator) GeneratePayloadExamples(payload amf.Node, media string, opts Options) []ExampleViewModel {
	resolved := g.acc.Resolve(payload)
	if !g.acc.HasType(resolved, amf.TypePayload) {
		return nil
	}
	schema, ok := g.acc.Node(resolved, amf.PropSchema)
	if !ok {
		return nil
	}
	opts.TypeID = resolved.ID()
	if opts.TypeName == "" {
		opts.TypeName = g.declaredName(schema)
	}
	return g.ComputeExamples(schema, media, opts)
}

// declaredName reads a node's declared name, preferring the shape-level name
// facet over the display name.
func (g *Generator) declaredName(node amf.Node) string {
	if name, ok := g.acc.Value(node, amf.PropName); ok && name != "" {
		return name
	}
	if name, ok := g.acc.Value(node, amf.PropDisplayName); ok && name != "" {
		return name
	}
	return ""
}

// sourceMapValue digs a source-map facet value out of a node: the node's
// sources entry holds per-kind entries whose value facet carries the text.
func (g *Generator) sourceMapValue(node amf.Node, kindIRI string) (string, bool) {
	sources, ok := g.acc.Node(node, amf.PropSources)
	if !ok {
		return "", false
	}
	entry, ok := g.acc.Node(sources, kindIRI)
	if !ok {
		return "", false
	}
	return g.acc.Value(entry, amf.PropSourceValue)
}

// authorExamples collects the example nodes attached to a shape, collapsing
// named-examples wrapper nodes into their inner lists.
func (g *Generator) authorExamples(node amf.Node) []amf.Node {
	var examples []amf.Node
	for _, entry := range g.acc.List(node, amf.PropExamples) {
		if g.acc.HasType(entry, amf.TypeExample) {
			examples = append(examples, entry)
			continue
		}
		// Named-examples fragments wrap the real list one level down.
		if inner := g.acc.List(entry, amf.PropExamples); len(inner) > 0 {
			examples = append(examples, inner...)
		}
	}
	return examples
}

// filterByTypeID keeps examples whose tracked-element linkage names the
// consuming type. Examples without linkage apply everywhere. The identifier
// list is comma separated and entries match bare or "amf://id"-prefixed.
func (g *Generator) filterByTypeID(examples []amf.Node, typeID string) []amf.Node {
	if typeID == "" {
		return examples
	}
	var kept []amf.Node
	for _, example := range examples {
		tracked, ok := g.sourceMapValue(example, amf.PropTrackedElement)
		if !ok {
			kept = append(kept, example)
			continue
		}
		if trackedElementMatches(tracked, typeID) {
			kept = append(kept, example)
		}
	}
	return kept
}

func trackedElementMatches(tracked, typeID string) bool {
	for _, id := range strings.Split(tracked, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if id == typeID || id == amf.IDPrefix+typeID ||
			strings.TrimPrefix(id, amf.IDPrefix) == typeID {
			return true
		}
	}
	return false
}

// scalarShapeText finds the literal text a scalar shape offers: a declared
// default first, then the raw text of an attached example.
func (g *Generator) scalarShapeText(node amf.Node) (string, bool) {
	if text, ok := g.acc.Value(node, amf.PropDefaultValue); ok {
		return text, true
	}
	for _, example := range g.authorExamples(node) {
		if raw, ok := g.acc.Value(example, amf.PropRaw); ok {
			return raw, true
		}
	}
	return "", false
}

// scalarShapeValue produces the native value of a scalar shape, applying the
// zero-value rule when no literal text exists.
func (g *Generator) scalarShapeValue(node amf.Node) any {
	datatype := g.datatypeOf(node)
	text, ok := g.scalarShapeText(node)
	if !ok {
		return zeroValue(datatype)
	}
	return coerceValue(text, datatype)
}

// datatypeOf reads the declared datatype IRI of a shape or structured-value
// node; the facet may be a plain compacted string or an @id reference.
func (g *Generator) datatypeOf(node amf.Node) string {
	if text, ok := g.acc.Value(node, amf.PropDatatype); ok {
		return g.acc.Expand(text)
	}
	if ref, ok := g.acc.Node(node, amf.PropDatatype); ok {
		return g.acc.Expand(ref.ID())
	}
	return ""
}

// classify wraps the shape classifier with this generator's accessor.
func (g *Generator) classify(node amf.Node) shape.Shape {
	return shape.Classify(g.acc, node)
}
