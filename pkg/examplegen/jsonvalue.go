package examplegen

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-examplegen/pkg/amf"
	"github.com/goliatone/go-examplegen/pkg/shape"
)

// orderedMap is a JSON object that serializes its keys in insertion order,
// so generated objects follow property declaration order.
type orderedMap struct {
	keys   []string
	values map[string]any
}

func newOrderedMap() *orderedMap {
	return &orderedMap{values: map[string]any{}}
}

func (m *orderedMap) set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// MarshalJSON writes entries in insertion order. Nested values marshal
// through the regular encoder, so nested ordered maps keep their order too.
func (m *orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		encodedValue, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// serializeJSON renders a synthesized value tree as presentable text.
func serializeJSON(value any) string {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return ""
	}
	return string(encoded)
}

// jsonFromStructuredValue walks an author example's structured-value subtree
// into a native value tree.
func (g *Generator) jsonFromStructuredValue(node amf.Node) any {
	switch {
	case g.acc.HasType(node, amf.TypeDataObject):
		obj := newOrderedMap()
		for _, key := range g.acc.NodeKeys(node, amf.NamespaceData) {
			field := amf.LocalName(g.acc.Expand(key))
			obj.set(field, g.jsonFromStructuredEntry(node[key]))
		}
		return obj
	case g.acc.HasType(node, amf.TypeDataArray):
		values := []any{}
		for _, member := range g.acc.List(node, amf.PropDataMember) {
			values = append(values, g.jsonFromStructuredValue(member))
		}
		return values
	default:
		// data scalar: coerce the literal through its declared datatype.
		text, ok := g.acc.Value(node, amf.PropDataValue)
		if !ok {
			return ""
		}
		if datatype := g.datatypeOf(node); datatype != "" {
			return coerceValue(text, datatype)
		}
		return text
	}
}

// jsonFromStructuredEntry handles one field of a structured object, which
// may hold a nested data node or a bare literal.
func (g *Generator) jsonFromStructuredEntry(value any) any {
	for _, entry := range g.acc.EnsureArray(value) {
		switch typed := entry.(type) {
		case map[string]any:
			return g.jsonFromStructuredValue(g.acc.Resolve(amf.Node(typed)))
		case amf.Node:
			return g.jsonFromStructuredValue(g.acc.Resolve(typed))
		default:
			return typed
		}
	}
	return ""
}

// jsonFromProperties synthesizes an object value from a node shape's
// declared property list, in declaration order.
func (g *Generator) jsonFromProperties(node amf.Node, opts Options) *orderedMap {
	obj := newOrderedMap()
	for _, property := range g.acc.List(node, amf.PropProperty) {
		name := g.declaredName(property)
		if name == "" {
			continue
		}
		obj.set(name, g.jsonPropertyValue(property, opts))
	}
	return obj
}

// jsonPropertyValue produces the value for a single property. A range that
// carries its own examples synthesizes from the example's structured value,
// preserving hand-authored nested data; anything else dispatches by range
// kind and degrades to an empty string.
func (g *Generator) jsonPropertyValue(property amf.Node, opts Options) any {
	rng, ok := g.acc.Node(property, amf.PropRange)
	if !ok {
		return ""
	}
	if examples := g.authorExamples(rng); len(examples) > 0 {
		if sv, ok := g.acc.Node(examples[0], amf.PropStructuredValue); ok {
			return g.jsonFromStructuredValue(sv)
		}
		if raw, ok := g.acc.Value(examples[0], amf.PropRaw); ok {
			return raw
		}
	}
	return g.jsonShapeValue(rng, opts)
}

// jsonShapeValue dispatches a range shape to its JSON value.
func (g *Generator) jsonShapeValue(rng amf.Node, opts Options) any {
	classified := g.classify(rng)
	switch classified.Kind {
	case shape.Scalar:
		return g.scalarShapeValue(classified.Node)
	case shape.Nil:
		return nil
	case shape.Object:
		return g.jsonFromProperties(classified.Node, opts)
	case shape.Array:
		items, ok := g.acc.Node(classified.Node, amf.PropItems)
		if !ok {
			return []any{}
		}
		return []any{g.jsonShapeValue(items, opts.forArrayItems())}
	case shape.Union:
		alternatives := g.acc.List(classified.Node, amf.PropAnyOf)
		if len(alternatives) == 0 {
			return ""
		}
		return g.jsonShapeValue(alternatives[0], opts)
	default:
		return ""
	}
}
