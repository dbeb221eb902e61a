package amf

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is a parsed compacted graph document: a @context prefix map plus
// a node table keyed by @id. The table is built once at parse time so that
// reference resolution is a lookup, never a pointer chase.
type Document struct {
	context map[string]string
	graph   []Node
	index   map[string]Node
}

// ParseDocument decodes a compacted graph document from JSON, falling back
// to YAML when the payload does not start with a JSON object or array.
func ParseDocument(raw []byte) (*Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("amf: document is empty")
	}

	var decoded map[string]any
	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] == '{' || trimmed[0] == '[' {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("amf: decode JSON document: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("amf: decode YAML document: %w", err)
		}
	}

	return NewDocument(decoded)
}

// NewDocument builds a Document from an already-decoded payload. The payload
// may carry a @graph list or be a single root node.
func NewDocument(decoded map[string]any) (*Document, error) {
	if len(decoded) == 0 {
		return nil, errors.New("amf: document has no content")
	}

	doc := &Document{
		context: map[string]string{},
		index:   map[string]Node{},
	}

	if ctx, ok := decoded["@context"].(map[string]any); ok {
		for prefix, ns := range ctx {
			if iri, ok := ns.(string); ok && iri != "" {
				doc.context[prefix] = iri
			}
		}
	}

	if graph, ok := decoded["@graph"]; ok {
		for _, entry := range toList(graph) {
			if node, ok := asNode(entry); ok {
				doc.graph = append(doc.graph, node)
			}
		}
	} else {
		root := Node{}
		for key, value := range decoded {
			if key == "@context" {
				continue
			}
			root[key] = value
		}
		doc.graph = append(doc.graph, root)
	}

	if len(doc.graph) == 0 {
		return nil, errors.New("amf: document graph is empty")
	}

	for _, node := range doc.graph {
		indexNode(doc.index, node)
	}

	return doc, nil
}

// Graph returns the top-level nodes in declaration order.
func (d *Document) Graph() []Node {
	if d == nil {
		return nil
	}
	return d.graph
}

// Root returns the first top-level node, the conventional entry point of a
// single-payload document.
func (d *Document) Root() Node {
	if d == nil || len(d.graph) == 0 {
		return nil
	}
	return d.graph[0]
}

// Lookup fetches a node from the table by identity.
func (d *Document) Lookup(id string) (Node, bool) {
	if d == nil || id == "" {
		return nil, false
	}
	node, ok := d.index[id]
	return node, ok
}

// indexNode registers a node and every identified descendant in the table.
// Re-registration keeps the first occurrence so the full node wins over any
// later bare reference that shares its @id.
func indexNode(index map[string]Node, node Node) {
	if node == nil {
		return
	}
	if id := node.ID(); id != "" && !node.IsRef() {
		if _, exists := index[id]; !exists {
			index[id] = node
		}
	}
	for key, value := range node {
		if key == "@id" || key == "@type" {
			continue
		}
		for _, entry := range toList(value) {
			if child, ok := asNode(entry); ok {
				indexNode(index, child)
			}
		}
	}
}

// toList normalizes a graph edge that may hold a scalar, a node, or a list.
func toList(v any) []any {
	switch value := v.(type) {
	case nil:
		return nil
	case []any:
		return value
	default:
		return []any{value}
	}
}
