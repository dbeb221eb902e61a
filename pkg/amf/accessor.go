package amf

import (
	"sort"
	"strconv"
	"strings"
)

// Accessor is the model accessor consumed by the example engine. It answers
// type membership, extracts scalar values by vocabulary IRI, resolves
// references through the document node table, and normalizes possibly-scalar
// graph edges into lists. Every lookup failure degrades to an absent result.
type Accessor struct {
	doc      *Document
	prefixes []prefixMapping
}

type prefixMapping struct {
	prefix    string
	namespace string
}

// NewAccessor wraps a parsed document. A nil document yields an accessor
// whose lookups all report absence.
func NewAccessor(doc *Document) *Accessor {
	acc := &Accessor{doc: doc}
	if doc != nil {
		for prefix, ns := range doc.context {
			acc.prefixes = append(acc.prefixes, prefixMapping{prefix: prefix, namespace: ns})
		}
		// Longest namespace first so nested vocabularies compact correctly.
		sort.Slice(acc.prefixes, func(i, j int) bool {
			return len(acc.prefixes[i].namespace) > len(acc.prefixes[j].namespace)
		})
	}
	return acc
}

// Key maps a vocabulary IRI to the compacted key used by this document.
// Unmapped IRIs pass through unchanged.
func (a *Accessor) Key(iri string) string {
	for _, mapping := range a.prefixes {
		if strings.HasPrefix(iri, mapping.namespace) {
			return mapping.prefix + ":" + strings.TrimPrefix(iri, mapping.namespace)
		}
	}
	return iri
}

// Expand maps a compacted key back to its full IRI.
func (a *Accessor) Expand(key string) string {
	prefix, local, ok := strings.Cut(key, ":")
	if !ok {
		return key
	}
	for _, mapping := range a.prefixes {
		if mapping.prefix == prefix {
			return mapping.namespace + local
		}
	}
	return key
}

// HasType reports whether the node carries the given type tag, compacted or
// expanded.
func (a *Accessor) HasType(node Node, typeIRI string) bool {
	if node == nil {
		return false
	}
	compacted := a.Key(typeIRI)
	for _, entry := range toList(node["@type"]) {
		tag, ok := entry.(string)
		if !ok {
			continue
		}
		if tag == typeIRI || tag == compacted || a.Expand(tag) == typeIRI {
			return true
		}
	}
	return false
}

// Resolve dereferences a node until it is no longer a bare reference. It is
// idempotent and cycle tolerant: resolution walks the node table with a
// visited set, never recursive pointer chasing, and a dangling or circular
// reference resolves to the last node reached.
func (a *Accessor) Resolve(node Node) Node {
	if node == nil || a.doc == nil {
		return node
	}
	visited := map[string]struct{}{}
	current := node
	for current.IsRef() {
		id := current.ID()
		if _, seen := visited[id]; seen {
			return current
		}
		visited[id] = struct{}{}
		next, ok := a.doc.Lookup(id)
		if !ok {
			return current
		}
		current = next
	}
	return current
}

// EnsureArray normalizes a possibly-scalar graph edge into a list.
func (a *Accessor) EnsureArray(v any) []any {
	return toList(v)
}

// lookup fetches a raw property value, accepting both the compacted and the
// full form of the key.
func (a *Accessor) lookup(node Node, propIRI string) (any, bool) {
	if node == nil {
		return nil, false
	}
	if value, ok := node[a.Key(propIRI)]; ok {
		return value, true
	}
	if value, ok := node[propIRI]; ok {
		return value, true
	}
	return nil, false
}

// Node returns the first node-valued entry of a property, resolved.
func (a *Accessor) Node(node Node, propIRI string) (Node, bool) {
	for _, entry := range a.rawList(node, propIRI) {
		if child, ok := asNode(entry); ok {
			return a.Resolve(child), true
		}
	}
	return nil, false
}

// List returns every node-valued entry of a property, resolved, preserving
// declaration order.
func (a *Accessor) List(node Node, propIRI string) []Node {
	var nodes []Node
	for _, entry := range a.rawList(node, propIRI) {
		if child, ok := asNode(entry); ok {
			nodes = append(nodes, a.Resolve(child))
		}
	}
	return nodes
}

func (a *Accessor) rawList(node Node, propIRI string) []any {
	value, ok := a.lookup(node, propIRI)
	if !ok {
		return nil
	}
	return toList(value)
}

// Value extracts the first scalar value of a property as text. Node-valued
// entries contribute their @value facet when present.
func (a *Accessor) Value(node Node, propIRI string) (string, bool) {
	for _, entry := range a.rawList(node, propIRI) {
		if text, ok := scalarText(entry); ok {
			return text, true
		}
	}
	return "", false
}

// Bool extracts a boolean-valued property, treating absence as false.
func (a *Accessor) Bool(node Node, propIRI string) bool {
	text, ok := a.Value(node, propIRI)
	return ok && text == "true"
}

// NodeKeys lists the property keys of a node that expand into the given
// namespace, in sorted order. Structured-value objects carry their fields as
// namespaced keys, so this is how the engine discovers them.
func (a *Accessor) NodeKeys(node Node, namespace string) []string {
	var keys []string
	for key := range node {
		if key == "@id" || key == "@type" {
			continue
		}
		if strings.HasPrefix(a.Expand(key), namespace) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// LocalName trims the namespace (or compaction prefix) from an IRI, leaving
// the trailing identifier.
func LocalName(iri string) string {
	if idx := strings.LastIndexAny(iri, "#/:"); idx >= 0 && idx+1 < len(iri) {
		return iri[idx+1:]
	}
	return iri
}

func scalarText(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case bool:
		return strconv.FormatBool(value), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case int:
		return strconv.Itoa(value), true
	case int64:
		return strconv.FormatInt(value, 10), true
	case map[string]any:
		if inner, ok := value["@value"]; ok {
			return scalarText(inner)
		}
		return "", false
	case Node:
		if inner, ok := value["@value"]; ok {
			return scalarText(inner)
		}
		return "", false
	default:
		return "", false
	}
}
