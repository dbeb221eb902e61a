package examplegen

import (
	"strings"

	"github.com/goliatone/go-examplegen/pkg/amf"
	"github.com/goliatone/go-examplegen/pkg/shape"
	"github.com/goliatone/go-examplegen/pkg/xmldoc"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// defaultRootName names the tree-markup root when no naming context exists.
const defaultRootName = "model"

// xmlFromProperties synthesizes a tree-markup example from a node shape's
// property list and serializes it.
func (g *Generator) xmlFromProperties(node amf.Node, opts Options) string {
	rootName := sanitizeXMLName(firstNonEmpty(opts.TypeName, g.declaredName(node), defaultRootName))
	doc := xmldoc.New(rootName)
	g.xmlAppendProperties(doc.Root(), node)
	return serializeXML(doc)
}

// xmlFromStructuredValue renders an author example's structured-value
// subtree as tree markup under the naming context's root element.
func (g *Generator) xmlFromStructuredValue(node amf.Node, opts Options) string {
	rootName := sanitizeXMLName(firstNonEmpty(opts.TypeName, opts.ParentName, defaultRootName))
	doc := xmldoc.New(rootName)
	g.xmlAppendStructured(doc.Root(), node)
	return serializeXML(doc)
}

func (g *Generator) xmlAppendProperties(parent *xmldoc.Element, node amf.Node) {
	for _, property := range g.acc.List(node, amf.PropProperty) {
		g.xmlAppendProperty(parent, property)
	}
}

// xmlAppendProperty renders one property into its parent element, honoring
// attribute serialization, unions, nested examples, object recursion,
// wrapped arrays, and the plain scalar fallback.
func (g *Generator) xmlAppendProperty(parent *xmldoc.Element, property amf.Node) {
	name := g.declaredName(property)
	rng, ok := g.acc.Node(property, amf.PropRange)
	if !ok {
		return
	}
	rangeName := firstNonEmpty(g.declaredName(rng), name)

	serialization, hasSerialization := g.acc.Node(rng, amf.PropXMLSerialization)
	if hasSerialization && g.acc.Bool(serialization, amf.PropXMLAttribute) {
		attrName, _ := g.acc.Value(serialization, amf.PropXMLName)
		attrName = firstNonEmpty(attrName, rangeName)
		attrName = sanitizeXMLName(strings.TrimSuffix(attrName, "?"))
		text, _ := g.scalarShapeText(rng)
		parent.SetAttribute(attrName, text)
		return
	}

	classified := g.classify(rng)
	if classified.Kind == shape.Union {
		g.xmlAppendUnion(parent, name, classified.Node)
		return
	}

	if examples := g.authorExamples(rng); len(examples) > 0 {
		if sv, ok := g.acc.Node(examples[0], amf.PropStructuredValue); ok {
			childName, _ := g.acc.Value(serialization, amf.PropXMLName)
			childName = sanitizeXMLName(firstNonEmpty(childName, name, rangeName))
			child := parent.CreateElement(childName)
			g.xmlAppendStructured(child, sv)
			return
		}
	}

	switch classified.Kind {
	case shape.Object:
		child := parent.CreateElement(sanitizeXMLName(rangeName))
		g.xmlAppendProperties(child, classified.Node)
	case shape.Array:
		wrapped := hasSerialization && g.acc.Bool(serialization, amf.PropXMLWrapped)
		g.xmlAppendArray(parent, name, classified.Node, wrapped)
	default:
		child := parent.CreateElement(sanitizeXMLName(rangeName))
		child.SetText(g.xmlScalarText(classified.Node))
	}
}

// xmlAppendUnion renders a union-ranged property: the first scalar
// alternative yields a placeholder child labeled with its datatype name;
// otherwise the first non-scalar alternative is rendered in its place.
func (g *Generator) xmlAppendUnion(parent *xmldoc.Element, name string, union amf.Node) {
	alternatives := g.acc.List(union, amf.PropAnyOf)
	for _, alternative := range alternatives {
		classified := g.classify(alternative)
		if classified.Kind != shape.Scalar {
			continue
		}
		child := parent.CreateElement(sanitizeXMLName(firstNonEmpty(name, g.declaredName(alternative))))
		child.SetText(amf.LocalName(g.datatypeOf(classified.Node)))
		return
	}
	for _, alternative := range alternatives {
		classified := g.classify(alternative)
		switch classified.Kind {
		case shape.Object:
			child := parent.CreateElement(sanitizeXMLName(firstNonEmpty(name, g.declaredName(alternative))))
			g.xmlAppendProperties(child, classified.Node)
			return
		case shape.Array:
			g.xmlAppendArray(parent, name, classified.Node, false)
			return
		}
	}
}

// xmlAppendArray renders an array-ranged property. Wrapped serialization
// nests one item element per member inside a wrapper named after the
// property; unwrapped arrays flatten into repeated sibling elements.
func (g *Generator) xmlAppendArray(parent *xmldoc.Element, name string, array amf.Node, wrapped bool) {
	items, ok := g.acc.Node(array, amf.PropItems)
	if !ok {
		parent.CreateElement(sanitizeXMLName(firstNonEmpty(name, defaultRootName)))
		return
	}
	itemName := firstNonEmpty(g.declaredName(items), name)

	target := parent
	childName := firstNonEmpty(name, itemName)
	if wrapped {
		target = parent.CreateElement(sanitizeXMLName(name))
		childName = itemName
	}

	classified := g.classify(items)
	switch classified.Kind {
	case shape.Object:
		child := target.CreateElement(sanitizeXMLName(firstNonEmpty(g.declaredName(classified.Node), childName)))
		g.xmlAppendProperties(child, classified.Node)
	default:
		child := target.CreateElement(sanitizeXMLName(childName))
		child.SetText(g.xmlScalarText(classified.Node))
	}
}

// xmlScalarText is the element text for a scalar range: declared default,
// then example raw text, then a single space so rendered elements stay
// visibly non-empty.
func (g *Generator) xmlScalarText(node amf.Node) string {
	if text, ok := g.scalarShapeText(node); ok && text != "" {
		return text
	}
	return " "
}

// xmlAppendStructured renders a structured-value subtree into an element.
// Array children derive their tag from the parent collection name by
// stripping a trailing "es", then a trailing "s".
func (g *Generator) xmlAppendStructured(parent *xmldoc.Element, node amf.Node) {
	switch {
	case g.acc.HasType(node, amf.TypeDataObject):
		for _, key := range g.acc.NodeKeys(node, amf.NamespaceData) {
			field := sanitizeXMLName(amf.LocalName(g.acc.Expand(key)))
			for _, entry := range g.acc.EnsureArray(node[key]) {
				child := parent.CreateElement(field)
				if nested, ok := nodeFromEntry(entry); ok {
					g.xmlAppendStructured(child, g.acc.Resolve(nested))
				} else if text, ok := scalarEntryText(entry); ok {
					child.SetText(text)
				}
			}
		}
	case g.acc.HasType(node, amf.TypeDataArray):
		itemName := singularize(parent.Name())
		for _, member := range g.acc.List(node, amf.PropDataMember) {
			child := parent.CreateElement(itemName)
			g.xmlAppendStructured(child, member)
		}
	default:
		if text, ok := g.acc.Value(node, amf.PropDataValue); ok {
			parent.SetText(text)
		}
	}
}

// newScalarDoc builds a one-element document around a scalar text value.
func newScalarDoc(rootName, text string) *xmldoc.Document {
	doc := xmldoc.New(rootName)
	doc.Root().SetText(text)
	return doc
}

// serializeXML emits the declaration header followed by the pretty-printed
// document.
func serializeXML(doc *xmldoc.Document) string {
	return xmlHeader + "\n" + formatXML(doc.Serialize())
}

// singularize derives an array item tag from its collection tag.
func singularize(name string) string {
	if trimmed := strings.TrimSuffix(name, "es"); trimmed != name && trimmed != "" {
		return trimmed
	}
	if trimmed := strings.TrimSuffix(name, "s"); trimmed != name && trimmed != "" {
		return trimmed
	}
	return name
}

// sanitizeXMLName removes every character outside [A-Za-z0-9_-].
func sanitizeXMLName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z',
			r >= '0' && r <= '9', r == '_', r == '-':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nodeFromEntry(entry any) (amf.Node, bool) {
	switch typed := entry.(type) {
	case map[string]any:
		return amf.Node(typed), true
	case amf.Node:
		return typed, true
	default:
		return nil, false
	}
}

func scalarEntryText(entry any) (string, bool) {
	switch typed := entry.(type) {
	case string:
		return typed, true
	case bool:
		if typed {
			return "true", true
		}
		return "false", true
	case float64:
		return scalarTextValue(typed), true
	default:
		return "", false
	}
}
