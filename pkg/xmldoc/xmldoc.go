// Package xmldoc is a minimal tree-markup builder: elements, attributes,
// text, and deterministic serialization. It exists so example rendering has
// no dependency on a live document-object model and can run headless.
package xmldoc

import "strings"

// Document owns a single root element.
type Document struct {
	root *Element
}

// New creates a document with a root element of the given name.
func New(rootName string) *Document {
	return &Document{root: &Element{name: rootName}}
}

// Root returns the document root element.
func (d *Document) Root() *Element {
	return d.root
}

// Serialize renders the tree compactly, with no inter-element whitespace.
func (d *Document) Serialize() string {
	if d == nil || d.root == nil {
		return ""
	}
	var sb strings.Builder
	d.root.write(&sb)
	return sb.String()
}

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the tree. Attributes keep set order; children keep
// append order.
type Element struct {
	name     string
	attrs    []Attr
	text     string
	hasText  bool
	children []*Element
}

// Name returns the element tag name.
func (e *Element) Name() string {
	return e.name
}

// CreateElement appends a new child element and returns it.
func (e *Element) CreateElement(name string) *Element {
	child := &Element{name: name}
	e.children = append(e.children, child)
	return child
}

// AppendChild attaches an existing element as the last child.
func (e *Element) AppendChild(child *Element) {
	if child == nil {
		return
	}
	e.children = append(e.children, child)
}

// SetAttribute sets an attribute, replacing an earlier value for the same
// name while keeping its original position.
func (e *Element) SetAttribute(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// SetText sets the element text content. Setting text marks the element
// non-empty even when the text is blank.
func (e *Element) SetText(text string) {
	e.text = text
	e.hasText = true
}

// Text returns the element text content.
func (e *Element) Text() string {
	return e.text
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func (e *Element) write(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.name)
	for _, attr := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		sb.WriteString(attrEscaper.Replace(attr.Value))
		sb.WriteByte('"')
	}
	if len(e.children) == 0 && !e.hasText {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	if e.hasText {
		sb.WriteString(textEscaper.Replace(e.text))
	}
	for _, child := range e.children {
		child.write(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.name)
	sb.WriteByte('>')
}
