package examplegen

import "strings"

// Media type constants callers commonly pass. Any media string containing
// "xml" selects the tree-markup representation; everything else renders the
// structured-text (JSON) representation.
const (
	MediaJSON = "application/json"
	MediaXML  = "application/xml"
)

// Options configures one generation call. The value is immutable from the
// caller's perspective: nested calls that need a different naming context
// (array item generation rebinds ParentName from TypeName) derive their own
// copy instead of mutating the caller's value.
type Options struct {
	// RawOnly restricts generation to literal author-supplied text. No
	// synthesis happens and shapes without raw examples produce nothing.
	RawOnly bool
	// NoAuto suppresses synthesis from type structure when no stored
	// example exists anywhere in the shape subgraph.
	NoAuto bool
	// TypeName names the type being rendered; the tree-markup builder uses
	// it for the root element.
	TypeName string
	// ParentName carries the enclosing element name through array item
	// generation.
	ParentName string
	// TypeID identifies the consuming payload. Author examples carrying
	// tracked-element linkage only apply when this identity appears in the
	// linkage list.
	TypeID string
}

// forArrayItems derives the option set used when recursing into an array's
// item shape: the current type name becomes the parent naming context.
func (o Options) forArrayItems() Options {
	derived := o
	derived.ParentName = o.TypeName
	return derived
}

// IsTreeMarkupMedia reports whether a media type selects the tree-markup
// (XML) representation.
func IsTreeMarkupMedia(media string) bool {
	return isTreeMarkup(media)
}

func isTreeMarkup(media string) bool {
	return strings.Contains(strings.ToLower(media), "xml")
}
