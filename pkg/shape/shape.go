// Package shape classifies graph nodes into the closed set of shape kinds
// the example engine dispatches on. Classification happens once per node at
// the accessor boundary; downstream code switches on Kind instead of
// re-testing type membership.
package shape

import (
	"github.com/goliatone/go-examplegen/pkg/amf"
)

// Kind enumerates the shape variants the engine understands.
type Kind uint8

const (
	Unknown Kind = iota
	Scalar
	Object
	Array
	Union
	Nil
	Example
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Object:
		return "object"
	case Array:
		return "array"
	case Union:
		return "union"
	case Nil:
		return "nil"
	case Example:
		return "example"
	default:
		return "unknown"
	}
}

// Shape pairs a resolved graph node with its classification.
type Shape struct {
	Kind Kind
	Node amf.Node
}

// IsZero reports whether the shape carries no node.
func (s Shape) IsZero() bool {
	return s.Node == nil
}

// Classify resolves a node and tags it with its shape kind. Nodes carrying
// several type tags classify by fixed precedence: example and array tags win
// over union, nil, scalar, and finally plain object shapes.
func Classify(acc *amf.Accessor, node amf.Node) Shape {
	if node == nil {
		return Shape{}
	}
	resolved := acc.Resolve(node)

	switch {
	case acc.HasType(resolved, amf.TypeExample):
		return Shape{Kind: Example, Node: resolved}
	case acc.HasType(resolved, amf.TypeArrayShape):
		return Shape{Kind: Array, Node: resolved}
	case acc.HasType(resolved, amf.TypeUnionShape):
		return Shape{Kind: Union, Node: resolved}
	case acc.HasType(resolved, amf.TypeNilShape):
		return Shape{Kind: Nil, Node: resolved}
	case acc.HasType(resolved, amf.TypeScalarShape):
		return Shape{Kind: Scalar, Node: resolved}
	case acc.HasType(resolved, amf.TypeNodeShape):
		return Shape{Kind: Object, Node: resolved}
	default:
		return Shape{Kind: Unknown, Node: resolved}
	}
}
