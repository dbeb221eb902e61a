package amf

// Node is one entry of a compacted graph document: a JSON object whose keys
// are compacted (or full) property IRIs plus the JSON-LD reserved keys @id
// and @type. Values may be scalars, nested nodes, references ({"@id": ...})
// or arrays of any of those.
type Node map[string]any

// ID returns the node identity, or "" when the node is anonymous.
func (n Node) ID() string {
	if n == nil {
		return ""
	}
	id, _ := n["@id"].(string)
	return id
}

// IsRef reports whether the node is a bare reference: an @id and nothing
// else. References are what Resolve chases through the node table.
func (n Node) IsRef() bool {
	if len(n) != 1 {
		return false
	}
	_, ok := n["@id"].(string)
	return ok
}

// asNode converts a decoded JSON value into a Node when it is an object.
func asNode(v any) (Node, bool) {
	switch value := v.(type) {
	case Node:
		return value, value != nil
	case map[string]any:
		return Node(value), value != nil
	default:
		return nil, false
	}
}
