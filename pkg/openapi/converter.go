// Package openapi loads OpenAPI documents and converts their schemas into
// the compacted graph representation the example engine consumes. It is the
// front door for callers that do not have an AMF-style toolchain producing
// graph documents.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-examplegen/pkg/amf"
)

// Convert parses an OpenAPI document and builds a graph document whose
// top-level nodes are payload shapes, one per operation body and media
// type. Cyclic schema references become graph references resolved through
// the node table, so conversion always terminates.
func Convert(ctx context.Context, doc Document) (*amf.Document, error) {
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: false}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}

	conv := &converter{ids: map[*openapi3.Schema]string{}}
	var graph []any

	paths := spec.Paths.Map()
	pathKeys := make([]string, 0, len(paths))
	for path := range paths {
		pathKeys = append(pathKeys, path)
	}
	sort.Strings(pathKeys)

	for _, path := range pathKeys {
		item := paths[path]
		if item == nil {
			continue
		}
		operations := item.Operations()
		methods := make([]string, 0, len(operations))
		for method := range operations {
			methods = append(methods, method)
		}
		sort.Strings(methods)

		for _, method := range methods {
			operation := operations[method]
			if operation == nil {
				continue
			}
			opID := operation.OperationID
			if opID == "" {
				opID = method + ":" + path
			}
			graph = append(graph, conv.requestPayloads(opID, operation)...)
			graph = append(graph, conv.responsePayloads(opID, operation)...)
		}
	}

	if len(graph) == 0 {
		return nil, errors.New("openapi: no payload bodies found")
	}

	return amf.NewDocument(map[string]any{
		"@context": map[string]any{
			"shacl":       amf.NamespaceShacl,
			"shapes":      amf.NamespaceShapes,
			"core":        amf.NamespaceCore,
			"apiContract": amf.NamespaceContract,
			"doc":         amf.NamespaceDocument,
			"sourcemaps":  amf.NamespaceSourceMaps,
			"data":        amf.NamespaceData,
			"xsd":         amf.NamespaceXSD,
		},
		"@graph": graph,
	})
}

type converter struct {
	ids     map[*openapi3.Schema]string
	counter int
}

func (c *converter) requestPayloads(opID string, operation *openapi3.Operation) []any {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	return c.payloadsFromContent(opID+"/request", operation.RequestBody.Value.Content)
}

func (c *converter) responsePayloads(opID string, operation *openapi3.Operation) []any {
	if operation.Responses == nil {
		return nil
	}
	var payloads []any
	responses := operation.Responses.Map()
	statuses := make([]string, 0, len(responses))
	for status := range responses {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		ref := responses[status]
		if ref == nil || ref.Value == nil {
			continue
		}
		payloads = append(payloads, c.payloadsFromContent(opID+"/response/"+status, ref.Value.Content)...)
	}
	return payloads
}

func (c *converter) payloadsFromContent(base string, content openapi3.Content) []any {
	if len(content) == 0 {
		return nil
	}
	mediaTypes := make([]string, 0, len(content))
	for media := range content {
		mediaTypes = append(mediaTypes, media)
	}
	sort.Strings(mediaTypes)

	var payloads []any
	for _, media := range mediaTypes {
		mt := content[media]
		if mt == nil || mt.Schema == nil {
			continue
		}
		payloads = append(payloads, map[string]any{
			"@id":                fmt.Sprintf("#/payloads/%s/%s", base, media),
			"@type":              []any{"apiContract:Payload"},
			"core:mediaType":     media,
			"apiContract:schema": c.schemaNode(mt.Schema, ""),
		})
	}
	return payloads
}

// schemaNode converts one schema subtree into a shape node. Already-visited
// schemas yield a bare reference so recursive definitions terminate.
func (c *converter) schemaNode(ref *openapi3.SchemaRef, name string) map[string]any {
	if ref == nil || ref.Value == nil {
		return c.scalarNode(nil, name)
	}
	src := ref.Value

	if id, seen := c.ids[src]; seen {
		return map[string]any{"@id": id}
	}
	c.counter++
	id := "#/shapes/" + strconv.Itoa(c.counter)
	c.ids[src] = id

	if name == "" {
		name = src.Title
	}

	node := map[string]any{"@id": id}
	if name != "" {
		node["shacl:name"] = name
	}

	switch {
	case len(src.OneOf) > 0:
		c.unionNode(node, src.OneOf)
	case len(src.AnyOf) > 0:
		c.unionNode(node, src.AnyOf)
	case schemaType(src) == "array":
		node["@type"] = []any{"shapes:ArrayShape"}
		node["shapes:items"] = c.schemaNode(src.Items, singularName(name))
	case schemaType(src) == "object" || len(src.Properties) > 0:
		node["@type"] = []any{"shacl:NodeShape"}
		node["shacl:property"] = c.propertyNodes(id, src)
	case schemaType(src) == "null":
		node["@type"] = []any{"shapes:NilShape"}
	default:
		c.fillScalarNode(node, src)
	}

	if example := exampleNode(id, src.Example); example != nil {
		node["apiContract:examples"] = []any{example}
	}
	return node
}

func (c *converter) unionNode(node map[string]any, alternatives openapi3.SchemaRefs) {
	node["@type"] = []any{"shapes:UnionShape"}
	var converted []any
	for _, alternative := range alternatives {
		converted = append(converted, c.schemaNode(alternative, ""))
	}
	node["shapes:anyOf"] = converted
}

func (c *converter) propertyNodes(id string, src *openapi3.Schema) []any {
	names := make([]string, 0, len(src.Properties))
	for name := range src.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var properties []any
	for _, name := range names {
		properties = append(properties, map[string]any{
			"@id":          id + "/property/" + name,
			"shacl:name":   name,
			"shapes:range": c.schemaNode(src.Properties[name], name),
		})
	}
	return properties
}

func (c *converter) scalarNode(src *openapi3.Schema, name string) map[string]any {
	c.counter++
	node := map[string]any{"@id": "#/shapes/" + strconv.Itoa(c.counter)}
	if name != "" {
		node["shacl:name"] = name
	}
	c.fillScalarNode(node, src)
	return node
}

func (c *converter) fillScalarNode(node map[string]any, src *openapi3.Schema) {
	node["@type"] = []any{"shapes:ScalarShape"}
	datatype := "xsd:string"
	if src != nil {
		datatype = datatypeFor(schemaType(src), src.Format)
		if src.Default != nil {
			node["shacl:defaultValueStr"] = literalText(src.Default)
		}
	}
	node["shacl:datatype"] = datatype
}

// exampleNode wraps a schema-level example value as an author example node
// carrying the serialized value as raw text.
func exampleNode(id string, example any) map[string]any {
	if example == nil {
		return nil
	}
	encoded, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		return nil
	}
	return map[string]any{
		"@id":     id + "/example/0",
		"@type":   []any{"apiContract:Example"},
		"doc:raw": string(encoded),
	}
}

func schemaType(src *openapi3.Schema) string {
	if src == nil || src.Type == nil {
		return ""
	}
	values := src.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func datatypeFor(schemaType, format string) string {
	switch schemaType {
	case "boolean":
		return "xsd:boolean"
	case "integer":
		if format == "int64" {
			return "xsd:long"
		}
		return "xsd:integer"
	case "number":
		switch format {
		case "float":
			return "xsd:float"
		case "double":
			return "xsd:double"
		default:
			return "shapes:number"
		}
	case "null":
		return "xsd:nil"
	default:
		return "xsd:string"
	}
}

func literalText(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// singularName derives an item name from a collection property name.
func singularName(name string) string {
	if name == "" {
		return ""
	}
	if trimmed := name[:len(name)-1]; name[len(name)-1] == 's' && trimmed != "" {
		return trimmed
	}
	return name
}
