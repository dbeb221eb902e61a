// Package testsupport holds shared fixtures for engine and renderer tests.
package testsupport

import (
	"testing"

	"github.com/goliatone/go-examplegen/pkg/amf"
)

// Context is the @context block shared by graph fixtures.
const Context = `{
    "shacl": "http://www.w3.org/ns/shacl#",
    "shapes": "http://a.ml/vocabularies/shapes#",
    "core": "http://a.ml/vocabularies/core#",
    "apiContract": "http://a.ml/vocabularies/apiContract#",
    "doc": "http://a.ml/vocabularies/document#",
    "sourcemaps": "http://a.ml/vocabularies/document-source-maps#",
    "data": "http://a.ml/vocabularies/data#",
    "xsd": "http://www.w3.org/2001/XMLSchema#"
  }`

// MustParseGraph parses a compacted graph document, failing the test on
// error.
func MustParseGraph(t *testing.T, src string) *amf.Document {
	t.Helper()

	doc, err := amf.ParseDocument([]byte(src))
	if err != nil {
		t.Fatalf("parse graph document: %v", err)
	}
	return doc
}

// GraphWithNodes wraps graph node JSON fragments into a full document with
// the shared context.
func GraphWithNodes(t *testing.T, nodes ...string) *amf.Document {
	t.Helper()

	src := `{"@context": ` + Context + `, "@graph": [`
	for i, node := range nodes {
		if i > 0 {
			src += ","
		}
		src += node
	}
	src += `]}`
	return MustParseGraph(t, src)
}

// UserPayloadDocument is a payload whose schema declares {name: string,
// age: integer} with no stored examples, used across engine tests.
const UserPayloadDocument = `{
  "@context": {
    "shacl": "http://www.w3.org/ns/shacl#",
    "shapes": "http://a.ml/vocabularies/shapes#",
    "core": "http://a.ml/vocabularies/core#",
    "apiContract": "http://a.ml/vocabularies/apiContract#",
    "xsd": "http://www.w3.org/2001/XMLSchema#"
  },
  "@graph": [
    {
      "@id": "#/payloads/createUser/request/application/json",
      "@type": ["apiContract:Payload"],
      "core:mediaType": "application/json",
      "apiContract:schema": {
        "@id": "#/shapes/User",
        "@type": ["shacl:NodeShape"],
        "shacl:name": "User",
        "shacl:property": [
          {
            "@id": "#/shapes/User/property/name",
            "shacl:name": "name",
            "shapes:range": {
              "@id": "#/shapes/User/range/name",
              "@type": ["shapes:ScalarShape"],
              "shacl:datatype": "xsd:string"
            }
          },
          {
            "@id": "#/shapes/User/property/age",
            "shacl:name": "age",
            "shapes:range": {
              "@id": "#/shapes/User/range/age",
              "@type": ["shapes:ScalarShape"],
              "shacl:datatype": "xsd:integer"
            }
          }
        ]
      }
    }
  ]
}`
