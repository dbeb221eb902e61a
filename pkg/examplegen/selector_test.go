package examplegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-examplegen/pkg/amf"
	"github.com/goliatone/go-examplegen/pkg/testsupport"
)

func newTestGen(t *testing.T, doc *amf.Document) *Generator {
	t.Helper()
	return New(amf.NewAccessor(doc))
}

func mustLookup(t *testing.T, doc *amf.Document, id string) amf.Node {
	t.Helper()
	node, ok := doc.Lookup(id)
	if !ok {
		t.Fatalf("fixture node %s missing", id)
	}
	return node
}

func TestGeneratePayloadsExamplesSynthesizesObject(t *testing.T) {
	doc := testsupport.MustParseGraph(t, testsupport.UserPayloadDocument)
	gen := newTestGen(t, doc)

	results := gen.GeneratePayloadsExamples(doc.Graph(), MediaJSON, Options{})
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	want := ExampleViewModel{Value: "{\n  \"name\": \"\",\n  \"age\": 0\n}"}
	if diff := cmp.Diff(want, results[0]); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratePayloadsExamplesSelectsMatchingMedia(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/payloads/json",
			"@type": ["apiContract:Payload"],
			"core:mediaType": "application/json",
			"apiContract:schema": {
				"@id": "#/shapes/json",
				"@type": ["shapes:ScalarShape"],
				"shacl:datatype": "xsd:string",
				"shacl:defaultValueStr": "from-json"
			}
		}`,
		`{
			"@id": "#/payloads/xml",
			"@type": ["apiContract:Payload"],
			"core:mediaType": "application/xml",
			"apiContract:schema": {
				"@id": "#/shapes/xml",
				"@type": ["shapes:ScalarShape"],
				"shacl:name": "status",
				"shacl:datatype": "xsd:string",
				"shacl:defaultValueStr": "from-xml"
			}
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.GeneratePayloadsExamples(doc.Graph(), MediaJSON, Options{})
	if len(results) != 1 || results[0].Value != "from-json" {
		t.Fatalf("expected the declared json payload, got %#v", results)
	}

	if results := gen.GeneratePayloadsExamples(doc.Graph(), "text/html", Options{}); results != nil {
		t.Fatalf("no media match across several payloads should be absent, got %#v", results)
	}
}

func TestGeneratePayloadsExamplesFallsBackToSolePayload(t *testing.T) {
	doc := testsupport.MustParseGraph(t, testsupport.UserPayloadDocument)
	gen := newTestGen(t, doc)

	results := gen.GeneratePayloadsExamples(doc.Graph(), "text/plain", Options{})
	if len(results) != 1 {
		t.Fatalf("a sole payload should be attempted for any media, got %#v", results)
	}
}

func TestListMedia(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{"@id": "#/p1", "@type": ["apiContract:Payload"], "core:mediaType": "application/json"}`,
		`{"@id": "#/p2", "@type": ["apiContract:Payload"], "core:mediaType": "application/xml"}`,
		`{"@id": "#/not-a-payload", "@type": ["shacl:NodeShape"], "core:mediaType": "text/plain"}`,
	)
	gen := newTestGen(t, doc)

	got := gen.ListMedia(doc.Graph())
	want := []string{"application/json", "application/xml"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ListMedia mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthorExampleWinsOverSynthesis(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/shapes/User",
			"@type": ["shacl:NodeShape"],
			"shacl:name": "User",
			"apiContract:examples": [
				{
					"@id": "#/examples/primary",
					"@type": ["apiContract:Example"],
					"doc:raw": "{\"name\": \"Ada\"}"
				}
			],
			"shacl:property": [
				{
					"@id": "#/shapes/User/property/name",
					"shacl:name": "name",
					"shapes:range": {
						"@id": "#/shapes/User/range/name",
						"@type": ["shapes:ScalarShape"],
						"shacl:datatype": "xsd:string"
					}
				}
			]
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/User"), MediaJSON, Options{})
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0].Value != `{"name": "Ada"}` {
		t.Fatalf("author raw object should be used verbatim, got %q", results[0].Value)
	}
}

func TestTrackedElementZeroMatchFallsThrough(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/payloads/users",
			"@type": ["apiContract:Payload"],
			"core:mediaType": "application/json",
			"apiContract:schema": {
				"@id": "#/shapes/User",
				"@type": ["shacl:NodeShape"],
				"shacl:name": "User",
				"apiContract:examples": [
					{
						"@id": "#/examples/foreign",
						"@type": ["apiContract:Example"],
						"doc:raw": "{\"name\": \"Ada\"}",
						"sourcemaps:sources": {
							"@id": "#/examples/foreign/source-map",
							"sourcemaps:tracked-element": {
								"@id": "#/examples/foreign/source-map/te",
								"sourcemaps:value": "amf://id#/payloads/somethingElse"
							}
						}
					}
				],
				"shacl:property": [
					{
						"@id": "#/shapes/User/property/name",
						"shacl:name": "name",
						"shapes:range": {
							"@id": "#/shapes/User/range/name",
							"@type": ["shapes:ScalarShape"],
							"shacl:datatype": "xsd:string"
						}
					}
				]
			}
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.GeneratePayloadExamples(mustLookup(t, doc, "#/payloads/users"), MediaJSON, Options{})
	if len(results) != 1 {
		t.Fatalf("expected synthesis after the filter removed every example, got %#v", results)
	}
	if results[0].Value != "{\n  \"name\": \"\"\n}" {
		t.Fatalf("expected synthesized object, got %q", results[0].Value)
	}
}

func TestTrackedElementMatchKeepsExample(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/payloads/users",
			"@type": ["apiContract:Payload"],
			"core:mediaType": "application/json",
			"apiContract:schema": {
				"@id": "#/shapes/User",
				"@type": ["shacl:NodeShape"],
				"apiContract:examples": [
					{
						"@id": "#/examples/tracked",
						"@type": ["apiContract:Example"],
						"doc:raw": "{\"name\": \"Ada\"}",
						"sourcemaps:sources": {
							"@id": "#/examples/tracked/source-map",
							"sourcemaps:tracked-element": {
								"@id": "#/examples/tracked/source-map/te",
								"sourcemaps:value": "amf://id#/payloads/users,amf://id#/payloads/other"
							}
						}
					}
				]
			}
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.GeneratePayloadExamples(mustLookup(t, doc, "#/payloads/users"), MediaJSON, Options{})
	if len(results) != 1 || results[0].Value != `{"name": "Ada"}` {
		t.Fatalf("tracked example naming the payload should survive the filter, got %#v", results)
	}
}

func TestParsedJSONSchemaFragmentVerbatim(t *testing.T) {
	fragment := `{"type": "string", "pattern": "^a"}`
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/shapes/Pattern",
			"@type": ["shapes:ScalarShape"],
			"shacl:datatype": "xsd:string",
			"sourcemaps:sources": {
				"@id": "#/shapes/Pattern/source-map",
				"sourcemaps:parsed-json-schema": {
					"@id": "#/shapes/Pattern/source-map/pjs",
					"sourcemaps:value": "{\"type\": \"string\", \"pattern\": \"^a\"}"
				}
			}
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/Pattern"), MediaJSON, Options{})
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	want := ExampleViewModel{Value: fragment}
	if diff := cmp.Diff(want, results[0]); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestParsedJSONSchemaWithPropertiesKeepsFragmentAsRaw(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/shapes/User",
			"@type": ["shacl:NodeShape"],
			"shacl:name": "User",
			"sourcemaps:sources": {
				"@id": "#/shapes/User/source-map",
				"sourcemaps:parsed-json-schema": {
					"@id": "#/shapes/User/source-map/pjs",
					"sourcemaps:value": "{\"type\": \"object\"}"
				}
			},
			"shacl:property": [
				{
					"@id": "#/shapes/User/property/name",
					"shacl:name": "name",
					"shapes:range": {
						"@id": "#/shapes/User/range/name",
						"@type": ["shapes:ScalarShape"],
						"shacl:datatype": "xsd:string"
					}
				}
			]
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/User"), MediaJSON, Options{})
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	got := results[0]
	if !got.HasRaw || got.Raw != `{"type": "object"}` {
		t.Fatalf("fragment should ride the raw side channel, got %#v", got)
	}
	if got.Value != "{\n  \"name\": \"\"\n}" {
		t.Fatalf("value should be synthesized from properties, got %q", got.Value)
	}
}

func TestRawOnlySuppressesSynthesis(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/shapes/plain",
			"@type": ["shapes:ScalarShape"],
			"shacl:datatype": "xsd:string",
			"shacl:defaultValueStr": "fallback"
		}`,
	)
	gen := newTestGen(t, doc)

	if results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/plain"), MediaJSON, Options{RawOnly: true}); results != nil {
		t.Fatalf("raw-only with no author raw should be absent, got %#v", results)
	}
}

func TestRawOnlyReturnsRawVerbatim(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/shapes/count",
			"@type": ["shapes:ScalarShape"],
			"shacl:datatype": "xsd:integer",
			"apiContract:examples": [
				{
					"@id": "#/examples/count",
					"@type": ["apiContract:Example"],
					"doc:raw": "42"
				}
			]
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/count"), MediaJSON, Options{RawOnly: true})
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	want := ExampleViewModel{Value: "42"}
	if diff := cmp.Diff(want, results[0]); diff != "" {
		t.Fatalf("raw-only skips the usability check (-want +got):\n%s", diff)
	}
}

func TestNoAutoSuppressesSynthesis(t *testing.T) {
	doc := testsupport.MustParseGraph(t, testsupport.UserPayloadDocument)
	gen := newTestGen(t, doc)

	results := gen.GeneratePayloadsExamples(doc.Graph(), MediaJSON, Options{NoAuto: true})
	if results != nil {
		t.Fatalf("no-auto should suppress type-directed synthesis, got %#v", results)
	}
}

func TestArrayExamplesWrapItemValue(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/shapes/names",
			"@type": ["shapes:ArrayShape"],
			"shapes:items": {
				"@id": "#/shapes/names/items",
				"@type": ["shapes:ScalarShape"],
				"shacl:datatype": "xsd:string"
			}
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/names"), MediaJSON, Options{})
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0].Value != `[""]` {
		t.Fatalf("empty scalar item should wrap to a valid array literal, got %q", results[0].Value)
	}
}

func TestArrayExamplesKeepBracketedItems(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/shapes/matrix",
			"@type": ["shapes:ArrayShape"],
			"shapes:items": {
				"@id": "#/shapes/matrix/items",
				"@type": ["shapes:ScalarShape"],
				"shacl:datatype": "xsd:string",
				"apiContract:examples": [
					{
						"@id": "#/examples/row",
						"@type": ["apiContract:Example"],
						"doc:raw": "[1, 2]"
					}
				]
			}
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/matrix"), MediaJSON, Options{})
	if len(results) != 1 || results[0].Value != "[1, 2]" {
		t.Fatalf("bracketed item values must not be double wrapped, got %#v", results)
	}
}

func TestArrayOfUnionWrapsAlternativeValues(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/shapes/words",
			"@type": ["shapes:ArrayShape"],
			"shapes:items": {
				"@id": "#/shapes/words/items",
				"@type": ["shapes:UnionShape"],
				"shapes:anyOf": [
					{
						"@id": "#/shapes/words/items/str",
						"@type": ["shapes:ScalarShape"],
						"shacl:datatype": "xsd:string",
						"shacl:defaultValueStr": "hi"
					}
				]
			}
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/words"), MediaJSON, Options{})
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	got := results[0]
	if !got.HasUnion {
		t.Fatalf("union item type should surface as a union result, got %#v", got)
	}
	if got.Value != "" || got.Raw != "" {
		t.Fatalf("union aggregate must not carry a value of its own, got %#v", got)
	}
	if len(got.Values) != 1 || got.Values[0].Value != `["hi"]` {
		t.Fatalf("alternative values should be bracket wrapped, got %#v", got.Values)
	}
}

func TestUnionResolvesAlternatives(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/shapes/choice",
			"@type": ["shapes:UnionShape"],
			"shapes:anyOf": [
				{
					"@id": "#/shapes/choice/empty",
					"@type": ["shacl:NodeShape"]
				},
				{
					"@id": "#/shapes/choice/word",
					"@type": ["shapes:ScalarShape"],
					"shacl:datatype": "xsd:string",
					"shacl:defaultValueStr": "hi"
				}
			]
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/choice"), MediaJSON, Options{})
	if len(results) != 1 {
		t.Fatalf("expected one union result, got %d", len(results))
	}
	got := results[0]
	if !got.HasUnion || len(got.Values) != 1 {
		t.Fatalf("only the producing alternative should survive, got %#v", got)
	}
	member := got.Values[0]
	if member.Value != "hi" || !member.HasTitle || member.Title != "Union #2" {
		t.Fatalf("alternative keeps its declaration-order index, got %#v", member)
	}
}

func TestUnionAlternativeTitleUsesDeclaredName(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{
			"@id": "#/shapes/pet",
			"@type": ["shapes:UnionShape"],
			"shapes:anyOf": [
				{
					"@id": "#/shapes/pet/cat",
					"@type": ["shapes:ScalarShape"],
					"shacl:name": "Cat",
					"shacl:datatype": "xsd:string",
					"shacl:defaultValueStr": "meow"
				}
			]
		}`,
	)
	gen := newTestGen(t, doc)

	results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/pet"), MediaJSON, Options{})
	if len(results) != 1 || len(results[0].Values) != 1 {
		t.Fatalf("expected one union result, got %#v", results)
	}
	if title := results[0].Values[0].Title; title != "Cat" {
		t.Fatalf("declared alternative name should win, got %q", title)
	}
}

func TestNilShapeProducesNullLiteral(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{"@id": "#/shapes/none", "@type": ["shapes:NilShape"]}`,
	)
	gen := newTestGen(t, doc)

	results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/none"), MediaJSON, Options{})
	if len(results) != 1 || results[0].Value != "null" {
		t.Fatalf("nil shape renders the null literal, got %#v", results)
	}
}

func TestNilShapeRendersDocumentForTreeMarkup(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{"@id": "#/shapes/none", "@type": ["shapes:NilShape"], "shacl:name": "nothing"}`,
	)
	gen := newTestGen(t, doc)

	results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/none"), MediaXML, Options{})
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	want := xmlHeader + "\n" + "<nothing>null</nothing>"
	if results[0].Value != want {
		t.Fatalf("nil shape should render a document for markup targets:\ngot:\n%s\nwant:\n%s", results[0].Value, want)
	}
}

func TestObjectWithoutPropertiesIsAbsent(t *testing.T) {
	doc := testsupport.GraphWithNodes(t,
		`{"@id": "#/shapes/empty", "@type": ["shacl:NodeShape"]}`,
	)
	gen := newTestGen(t, doc)

	if results := gen.ComputeExamples(mustLookup(t, doc, "#/shapes/empty"), MediaJSON, Options{}); results != nil {
		t.Fatalf("property-less object should produce nothing, got %#v", results)
	}
}
