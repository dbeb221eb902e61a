package amf

// Vocabulary namespaces for the compacted graph documents this package reads.
// Documents compact these IRIs through their @context; the accessor expands
// both directions so callers always address properties by full IRI.
const (
	NamespaceShacl      = "http://www.w3.org/ns/shacl#"
	NamespaceShapes     = "http://a.ml/vocabularies/shapes#"
	NamespaceCore       = "http://a.ml/vocabularies/core#"
	NamespaceContract   = "http://a.ml/vocabularies/apiContract#"
	NamespaceDocument   = "http://a.ml/vocabularies/document#"
	NamespaceSourceMaps = "http://a.ml/vocabularies/document-source-maps#"
	NamespaceData       = "http://a.ml/vocabularies/data#"
	NamespaceXSD        = "http://www.w3.org/2001/XMLSchema#"
)

// Node type tags.
const (
	TypeScalarShape = NamespaceShapes + "ScalarShape"
	TypeArrayShape  = NamespaceShapes + "ArrayShape"
	TypeUnionShape  = NamespaceShapes + "UnionShape"
	TypeNilShape    = NamespaceShapes + "NilShape"
	TypeNodeShape   = NamespaceShacl + "NodeShape"
	TypeExample     = NamespaceContract + "Example"
	TypePayload     = NamespaceContract + "Payload"
	TypeSourceMap   = NamespaceSourceMaps + "SourceMap"

	TypeDataScalar = NamespaceData + "Scalar"
	TypeDataObject = NamespaceData + "Object"
	TypeDataArray  = NamespaceData + "Array"
)

// Property IRIs consumed by the example engine.
const (
	PropName         = NamespaceShacl + "name"
	PropDisplayName  = NamespaceCore + "name"
	PropMediaType    = NamespaceCore + "mediaType"
	PropSchema       = NamespaceContract + "schema"
	PropExamples     = NamespaceContract + "examples"
	PropProperty     = NamespaceShacl + "property"
	PropDatatype     = NamespaceShacl + "datatype"
	PropDefaultValue = NamespaceShacl + "defaultValueStr"
	PropRange        = NamespaceShapes + "range"
	PropItems        = NamespaceShapes + "items"
	PropAnyOf        = NamespaceShapes + "anyOf"

	PropRaw             = NamespaceDocument + "raw"
	PropStructuredValue = NamespaceDocument + "structuredValue"
	PropSources         = NamespaceSourceMaps + "sources"

	PropTrackedElement   = NamespaceSourceMaps + "tracked-element"
	PropParsedJSONSchema = NamespaceSourceMaps + "parsed-json-schema"
	PropSourceValue      = NamespaceSourceMaps + "value"
	PropSourceElement    = NamespaceSourceMaps + "element"

	PropXMLSerialization = NamespaceShapes + "xmlSerialization"
	PropXMLAttribute     = NamespaceShapes + "xmlAttribute"
	PropXMLWrapped       = NamespaceShapes + "xmlWrapped"
	PropXMLName          = NamespaceShapes + "xmlName"

	PropDataValue  = NamespaceData + "value"
	PropDataMember = NamespaceData + "member"
)

// Scalar datatype IRIs. DatatypeNumber lives in the shapes namespace; the
// remainder come from XML Schema.
const (
	DatatypeString  = NamespaceXSD + "string"
	DatatypeBoolean = NamespaceXSD + "boolean"
	DatatypeInteger = NamespaceXSD + "integer"
	DatatypeLong    = NamespaceXSD + "long"
	DatatypeDouble  = NamespaceXSD + "double"
	DatatypeFloat   = NamespaceXSD + "float"
	DatatypeNil     = NamespaceXSD + "nil"
	DatatypeNumber  = NamespaceShapes + "number"
)

// IDPrefix is the scheme AMF-style documents use for node identities. Tracked
// element lists may reference consumers either bare or with this prefix.
const IDPrefix = "amf://id"
