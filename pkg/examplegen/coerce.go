package examplegen

import (
	"strconv"

	"github.com/goliatone/go-examplegen/pkg/amf"
)

// coerceValue maps a literal text value and its declared datatype onto a
// native scalar. Unparseable numerics degrade to 0 and unrecognized
// datatypes pass the text through unchanged.
func coerceValue(text string, datatype string) any {
	switch datatype {
	case amf.DatatypeBoolean:
		return text == "true"
	case amf.DatatypeNil:
		return nil
	case amf.DatatypeInteger, amf.DatatypeLong:
		parsed, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return coerceFloat(text)
		}
		return parsed
	case amf.DatatypeNumber, amf.DatatypeDouble, amf.DatatypeFloat:
		return coerceFloat(text)
	default:
		return text
	}
}

func coerceFloat(text string) any {
	if text == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// zeroValue is the type-appropriate default used when a shape declares no
// default value and carries no example. Generated payloads stay structurally
// valid even when the source document omits the data.
func zeroValue(datatype string) any {
	switch datatype {
	case amf.DatatypeBoolean:
		return false
	case amf.DatatypeNil:
		return nil
	case amf.DatatypeInteger, amf.DatatypeLong, amf.DatatypeNumber,
		amf.DatatypeDouble, amf.DatatypeFloat:
		return 0
	default:
		return ""
	}
}

// scalarTextValue renders a native scalar back to presentable text. It is
// the inverse direction of coerceValue for standalone scalar results.
func scalarTextValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return ""
	}
}
