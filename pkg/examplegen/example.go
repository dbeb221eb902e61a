package examplegen

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-examplegen/pkg/amf"
)

// generateFromExample turns one author example node into a view model. Raw
// text is used verbatim only when it is directly presentable for the target
// representation: a JSON target requires it to parse as an object or array
// (a bare scalar is rejected), a tree-markup target requires it to start
// with '<'. Rejected raw text is retained as a side-channel Raw value while
// the presentable Value comes from the structured-value subtree.
func (g *Generator) generateFromExample(example amf.Node, media string, opts Options) (ExampleViewModel, bool) {
	raw, hasRaw := g.acc.Value(example, amf.PropRaw)
	title := g.declaredName(example)
	if strings.HasPrefix(title, generatedTitlePrefix) {
		title = ""
	}

	if opts.RawOnly {
		if !hasRaw {
			return ExampleViewModel{}, false
		}
		return plainValue(raw).withTitle(title), true
	}

	retained := ""
	if hasRaw {
		if rawUsable(raw, media) {
			return plainValue(raw).withTitle(title), true
		}
		retained = raw
	}

	vm := ExampleViewModel{}
	if sv, ok := g.acc.Node(example, amf.PropStructuredValue); ok {
		if isTreeMarkup(media) {
			vm.Value = g.xmlFromStructuredValue(sv, opts)
		} else {
			vm.Value = serializeJSON(g.jsonFromStructuredValue(sv))
		}
	} else {
		vm.Value = retained
	}
	if retained != "" {
		vm.HasRaw = true
		vm.Raw = retained
	}
	return vm.withTitle(title), true
}

// rawUsable reports whether author raw text can stand as the final value
// for the given representation.
func rawUsable(raw, media string) bool {
	if isTreeMarkup(media) {
		return strings.HasPrefix(strings.TrimSpace(raw), "<")
	}
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return false
	}
	switch decoded.(type) {
	case map[string]any, []any:
		return true
	default:
		// Parsing succeeded but yielded a bare scalar; not usable as a
		// final structured-text value.
		return false
	}
}
