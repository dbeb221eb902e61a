package examplegen

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-examplegen/pkg/amf"
	"github.com/goliatone/go-examplegen/pkg/shape"
)

// ComputeExamples generates example view models for a shape node. Sources
// are evaluated in fixed precedence and the first that produces a result
// wins: author examples, stashed raw JSON-Schema fragments, array and
// example-shape recursion, union resolution, and finally type-directed
// synthesis. An absent result (nil) is a normal outcome at every level.
func (g *Generator) ComputeExamples(node amf.Node, media string, opts Options) []ExampleViewModel {
	classified := g.classify(node)
	if classified.IsZero() {
		return nil
	}
	resolved := classified.Node

	if examples := g.authorExamples(resolved); len(examples) > 0 {
		filtered := g.filterByTypeID(examples, opts.TypeID)
		var results []ExampleViewModel
		for _, example := range filtered {
			if vm, ok := g.generateFromExample(example, media, opts); ok {
				results = append(results, vm)
			}
		}
		if len(results) > 0 {
			return results
		}
		// Zero surviving matches: fall through as if no author examples.
	}

	if fragment, ok := g.sourceMapValue(resolved, amf.PropParsedJSONSchema); ok {
		return []ExampleViewModel{g.fromRawSchema(resolved, fragment, media, opts)}
	}

	if opts.RawOnly {
		return nil
	}

	switch classified.Kind {
	case shape.Array:
		return g.arrayExamples(resolved, media, opts)
	case shape.Example:
		if vm, ok := g.generateFromExample(resolved, media, opts); ok {
			return []ExampleViewModel{vm}
		}
		return nil
	case shape.Union:
		if vm, ok := g.resolveUnion(resolved, media, opts); ok {
			return []ExampleViewModel{vm}
		}
		return nil
	}

	if opts.NoAuto {
		return nil
	}

	switch classified.Kind {
	case shape.Scalar:
		return []ExampleViewModel{plainValue(g.synthesizeScalar(resolved, media, opts))}
	case shape.Nil:
		return []ExampleViewModel{plainValue(g.synthesizeNil(resolved, media, opts))}
	case shape.Object:
		if len(g.acc.List(resolved, amf.PropProperty)) == 0 {
			return nil
		}
		return []ExampleViewModel{plainValue(g.synthesizeObject(resolved, media, opts))}
	default:
		return nil
	}
}

// fromRawSchema builds a view model around a stashed raw JSON-Schema
// fragment: shapes with declared properties synthesize a value and keep the
// fragment as the side-channel raw text, bare shapes return it verbatim.
func (g *Generator) fromRawSchema(node amf.Node, fragment, media string, opts Options) ExampleViewModel {
	if len(g.acc.List(node, amf.PropProperty)) > 0 {
		return ExampleViewModel{
			HasRaw: true,
			Raw:    fragment,
			Value:  g.synthesizeObject(node, media, opts),
		}
	}
	return plainValue(fragment)
}

// arrayExamples recurses into the first declared item type, rebinding the
// naming context, and bracket-wraps structured-text results.
func (g *Generator) arrayExamples(node amf.Node, media string, opts Options) []ExampleViewModel {
	items, ok := g.acc.Node(node, amf.PropItems)
	if !ok {
		return nil
	}
	results := g.ComputeExamples(items, media, opts.forArrayItems())
	if len(results) == 0 || isTreeMarkup(media) {
		return results
	}
	for i := range results {
		// Union results keep their value on the alternatives, never on the
		// aggregate.
		if results[i].HasUnion {
			for j := range results[i].Values {
				results[i].Values[j].Value = wrapInBrackets(results[i].Values[j].Value)
			}
			continue
		}
		results[i].Value = wrapInBrackets(results[i].Value)
	}
	return results
}

// wrapInBrackets guarantees a syntactically valid array literal: values not
// already bracket-delimited are enclosed, with an empty inner value
// substituted by a quoted empty string first.
func wrapInBrackets(value string) string {
	if strings.HasPrefix(strings.TrimSpace(value), "[") {
		return value
	}
	if value == "" {
		value = `""`
	}
	return "[" + value + "]"
}

// resolveUnion attempts generation for each alternative in declaration
// order, tagging every surviving result with a disambiguating title.
func (g *Generator) resolveUnion(node amf.Node, media string, opts Options) (ExampleViewModel, bool) {
	var values []ExampleViewModel
	for i, alternative := range g.acc.List(node, amf.PropAnyOf) {
		results := g.ComputeExamples(alternative, media, opts)
		if len(results) == 0 {
			continue
		}
		title := g.declaredName(alternative)
		if title == "" {
			title = fmt.Sprintf("Union #%d", i+1)
		}
		vm := results[0]
		vm.HasTitle = true
		vm.Title = title
		values = append(values, vm)
	}
	if len(values) == 0 {
		return ExampleViewModel{}, false
	}
	return ExampleViewModel{HasUnion: true, Values: values}, true
}

// synthesizeScalar renders a scalar shape's value as presentable text.
func (g *Generator) synthesizeScalar(node amf.Node, media string, opts Options) string {
	value := g.scalarShapeValue(node)
	if isTreeMarkup(media) {
		rootName := sanitizeXMLName(firstNonEmpty(opts.TypeName, g.declaredName(node), defaultRootName))
		doc := newScalarDoc(rootName, scalarTextValue(value))
		return serializeXML(doc)
	}
	return scalarTextValue(value)
}

// synthesizeNil renders a nil shape's null literal for the requested
// representation.
func (g *Generator) synthesizeNil(node amf.Node, media string, opts Options) string {
	if isTreeMarkup(media) {
		rootName := sanitizeXMLName(firstNonEmpty(opts.TypeName, g.declaredName(node), defaultRootName))
		return serializeXML(newScalarDoc(rootName, "null"))
	}
	return "null"
}

// synthesizeObject renders an object shape from its property list for the
// requested representation.
func (g *Generator) synthesizeObject(node amf.Node, media string, opts Options) string {
	if isTreeMarkup(media) {
		return g.xmlFromProperties(node, opts)
	}
	return serializeJSON(g.jsonFromProperties(node, opts))
}
