// Package xmlexample renders generated view models as tree markup.
package xmlexample

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-examplegen/pkg/examplegen"
	"github.com/goliatone/go-examplegen/pkg/render"
)

// Renderer emits example values as XML text. Several examples (or union
// alternatives) concatenate as separate documents separated by a blank
// line, each preceded by a comment naming its title when one exists.
type Renderer struct{}

// New constructs the XML renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "xml"
}

func (r *Renderer) ContentType() string {
	return "application/xml; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, examples []examplegen.ExampleViewModel, _ render.Options) ([]byte, error) {
	if len(examples) == 0 {
		return nil, errors.New("xmlexample: no examples to render")
	}
	var parts []string
	appendExamples(&parts, examples)
	if len(parts) == 0 {
		return nil, errors.New("xmlexample: examples carry no values")
	}
	return []byte(strings.Join(parts, "\n\n")), nil
}

func appendExamples(parts *[]string, examples []examplegen.ExampleViewModel) {
	for _, vm := range examples {
		if vm.HasUnion {
			appendExamples(parts, vm.Values)
			continue
		}
		if vm.Value == "" {
			continue
		}
		if vm.HasTitle {
			*parts = append(*parts, "<!-- "+escapeComment(vm.Title)+" -->\n"+vm.Value)
			continue
		}
		*parts = append(*parts, vm.Value)
	}
}

func escapeComment(text string) string {
	return strings.ReplaceAll(text, "--", "//")
}
