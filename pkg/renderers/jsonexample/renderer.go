// Package jsonexample renders generated view models as a JSON document.
package jsonexample

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-examplegen/pkg/examplegen"
	"github.com/goliatone/go-examplegen/pkg/render"
)

// Renderer emits example values as JSON. A single plain example passes its
// value through untouched; anything richer (multiple examples, unions, raw
// side channels) serializes the full view model list so no information is
// dropped.
type Renderer struct{}

// New constructs the JSON renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, examples []examplegen.ExampleViewModel, _ render.Options) ([]byte, error) {
	if len(examples) == 0 {
		return nil, errors.New("jsonexample: no examples to render")
	}
	if len(examples) == 1 {
		vm := examples[0]
		if !vm.HasUnion && !vm.HasRaw && !vm.HasTitle {
			return []byte(vm.Value), nil
		}
	}
	encoded, err := json.MarshalIndent(examples, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("jsonexample: encode examples: %w", err)
	}
	return encoded, nil
}
