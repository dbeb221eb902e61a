// Package examplegen exposes the example generation pipeline from the
// module root: load an API description (OpenAPI or compacted graph),
// generate example payload values, and render them as JSON, XML, or HTML.
package examplegen

import (
	"context"

	"github.com/goliatone/go-examplegen/pkg/amf"
	pkgexamplegen "github.com/goliatone/go-examplegen/pkg/examplegen"
	"github.com/goliatone/go-examplegen/pkg/openapi"
	"github.com/goliatone/go-examplegen/pkg/orchestrator"
	"github.com/goliatone/go-examplegen/pkg/render"
)

// Options configures generation; see the engine package for field
// documentation.
type Options = pkgexamplegen.Options

// ExampleViewModel is the generated example result.
type ExampleViewModel = pkgexamplegen.ExampleViewModel

// Request describes one orchestrated generation run.
type Request = orchestrator.Request

// RenderOptions carries per-request rendering hints.
type RenderOptions = render.Options

// Media type helpers re-exported for callers.
const (
	MediaJSON = pkgexamplegen.MediaJSON
	MediaXML  = pkgexamplegen.MediaXML
)

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for one-import consumers.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the source document, generates examples for the requested
// media type, and renders them using the named renderer (media-driven when
// empty). It is the simplest entry point.
func Generate(ctx context.Context, source openapi.Source, media, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Media:    media,
		Renderer: rendererName,
	})
}

// GenerateFromGraph renders examples for an already-parsed graph document,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateFromGraph(ctx context.Context, graph *amf.Document, media, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Graph:    graph,
		Media:    media,
		Renderer: rendererName,
	})
}

// SourceFromFile re-exports the file source constructor.
func SourceFromFile(path string) openapi.Source {
	return openapi.SourceFromFile(path)
}

// SourceFromURL re-exports the URL source constructor.
func SourceFromURL(raw string) openapi.Source {
	return openapi.SourceFromURL(raw)
}
