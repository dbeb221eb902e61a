// Package orchestrator coordinates the full pipeline from source document
// to rendered example output. It applies sensible defaults (media-driven
// renderer selection, built-in renderers) while remaining open to
// dependency injection for advanced callers.
package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-examplegen/pkg/amf"
	"github.com/goliatone/go-examplegen/pkg/examplegen"
	"github.com/goliatone/go-examplegen/pkg/openapi"
	"github.com/goliatone/go-examplegen/pkg/render"
	"github.com/goliatone/go-examplegen/pkg/renderers/htmldoc"
	"github.com/goliatone/go-examplegen/pkg/renderers/jsonexample"
	"github.com/goliatone/go-examplegen/pkg/renderers/xmlexample"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader *openapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field. An empty name restores media-driven selection.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// Orchestrator wires loader, graph conversion, generation, and rendering.
type Orchestrator struct {
	loader          *openapi.Loader
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error
}

// New constructs an orchestrator, registering the built-in renderers when
// no registry is supplied.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}

	// Offline by default; callers that want remote documents inject a
	// loader with HTTP enabled.
	if o.loader == nil {
		o.loader = openapi.NewLoader()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(jsonexample.New())
		o.registry.MustRegister(xmlexample.New())
		if html, err := htmldoc.New(); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: configure html renderer: %w", err)
		} else {
			o.registry.MustRegister(html)
		}
	}
	return o
}

// Request describes one generation run. Exactly one of Source or Graph must
// be provided.
type Request struct {
	// Source locates a document to load: an OpenAPI definition or a
	// compacted graph document, detected by content.
	Source openapi.Source
	// Graph supplies an already-parsed graph document, bypassing loading.
	Graph *amf.Document
	// Media selects the payload media type. Empty picks the first declared
	// media type.
	Media string
	// Renderer names the output renderer. Empty selects by media type.
	Renderer string
	// Title labels renderer output formats that carry a heading.
	Title string
	// Options threads generation options through the engine.
	Options examplegen.Options
}

// Generate runs the pipeline and returns the rendered output.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if o.initialiseErr != nil {
		return nil, o.initialiseErr
	}

	graph, err := o.graphFor(ctx, req)
	if err != nil {
		return nil, err
	}

	gen := examplegen.New(amf.NewAccessor(graph))
	payloads := payloadNodes(gen, graph)
	if len(payloads) == 0 {
		return nil, errors.New("orchestrator: document declares no payloads")
	}

	media := req.Media
	if media == "" {
		declared := gen.ListMedia(payloads)
		if len(declared) == 0 {
			return nil, errors.New("orchestrator: payloads declare no media types")
		}
		media = declared[0]
	}

	examples := gen.GeneratePayloadsExamples(payloads, media, req.Options)
	if len(examples) == 0 {
		return nil, fmt.Errorf("orchestrator: no examples produced for media %q", media)
	}

	rendererName := req.Renderer
	if rendererName == "" {
		rendererName = o.defaultRenderer
	}
	if rendererName == "" {
		rendererName = rendererForMedia(media)
	}
	renderer, err := o.registry.Get(rendererName)
	if err != nil {
		return nil, err
	}

	return renderer.Render(ctx, examples, render.Options{
		Title:     req.Title,
		MediaType: media,
	})
}

// ListMedia loads the requested document and returns the media types its
// payloads declare.
func (o *Orchestrator) ListMedia(ctx context.Context, req Request) ([]string, error) {
	graph, err := o.graphFor(ctx, req)
	if err != nil {
		return nil, err
	}
	gen := examplegen.New(amf.NewAccessor(graph))
	return gen.ListMedia(payloadNodes(gen, graph)), nil
}

func (o *Orchestrator) graphFor(ctx context.Context, req Request) (*amf.Document, error) {
	if req.Graph != nil {
		return req.Graph, nil
	}
	if req.Source == nil {
		return nil, errors.New("orchestrator: request requires a source or graph")
	}

	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return nil, err
	}

	raw := doc.Raw()
	if isGraphDocument(raw) {
		graph, err := amf.ParseDocument(raw)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: parse graph document: %w", err)
		}
		return graph, nil
	}
	return openapi.Convert(ctx, doc)
}

// payloadNodes collects the top-level payload shapes of a graph document.
func payloadNodes(gen *examplegen.Generator, graph *amf.Document) []amf.Node {
	acc := gen.Accessor()
	var payloads []amf.Node
	for _, node := range graph.Graph() {
		if acc.HasType(node, amf.TypePayload) {
			payloads = append(payloads, node)
		}
	}
	return payloads
}

// isGraphDocument sniffs whether a payload is a compacted graph document
// rather than an OpenAPI definition.
func isGraphDocument(raw []byte) bool {
	decoded := map[string]any{}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return false
		}
	} else {
		if err := yaml.Unmarshal(raw, &decoded); err != nil {
			return false
		}
	}
	if _, ok := decoded["@graph"]; ok {
		return true
	}
	_, ok := decoded["@context"]
	return ok
}

// rendererForMedia maps a media type onto the built-in renderer that emits
// it natively.
func rendererForMedia(media string) string {
	if examplegen.IsTreeMarkupMedia(media) {
		return "xml"
	}
	return "json"
}
