// Package htmldoc renders generated view models into a static HTML
// documentation snippet. It is a one-shot export, not an interactive
// surface: the output embeds each example in a code block with its title
// and retained author source.
package htmldoc

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-examplegen/pkg/examplegen"
	"github.com/goliatone/go-examplegen/pkg/render"
	rendertemplate "github.com/goliatone/go-examplegen/pkg/render/template"
	gotemplate "github.com/goliatone/go-examplegen/pkg/render/template/gotemplate"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits HTML documentation for generated examples.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("htmldoc renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		policy:    bluemonday.StrictPolicy(),
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, examples []examplegen.ExampleViewModel, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("htmldoc renderer: template renderer is nil")
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("htmldoc renderer: no examples to render")
	}

	title := options.Title
	if title == "" {
		title = "Generated examples"
	}

	result, err := r.templates.RenderTemplate("templates/examples.tmpl", map[string]any{
		"title":    r.sanitize(title),
		"language": languageFor(options.MediaType),
		"entries":  r.entries(examples),
	})
	if err != nil {
		return nil, fmt.Errorf("htmldoc renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// entries flattens view models (including union alternatives) into the flat
// list the template iterates. Author-controlled text passes through a strict
// sanitizer before it reaches the document.
func (r *Renderer) entries(examples []examplegen.ExampleViewModel) []map[string]any {
	var entries []map[string]any
	for _, vm := range examples {
		if vm.HasUnion {
			entries = append(entries, r.entries(vm.Values)...)
			continue
		}
		entry := map[string]any{
			"title": "",
			"value": vm.Value,
			"raw":   "",
		}
		if vm.HasTitle {
			entry["title"] = r.sanitize(vm.Title)
		}
		if vm.HasRaw {
			entry["raw"] = vm.Raw
		}
		entries = append(entries, entry)
	}
	return entries
}

func (r *Renderer) sanitize(text string) string {
	return strings.TrimSpace(r.policy.Sanitize(text))
}

func languageFor(media string) string {
	if strings.Contains(strings.ToLower(media), "xml") {
		return "xml"
	}
	return "json"
}
