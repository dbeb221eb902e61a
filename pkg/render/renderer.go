package render

import (
	"context"

	"github.com/goliatone/go-examplegen/pkg/examplegen"
)

// Renderer converts generated example view models into a byte
// representation (JSON, XML, HTML, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, examples []examplegen.ExampleViewModel, options Options) ([]byte, error)
}

// Options carries per-request rendering hints.
type Options struct {
	// Title labels the rendered output when the target format has a
	// document-level heading (the HTML renderer uses it).
	Title string
	// MediaType records the media type the examples were generated for.
	MediaType string
}
