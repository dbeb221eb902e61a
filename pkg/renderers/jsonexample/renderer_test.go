package jsonexample

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-examplegen/pkg/examplegen"
	"github.com/goliatone/go-examplegen/pkg/render"
)

func TestRenderSinglePlainValuePassesThrough(t *testing.T) {
	renderer := New()
	value := "{\n  \"name\": \"\"\n}"

	out, err := renderer.Render(context.Background(), []examplegen.ExampleViewModel{
		{Value: value},
	}, render.Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(out) != value {
		t.Fatalf("Render() = %q, want %q", out, value)
	}
}

func TestRenderMultipleSerializesViewModels(t *testing.T) {
	renderer := New()

	out, err := renderer.Render(context.Background(), []examplegen.ExampleViewModel{
		{HasTitle: true, Title: "first", Value: "{}"},
		{Value: "[]"},
	}, render.Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	text := string(out)
	if !strings.Contains(text, `"title": "first"`) || !strings.Contains(text, `"value": "[]"`) {
		t.Fatalf("serialized list should keep every view model, got:\n%s", text)
	}
}

func TestRenderRawSideChannelSerializes(t *testing.T) {
	renderer := New()

	out, err := renderer.Render(context.Background(), []examplegen.ExampleViewModel{
		{HasRaw: true, Raw: "42", Value: "42"},
	}, render.Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(out), `"hasRaw": true`) {
		t.Fatalf("raw side channel must not be dropped, got:\n%s", out)
	}
}

func TestRenderEmptyErrors(t *testing.T) {
	renderer := New()
	if _, err := renderer.Render(context.Background(), nil, render.Options{}); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestRendererIdentity(t *testing.T) {
	renderer := New()
	if renderer.Name() != "json" {
		t.Fatalf("Name() = %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "application/json") {
		t.Fatalf("ContentType() = %q", renderer.ContentType())
	}
}
