package render

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-examplegen/pkg/examplegen"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, []examplegen.ExampleViewModel, Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "json"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	renderer, err := registry.Get("json")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if renderer.Name() != "json" {
		t.Fatalf("Get() returned %q, want %q", renderer.Name(), "json")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "json"})

	if err := registry.Register(stubRenderer{name: "json"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistryRejectsMissingName(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for empty renderer name")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
}

func TestRegistryListSortsNames(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "xml"})
	registry.MustRegister(stubRenderer{name: "html"})
	registry.MustRegister(stubRenderer{name: "json"})

	want := []string{"html", "json", "xml"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("html") {
		t.Fatal("Has(html) = false, want true")
	}
	if registry.Has("yaml") {
		t.Fatal("Has(yaml) = true, want false")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}

	registry.MustRegister(stubRenderer{name: "json"})
	_, err := registry.Get("missing")
	if err == nil || !strings.Contains(err.Error(), "json") {
		t.Fatalf("error should name the registered renderers, got %v", err)
	}
}
