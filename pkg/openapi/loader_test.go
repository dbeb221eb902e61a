package openapi

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestLoaderReadsFromFS(t *testing.T) {
	files := fstest.MapFS{
		"specs/users.json": &fstest.MapFile{Data: []byte(`{"openapi": "3.0.3"}`)},
	}
	loader := NewLoader(WithFileSystem(files))

	doc, err := loader.Load(context.Background(), SourceFromFS("specs/users.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(doc.Raw()) != `{"openapi": "3.0.3"}` {
		t.Fatalf("Raw() = %q", doc.Raw())
	}
	if doc.Location() != "specs/users.json" {
		t.Fatalf("Location() = %q", doc.Location())
	}
}

func TestLoaderRequiresFilesystemForFSSources(t *testing.T) {
	loader := NewLoader()
	if _, err := loader.Load(context.Background(), SourceFromFS("users.json")); err == nil {
		t.Fatal("expected error for fs source without a filesystem")
	}
}

func TestLoaderReadsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte(`{"openapi": "3.0.3"}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	loader := NewLoader()

	doc, err := loader.Load(context.Background(), SourceFromFile(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(doc.Raw()) != `{"openapi": "3.0.3"}` {
		t.Fatalf("Raw() = %q", doc.Raw())
	}
}

func TestLoaderRejectsHTTPWhenDisabled(t *testing.T) {
	loader := NewLoader()
	if _, err := loader.Load(context.Background(), SourceFromURL("http://127.0.0.1:1/spec.json")); err == nil {
		t.Fatal("expected error when http support is disabled")
	}
}

func TestNewDocumentValidation(t *testing.T) {
	if _, err := NewDocument(nil, []byte("x")); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := NewDocument(SourceFromFile("a.json"), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestDocumentRawIsDefensiveCopy(t *testing.T) {
	raw := []byte(`{"openapi": "3.0.3"}`)
	doc := MustNewDocument(SourceFromFile("a.json"), raw)

	copied := doc.Raw()
	copied[0] = 'X'
	if string(doc.Raw()) != `{"openapi": "3.0.3"}` {
		t.Fatal("mutating the returned slice must not affect the document")
	}
}
