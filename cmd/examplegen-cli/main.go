package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-examplegen/pkg/examplegen"
	"github.com/goliatone/go-examplegen/pkg/openapi"
	"github.com/goliatone/go-examplegen/pkg/orchestrator"
)

func main() {
	source := flag.String("source", "", "API document path or URL (OpenAPI or compacted graph)")
	media := flag.String("media", "", "payload media type (prompts when several are declared)")
	renderer := flag.String("renderer", "", "output renderer: json, xml, or html (default by media)")
	output := flag.String("output", "", "output file (stdout if empty)")
	title := flag.String("title", "", "document title for the html renderer")
	rawOnly := flag.Bool("raw-only", false, "restrict to literal author-supplied examples")
	noAuto := flag.Bool("no-auto", false, "suppress synthesis when no stored example exists")
	flag.Parse()

	if *source == "" {
		log.Fatal("missing -source")
	}

	ctx := context.Background()
	src := parseSource(*source)
	gen := orchestrator.New(orchestrator.WithLoader(
		openapi.NewLoader(openapi.WithHTTPFallback(30 * time.Second)),
	))

	req := orchestrator.Request{
		Source:   src,
		Media:    *media,
		Renderer: *renderer,
		Title:    *title,
		Options: examplegen.Options{
			RawOnly: *rawOnly,
			NoAuto:  *noAuto,
		},
	}

	if req.Media == "" {
		selected, err := selectMedia(ctx, gen, req)
		if err != nil {
			log.Fatalf("Failed to select media type: %v", err)
		}
		req.Media = selected
	}

	rendered, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate examples: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Examples written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

// selectMedia resolves the media type to generate: the sole declared type
// is used directly, several trigger an interactive prompt.
func selectMedia(ctx context.Context, gen *orchestrator.Orchestrator, req orchestrator.Request) (string, error) {
	declared, err := gen.ListMedia(ctx, req)
	if err != nil {
		return "", err
	}
	switch len(declared) {
	case 0:
		return "", fmt.Errorf("document declares no media types")
	case 1:
		return declared[0], nil
	}

	var selected string
	prompt := &survey.Select{
		Message: "Payload media type:",
		Options: declared,
		Default: declared[0],
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

func parseSource(raw string) openapi.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return openapi.SourceFromURL(path)
	}
	return openapi.SourceFromFile(path)
}
