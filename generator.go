// Package oaswift generates Swift Codable declarations from the component
// schemas of an OpenAPI document.
//
// The pipeline is linear: parse the document with kin-openapi, model its
// schemas as a tagged-union graph, translate each named component into a
// declaration tree, render the trees as Swift, and hand the result to an
// output sink. Unsupported schemas degrade to diagnostics instead of
// aborting the run; only contradictory input stops generation, and the error
// names the offending type.
package oaswift

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/oaswift/oaswift/decl"
	"github.com/oaswift/oaswift/diag"
	"github.com/oaswift/oaswift/schema"
	"github.com/oaswift/oaswift/sink"
	"github.com/oaswift/oaswift/swift"
	"github.com/oaswift/oaswift/translator"
)

// GenerateOptions configures one generation run.
type GenerateOptions struct {
	// Config holds generation settings; nil means defaults.
	Config *Config

	// Sink receives the rendered files. Required.
	Sink sink.Sink

	// Diagnostics collects warnings; nil allocates a fresh collector.
	Diagnostics *diag.Collector
}

// GenerateResult reports what a generation run produced.
type GenerateResult struct {
	// Files lists the written paths.
	Files []string

	// TypesGenerated counts the top-level declarations emitted under the
	// components namespace.
	TypesGenerated int

	// Diagnostics holds the warnings recorded during translation.
	Diagnostics []diag.Diagnostic
}

// Generate loads an OpenAPI document from a file and generates Swift
// declarations for its component schemas.
func Generate(ctx context.Context, documentPath string, opts GenerateOptions) (*GenerateResult, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = true
	doc, err := loader.LoadFromFile(documentPath)
	if err != nil {
		return nil, fmt.Errorf("loading document %q: %w", documentPath, err)
	}
	return GenerateDocument(ctx, doc, opts)
}

// GenerateData is Generate for an in-memory document.
func GenerateData(ctx context.Context, data []byte, opts GenerateOptions) (*GenerateResult, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	return GenerateDocument(ctx, doc, opts)
}

// GenerateDocument generates Swift declarations from an already-parsed
// document.
func GenerateDocument(ctx context.Context, doc *openapi3.T, opts GenerateOptions) (*GenerateResult, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if opts.Sink == nil {
		return nil, fmt.Errorf("a sink is required")
	}
	diags := opts.Diagnostics
	if diags == nil {
		diags = diag.NewCollector()
	}

	strategy, err := swift.ParseStrategy(cfg.Naming.Strategy)
	if err != nil {
		return nil, err
	}

	document, err := schema.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("reading component schemas: %w", err)
	}

	symbols := translator.DefaultRuntimeSymbols()
	applyRuntimeOverrides(&symbols, cfg.Runtime)

	tr := translator.New(translator.Options{
		Diagnostics: diags,
		Naming: translator.NamingConfig{
			Strategy:  strategy,
			Overrides: cfg.Naming.Overrides,
		},
		Symbols:  &symbols,
		Document: document,
	})

	var members []decl.Decl
	count := 0
	for _, c := range document.Components {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := tr.ComponentTypeName(c.Name)
		decls, err := tr.Translate(name, c.Schema, translator.Overrides{})
		if err != nil {
			return nil, fmt.Errorf("translating component %q: %w", c.Name, err)
		}
		if len(decls) > 0 {
			count++
		}
		members = append(members, decls...)
	}

	// Generated types live under caseless namespace enums so they cannot
	// collide with the host project's own declarations.
	file := []decl.Decl{&decl.Enum{
		Name: decl.NewTypeName("Components"),
		Members: []decl.Decl{&decl.Enum{
			Name:    decl.NewTypeName("Schemas"),
			Members: members,
		}},
	}}

	printer := swift.NewPrinter(printerConfig(cfg))
	rendered, err := printer.File(file)
	if err != nil {
		return nil, fmt.Errorf("rendering declarations: %w", err)
	}

	outFile := cfg.Output.File
	if outFile == "" {
		outFile = DefaultOutputFile
	}
	if err := opts.Sink.WriteFile(ctx, outFile, rendered); err != nil {
		return nil, fmt.Errorf("writing %q: %w", outFile, err)
	}

	return &GenerateResult{
		Files:          []string{outFile},
		TypesGenerated: count,
		Diagnostics:    diags.All(),
	}, nil
}

func printerConfig(cfg *Config) swift.Config {
	out := swift.DefaultConfig()
	out.AccessModifier = cfg.Output.AccessModifier
	out.Frontmatter = cfg.Output.Frontmatter
	if out.Frontmatter == "" {
		out.Frontmatter = DefaultFrontmatter
	}
	if cfg.Output.Comments != nil {
		out.EmitComments = *cfg.Output.Comments
	}
	return out
}

func applyRuntimeOverrides(symbols *translator.RuntimeSymbols, opts RuntimeOptions) {
	if opts.ObjectContainer != "" {
		symbols.ObjectContainer = opts.ObjectContainer
	}
	if opts.ValueContainer != "" {
		symbols.ValueContainer = opts.ValueContainer
	}
	if opts.DateType != "" {
		symbols.DateType = opts.DateType
	}
	if opts.DataType != "" {
		symbols.DataType = opts.DataType
	}
}
