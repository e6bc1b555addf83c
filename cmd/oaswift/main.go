package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/oaswift/oaswift"
	"github.com/oaswift/oaswift/sink"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate Swift types from an OpenAPI document."`
	Check   CheckCmd   `cmd:"" help:"Validate a document without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Document string `arg:"" help:"Path to the OpenAPI document (YAML or JSON)."`
	Out      string `arg:"" help:"Output directory for generated files."`
	Config   string `help:"Path to an oaswift.yaml configuration file." short:"c"`
	Quiet    bool   `help:"Suppress translation warnings." short:"q"`
}

func (c *GenCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	outDir, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	res, err := oaswift.Generate(ctx, c.Document, oaswift.GenerateOptions{
		Config: cfg,
		Sink:   sink.NewFilesystemSink(outDir),
	})
	if err != nil {
		return err
	}

	if !c.Quiet {
		logDiagnostics(res)
	}
	for _, f := range res.Files {
		fmt.Printf("wrote %s (%d types)\n", filepath.Join(c.Out, f), res.TypesGenerated)
	}
	return nil
}

type CheckCmd struct {
	Document string `arg:"" help:"Path to the OpenAPI document (YAML or JSON)."`
	Config   string `help:"Path to an oaswift.yaml configuration file." short:"c"`
}

func (c *CheckCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	// A full generation run into memory surfaces every translation problem
	// without touching the filesystem.
	res, err := oaswift.Generate(ctx, c.Document, oaswift.GenerateOptions{
		Config: cfg,
		Sink:   sink.NewMemorySink(),
	})
	if err != nil {
		return err
	}

	logDiagnostics(res)
	fmt.Printf("ok: %d types, %d warnings\n", res.TypesGenerated, len(res.Diagnostics))
	return nil
}

func loadConfig(path string) (*oaswift.Config, error) {
	if path == "" {
		return oaswift.DefaultConfig(), nil
	}
	return oaswift.LoadConfig(path)
}

func logDiagnostics(res *oaswift.GenerateResult) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	for _, d := range res.Diagnostics {
		attrs := make([]any, 0, len(d.Context)*2)
		for k, v := range d.Context {
			attrs = append(attrs, slog.String(k, v))
		}
		logger.Warn(d.Message, attrs...)
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("oaswift"),
		kong.Description("Swift type generation from OpenAPI documents."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
