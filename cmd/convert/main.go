// Command convert renders a local Word document to HTML the same way the
// service does, writing extracted images under an output directory.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/JaimeStill/ministry-cms/internal/documents"
	"github.com/JaimeStill/ministry-cms/internal/images"
	"github.com/JaimeStill/ministry-cms/pkg/convert"
	"github.com/JaimeStill/ministry-cms/pkg/logging"
	"github.com/JaimeStill/ministry-cms/pkg/storage"
)

// CLI is the command line of the converter.
type CLI struct {
	File      string `arg:"" type:"existingfile" help:"Word document (.docx) to convert."`
	KeyPrefix string `name:"key-prefix" short:"k" default:"article-documents" enum:"article-documents,category-documents,devotional-documents" help:"Image key prefix (${enum})."`
	Out       string `name:"out" short:"o" default:".data/blobs" type:"path" help:"Directory extracted images are written to."`
	PublicURL string `name:"public-url" help:"Base URL of image links. Defaults to a file:// URL of --out."`
	Pretty    bool   `name:"pretty" short:"p" help:"Indent the JSON result."`
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level for stderr output."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("convert"),
		kong.Description("Convert a Word document to HTML with Bible reference annotations."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx.FatalIfErrorf(cli.Run(ctx, os.Stdout, os.Stderr))
}

// Run converts File and writes the JSON result to stdout. Logs go to stderr.
func (c *CLI) Run(ctx context.Context, stdout, stderr io.Writer) error {
	logger := logging.NewWriter(&logging.Config{
		Level:  logging.Level(c.LogLevel),
		Format: logging.FormatText,
	}, stderr).With("system", "convert-cli")

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	publicURL, err := c.publicURL()
	if err != nil {
		return err
	}

	storeCfg := &storage.Config{BasePath: c.Out, PublicURL: publicURL}
	if err := storeCfg.Finalize(nil); err != nil {
		return fmt.Errorf("storage config: %w", err)
	}
	store, err := storage.New(storeCfg, logger)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Out, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	docs := documents.New(convert.New(logger), images.New(store, logger), logger)

	result, err := docs.Convert(ctx, data, c.KeyPrefix)
	if err != nil {
		return fmt.Errorf("convert %s: %w", c.File, err)
	}

	logger.Info("document converted",
		"file", c.File,
		"images", len(result.ListOfImages),
		"passages", len(result.BiblePassages),
	)

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func (c *CLI) publicURL() (string, error) {
	if c.PublicURL != "" {
		return c.PublicURL, nil
	}
	abs, err := filepath.Abs(c.Out)
	if err != nil {
		return "", fmt.Errorf("resolve output directory: %w", err)
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}
