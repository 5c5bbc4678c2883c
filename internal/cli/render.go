package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockoutline/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	docFlags
	output   string   // output file (single format) or base path (multiple)
	formats  []string // svg, json, dot, nav, png, pdf
	debug    bool     // draw the overlay into the svg
	detailed bool     // annotate navigation graph nodes with element ids
	noCache  bool
	refresh  bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a block layout with its highlight to one or more formats",
		Long: `Render a measured block layout and its highlight path.

Formats:
  svg   block body and highlight (plus the debug overlay with --debug)
  json  document, highlight and overlay
  dot   navigation order graph in Graphviz DOT
  nav   navigation order graph rendered to SVG
  png   rasterised svg (requires rsvg-convert)
  pdf   svg as PDF (requires rsvg-convert)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, nav, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "draw the debug overlay into the svg")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show element ids in navigation graphs")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts and re-render")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, w io.Writer, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)
	prog := newProgress(logger)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	po := opts.options(input)
	po.Formats = opts.formats
	po.Debug = opts.debug
	po.Detailed = opts.detailed
	po.Refresh = opts.refresh
	po.Logger = logger

	res, err := runner.Execute(ctx, po)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(res.Artifacts)))

	formats := make([]string, 0, len(res.Artifacts))
	for f := range res.Artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	printSuccess(w, "Rendered %s", input)
	printStats(w, res.Stats.Rows, res.Stats.Commands, res.Stats.Elements, res.Cached)
	for _, f := range formats {
		path := outputPath(opts.output, input, f, len(formats))
		if err := writeFile(path, res.Artifacts[f]); err != nil {
			return err
		}
		logger.Debugf("Wrote %s: %d bytes", path, len(res.Artifacts[f]))
		printFile(w, path)
	}
	return nil
}

// fileExt maps a format to its file extension. nav renders are svg files
// and get a suffix so they never collide with the block svg.
func fileExt(format string) string {
	if format == pipeline.FormatNav {
		return "nav.svg"
	}
	return format
}

// outputPath returns the file for format. A single format honours output
// verbatim; multiple formats share basePath.
func outputPath(output, input, format string, count int) string {
	if count == 1 && output != "" {
		return output
	}
	return basePath(output, input) + "." + fileExt(format)
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .dot, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
