package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockoutline/pkg/render/navgraph"
)

type navgraphOpts struct {
	docFlags
	output   string
	dot      bool
	detailed bool
}

// navgraphCommand renders the navigation order of a block as a graph.
func (c *CLI) navgraphCommand() *cobra.Command {
	var opts navgraphOpts

	cmd := &cobra.Command{
		Use:   "navgraph [file]",
		Short: "Render the keyboard navigation order of a block as a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNavgraph(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "emit Graphviz DOT instead of SVG")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show element ids on nodes")

	return cmd
}

func (c *CLI) runNavgraph(ctx context.Context, w io.Writer, input string, opts navgraphOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	doc, _, err := runner.Load(ctx, opts.options(input))
	if err != nil {
		return err
	}
	res, err := runner.Overlay(ctx, doc, logger)
	if err != nil {
		return err
	}

	dot := navgraph.ToDOT(res, navgraph.Options{Detailed: opts.detailed})
	data := []byte(dot)
	if !opts.dot {
		if data, err = navgraph.RenderSVG(ctx, dot); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Built navigation graph with %d stops", len(navgraph.Stops(res))))

	if opts.output == "" {
		_, err = w.Write(data)
		return err
	}
	if err := writeFile(opts.output, data); err != nil {
		return err
	}
	printFile(w, opts.output)
	return nil
}
