package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockoutline/pkg/svgpath"
)

type highlightOpts struct {
	docFlags
	trace bool
}

// highlightCommand prints the highlight path data of a block.
func (c *CLI) highlightCommand() *cobra.Command {
	var opts highlightOpts

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Print the highlight path of a block layout",
		Long: `Trace the outline of a measured block layout and print the SVG path data
of the highlight. Inline value inputs produce a second path that is printed
after the outer one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHighlight(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "list each instruction with its fragment name")

	return cmd
}

func (c *CLI) runHighlight(ctx context.Context, w io.Writer, input string, opts highlightOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	doc, catalog, err := runner.Load(ctx, opts.options(input))
	if err != nil {
		return err
	}
	out, err := runner.Outline(ctx, doc, catalog)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Traced %d rows", len(doc.Snapshot.Rows)))

	if !opts.trace {
		fmt.Fprintln(w, out.Outer.String())
		if out.Inline.Len() > 0 {
			fmt.Fprintln(w, out.Inline.String())
		}
		return nil
	}

	fmt.Fprintln(w, StyleTitle.Render("outer"))
	printTrace(w, out.Outer)
	if out.Inline.Len() > 0 {
		fmt.Fprintln(w, StyleTitle.Render("inline"))
		printTrace(w, out.Inline)
	}
	return nil
}

func printTrace(w io.Writer, s *svgpath.Stream) {
	for i, in := range s.Instructions() {
		name := "-"
		if in.IsFragment() {
			name = in.Fragment
		}
		fmt.Fprintf(w, "%4d  %-18s %s\n", i, StyleDim.Render(name), in.String())
	}
	t := svgpath.TraceOf(s)
	printDetail(w, "start (%g,%g) end (%g,%g) closed=%t segments=%d", t.Start.X, t.Start.Y, t.End.X, t.End.Y, t.Closed(), t.Segments)
}
