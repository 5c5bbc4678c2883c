package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockoutline/pkg/render/navgraph"
)

type debugOpts struct {
	docFlags
	json bool
}

// debugCommand prints the debug overlay of a block in navigation order.
func (c *CLI) debugCommand() *cobra.Command {
	var opts debugOpts

	cmd := &cobra.Command{
		Use:   "debug [file]",
		Short: "Print the debug overlay of a block layout",
		Long: `Draw the debug overlay of a measured block layout and list every labelled
stop in keyboard navigation order. With --json the complete overlay
(elements and annotations) is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDebug(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the overlay as JSON")

	return cmd
}

func (c *CLI) runDebug(ctx context.Context, w io.Writer, input string, opts debugOpts) error {
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
	prog.done(fmt.Sprintf("Drew %d overlay elements for %s", len(res.Elements), doc.Block.Type))

	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	stops := navgraph.Stops(res)
	if len(stops) == 0 {
		printWarning(w, "no labelled stops in %s", input)
		return nil
	}
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%s (%s)", doc.Block.Type, doc.Block.ID)))
	for _, s := range stops {
		printOrdered(w, float64(s.Order), s.Label)
	}
	printDetail(w, "%d stops, %d elements, session %s", len(stops), len(res.Elements), res.SessionID)
	return nil
}
