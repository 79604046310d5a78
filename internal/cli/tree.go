package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/puzzlesearch/pkg/solver"
)

// treeCommand creates the search-tree export command.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		problem       problemFlags
		format        string
		output        string
		maxNodes      int
		maxExpansions int
		detailed      bool
		noCache       bool
	)

	cmd := &cobra.Command{
		Use:   "tree [board-file|-]",
		Short: "Export the explored search tree as DOT or SVG",
		Long: `Run a search and export every node it generated as a graph.

The solution path is highlighted. Nodes that were generated but never expanded
are drawn dashed. Searches are capped (default 500 expansions) so the picture
stays readable; a capped search still exports what it reached.`,
		Example: `  puzzlesearch tree board.txt -o tree.svg
  puzzlesearch tree -p superqueens -n 5 --format dot --detailed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := problem.options(cmd, args)
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts.MaxExpansions = maxExpansions
			opts.CheckEvery = cfg.Search.CheckEvery

			runner, closeFn, err := c.newRunner(cmd.Context(), cfg, noCache)
			if err != nil {
				return err
			}
			defer closeFn()

			prog := newProgress(c.Logger)
			res, err := runner.Tree(cmd.Context(), opts, solver.TreeOptions{
				Format:   format,
				MaxNodes: maxNodes,
				Detailed: detailed,
			})
			if err != nil {
				return err
			}
			if !res.Complete {
				c.Logger.Warn("search stopped at the expansion cap; the tree is partial", "max_expansions", opts.MaxExpansions)
			}

			if output == "" || output == "-" {
				_, err := os.Stdout.Write(res.Data)
				return err
			}
			if err := os.WriteFile(output, res.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			prog.done(fmt.Sprintf("Rendered %s tree", format))
			printFile(output)
			return nil
		},
	}

	problem.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", solver.FormatSVG, "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "draw at most this many nodes plus the solution path (0 = all)")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", solver.DefaultTreeExpansions, "stop the search after this many expansions")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with g, h and f")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}
