package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/puzzlesearch/pkg/config"
	"github.com/matzehuels/puzzlesearch/pkg/store"
)

// runsCommand creates the run history command.
func (c *CLI) runsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect recorded solver runs",
		Long: `Inspect recorded solver runs.

Runs outlive a single invocation only with the mongo store backend:

  [store]
  backend = "mongo"`,
	}

	cmd.AddCommand(c.runsListCommand())
	cmd.AddCommand(c.runsShowCommand())

	return cmd
}

// openStore loads the config and connects the run store.
func (c *CLI) openStore(cmd *cobra.Command) (store.Store, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Store.Backend != config.StoreMongo {
		printWarning("The %s store keeps no history between runs", cfg.Store.Backend)
		printDetail("Set store.backend = \"mongo\" in the config file to record runs.")
	}
	return newStore(cmd.Context(), cfg.Store)
}

func (c *CLI) runsListCommand() *cobra.Command {
	var (
		puzzleName string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			runs, err := st.List(cmd.Context(), store.ListOptions{Puzzle: puzzleName, Limit: limit})
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				printInfo("No runs recorded")
				return nil
			}
			fmt.Println(renderRunsTable(runs, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&puzzleName, "puzzle", "p", "", "only show runs of this puzzle")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum number of runs")

	return cmd
}

func (c *CLI) runsShowCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())

			run, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(run)
			}

			fmt.Println(StyleTitle.Render("Run " + run.ID))
			printKeyValue("Puzzle", run.Puzzle)
			printKeyValue("Input", run.Input)
			printKeyValue("Status", string(run.Status))
			if run.Error != "" {
				printKeyValue("Error", run.Error)
			}
			printKeyValue("Cost", fmt.Sprint(run.Cost))
			printKeyValue("Created", run.CreatedAt.Local().Format(time.DateTime))
			fmt.Println(statsLine(run.Solution, run.Cached, run.Duration))
			if len(run.States) > 0 {
				printBoard(run.States[len(run.States)-1])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the run as JSON")

	return cmd
}

// renderRunsTable draws runs as a rounded table. now anchors the relative
// ages so output is reproducible in tests.
func renderRunsTable(runs []*store.Run, now time.Time) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(runs))
	for i, r := range runs {
		cost := "-"
		if r.Found {
			cost = fmt.Sprint(r.Cost)
		}
		rows[i] = []string{
			r.ID,
			r.Puzzle,
			string(r.Status),
			cost,
			fmt.Sprint(r.Expanded),
			formatAge(now.Sub(r.CreatedAt)),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Run", "Puzzle", "Status", "Cost", "Expanded", "Age").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 2 {
				switch runs[row].Status {
				case store.StatusSolved:
					return base.Foreground(colorGreen)
				case store.StatusFailed:
					return base.Foreground(colorRed)
				default:
					return base.Foreground(colorYellow)
				}
			}
			if col == 0 || col == 5 {
				return base.Foreground(colorDim)
			}
			return base
		})

	return t.Render()
}

// formatAge renders a duration the way people say it: "12s", "5m", "3h", "2d".
func formatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
