package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/puzzlesearch/pkg/config"
	"github.com/matzehuels/puzzlesearch/pkg/errors"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle"
	"github.com/matzehuels/puzzlesearch/pkg/puzzle/fifteen"
	"github.com/matzehuels/puzzlesearch/pkg/search"
	"github.com/matzehuels/puzzlesearch/pkg/solver"
)

// heartbeatInterval spaces progress logs when no spinner is shown.
const heartbeatInterval = 10 * time.Second

// searchFlags are shared by every command that runs a search.
type searchFlags struct {
	maxExpansions int
	timeout       time.Duration
	noCache       bool
	refresh       bool
	jsonOut       bool
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.maxExpansions, "max-expansions", 0, "stop after this many expansions (default from config, 0 = unlimited)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "stop the search after this long (default from config)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the solution cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached solutions and search again")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "print the result as JSON")
}

// apply fills search limits, letting explicit flags override cfg.
func (f *searchFlags) apply(cmd *cobra.Command, cfg config.Config, opts *solver.Options) {
	opts.MaxExpansions = cfg.Search.MaxExpansions
	if cmd.Flags().Changed("max-expansions") {
		opts.MaxExpansions = f.maxExpansions
	}
	opts.Timeout = cfg.Search.Timeout
	if cmd.Flags().Changed("timeout") {
		opts.Timeout = f.timeout
	}
	opts.CheckEvery = cfg.Search.CheckEvery
	opts.Refresh = f.refresh
}

// fifteenCommand creates the sliding-tile solve command.
func (c *CLI) fifteenCommand() *cobra.Command {
	var (
		flags            searchFlags
		rejectUnsolvable bool
		showStates       bool
	)

	cmd := &cobra.Command{
		Use:   "fifteen [board-file|-]",
		Short: "Solve a 15-puzzle board optimally",
		Long: `Solve a 15-puzzle board with A* and the Manhattan-distance heuristic.

The board is four lines of four whitespace-separated numbers, 0 marking the
blank. It is read from the given file, or from stdin when the argument is "-"
or omitted.

Moves name the direction the blank travels.`,
		Example: `  # Solve a board from a file
  puzzlesearch fifteen board.txt

  # Pipe a board in and print every intermediate state
  printf '1 2 3 4\n5 6 7 8\n9 10 0 11\n13 14 15 12\n' | puzzlesearch fifteen --states`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readBoard(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			opts := solver.Options{
				Puzzle:           puzzle.Fifteen,
				Board:            text,
				RejectUnsolvable: rejectUnsolvable || cfg.Search.RejectUnsolvable,
			}
			flags.apply(cmd, cfg, &opts)

			if b, err := fifteen.Parse(text); err == nil && !b.Solvable() && !opts.RejectUnsolvable && !flags.jsonOut {
				printWarning("This board has the wrong parity and cannot reach the goal")
				printDetail("The search runs until its expansion limit or timeout.")
			}

			res, err := c.solve(cmd, cfg, flags, opts)
			if err != nil || flags.jsonOut {
				return err
			}

			sol := res.Solution
			if !sol.Found {
				printWarning("No solution: every reachable board was explored")
				fmt.Println(statsLine(sol, res.Cached, res.Duration))
				return nil
			}
			printSuccess("Solved in %s moves", StyleNumber.Render(fmt.Sprint(sol.Cost)))
			if len(sol.Moves) > 0 {
				printKeyValue("Moves", strings.Join(sol.Moves, " "))
			}
			printKeyValue("Run", res.RunID)
			fmt.Println(statsLine(sol, res.Cached, res.Duration))
			if showStates {
				for i, state := range sol.States {
					printDetail("step %d", i)
					printBoard(state)
				}
			}
			if sol.Steps() > 0 && len(args) == 1 && args[0] != "-" {
				printNextStep("Step through it", fmt.Sprintf("%s replay %s", appName, args[0]))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&rejectUnsolvable, "reject-unsolvable", false, "fail fast on boards with the wrong parity")
	cmd.Flags().BoolVar(&showStates, "states", false, "print every board on the solution path")

	return cmd
}

// superqueensCommand creates the superqueens placement command.
func (c *CLI) superqueensCommand() *cobra.Command {
	var (
		flags searchFlags
		n     int
		place string
	)

	cmd := &cobra.Command{
		Use:   "superqueens",
		Short: "Place n superqueens with the fewest attacking pairs",
		Long: `Place n superqueens on an n×n board, one per row and column.

A superqueen attacks like a queen and like a knight. The search minimises the
number of attacking pairs; from n = 10 on, conflict-free placements exist.

--place fixes the columns of the first rows, e.g. --place 0,2 puts queens on
(0,0) and (1,2).`,
		Example: `  puzzlesearch superqueens --n 8
  puzzlesearch superqueens --n 10 --place 0,2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			placed, err := parsePlacement(place)
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			opts := solver.Options{Puzzle: puzzle.Superqueens, N: n, Placed: placed}
			flags.apply(cmd, cfg, &opts)

			res, err := c.solve(cmd, cfg, flags, opts)
			if err != nil || flags.jsonOut {
				return err
			}

			sol := res.Solution
			if !sol.Found {
				printWarning("No complete placement extends the fixed rows")
				fmt.Println(statsLine(sol, res.Cached, res.Duration))
				return nil
			}
			if len(sol.States) > 0 {
				printBoard(sol.States[len(sol.States)-1])
			}
			if sol.Conflicts == 0 {
				printSuccess("Placed %d superqueens without conflicts", n)
			} else {
				printSuccess("Placed %d superqueens with %s attacking pairs", n, StyleNumber.Render(fmt.Sprint(sol.Conflicts)))
			}
			cols := make([]string, len(sol.Queens))
			for i, q := range sol.Queens {
				cols[i] = fmt.Sprint(q.Col)
			}
			printKeyValue("Columns", strings.Join(cols, ","))
			printKeyValue("Run", res.RunID)
			fmt.Println(statsLine(sol, res.Cached, res.Duration))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&n, "n", "n", 8, "board size")
	cmd.Flags().StringVar(&place, "place", "", "comma-separated columns for the first rows")

	return cmd
}

// solve runs one search with a spinner (or heartbeat logs when stderr is not
// a terminal). With --json the result, partial or not, goes to stdout.
func (c *CLI) solve(cmd *cobra.Command, cfg config.Config, flags searchFlags, opts solver.Options) (*solver.Result, error) {
	ctx := cmd.Context()
	runner, closeFn, err := c.newRunner(ctx, cfg, flags.noCache)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var sp *Spinner
	if interactive() && !flags.jsonOut {
		sp = newSpinner(ctx, "Searching...")
		sp.Start()
		opts.Progress = func(p search.Progress) {
			sp.SetMessage("Searching... %d expanded, %d in frontier", p.Expanded, p.Frontier)
		}
	} else {
		opts.Progress = heartbeat(c.Logger, heartbeatInterval)
	}

	res, err := runner.Solve(ctx, opts)
	if sp != nil {
		sp.Stop()
	}

	if flags.jsonOut && res != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(res); encErr != nil {
			return nil, encErr
		}
	}
	if err != nil {
		if res != nil && !flags.jsonOut {
			printError("%s", errors.UserMessage(err))
			fmt.Println(statsLine(res.Solution, false, res.Duration))
		}
		return res, err
	}
	return res, nil
}
