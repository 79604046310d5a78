package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/puzzlesearch/pkg/puzzle"
)

var (
	replayMoveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	replayHelpStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ReplayModel - Step through a solution
// =============================================================================

type replayTickMsg time.Time

// ReplayModel is the bubbletea model for stepping through solution states.
type ReplayModel struct {
	Title    string
	States   []string
	Moves    []string // Moves[i] leads from States[i] to States[i+1]; may be empty
	Step     int
	Playing  bool
	Interval time.Duration
}

// NewReplayModel creates a replay of sol starting at the root state.
func NewReplayModel(title string, sol puzzle.Solution, interval time.Duration) ReplayModel {
	return ReplayModel{
		Title:    title,
		States:   sol.States,
		Moves:    sol.Moves,
		Interval: interval,
	}
}

func (m ReplayModel) tick() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg { return replayTickMsg(t) })
}

func (m ReplayModel) Init() tea.Cmd {
	if m.Playing {
		return m.tick()
	}
	return nil
}

func (m ReplayModel) last() int { return max(len(m.States)-1, 0) }

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n":
			m.Playing = false
			m.Step = min(m.Step+1, m.last())
		case "left", "h", "p":
			m.Playing = false
			m.Step = max(m.Step-1, 0)
		case "home", "g":
			m.Playing = false
			m.Step = 0
		case "end", "G":
			m.Playing = false
			m.Step = m.last()
		case " ":
			m.Playing = !m.Playing
			if m.Playing {
				if m.Step == m.last() {
					m.Step = 0
				}
				return m, m.tick()
			}
		}
	case replayTickMsg:
		if !m.Playing {
			return m, nil
		}
		if m.Step >= m.last() {
			m.Playing = false
			return m, nil
		}
		m.Step++
		return m, m.tick()
	}
	return m, nil
}

func (m ReplayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("step %d/%d", m.Step, m.last())))
	if m.Step > 0 && m.Step-1 < len(m.Moves) {
		b.WriteString("  " + replayMoveStyle.Render(m.Moves[m.Step-1]))
	}
	b.WriteString("\n")
	if len(m.States) > 0 {
		b.WriteString(styleBoard.Render(strings.TrimRight(m.States[m.Step], "\n")))
	}
	b.WriteString("\n")

	play := "space play"
	if m.Playing {
		play = "space pause"
	}
	b.WriteString(replayHelpStyle.Render("←/→ step  g/G first/last  " + play + "  q quit"))
	b.WriteString("\n")
	return b.String()
}

// replayCommand creates the interactive solution viewer.
func (c *CLI) replayCommand() *cobra.Command {
	var (
		problem  problemFlags
		flags    searchFlags
		play     bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "replay [board-file|-]",
		Short: "Step through a solution interactively",
		Long: `Solve a puzzle (or load the cached solution) and step through the states
on the solution path in the terminal.

When stdout is not a terminal every state is printed in order instead.`,
		Example: `  puzzlesearch replay board.txt --play
  puzzlesearch replay -p superqueens -n 6`,
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
			flags.jsonOut = false
			flags.apply(cmd, cfg, &opts)

			res, err := c.solve(cmd, cfg, flags, opts)
			if err != nil {
				return err
			}
			if !res.Solution.Found {
				printWarning("No solution to replay")
				return nil
			}

			title := fmt.Sprintf("%s · cost %d", opts.Puzzle, res.Solution.Cost)
			if !interactive() {
				for i, state := range res.Solution.States {
					printDetail("step %d", i)
					printBoard(state)
				}
				return nil
			}

			m := NewReplayModel(title, res.Solution, interval)
			m.Playing = play
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	problem.register(cmd)
	flags.register(cmd)
	_ = cmd.Flags().MarkHidden("json")
	cmd.Flags().BoolVar(&play, "play", false, "start playing immediately")
	cmd.Flags().DurationVar(&interval, "interval", 400*time.Millisecond, "delay between states while playing")

	return cmd
}
