package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/spf13/cobra"
)

func newWalkCmd() *cobra.Command {
	var (
		flags    mazeFlags
		moves    string
		mirrored bool
	)

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Walk a maze and print where the walk ended",
		Long: `Walk generates a maze and plays a sequence of moves on it.

Moves are single letters: n, e, s and w step in an absolute direction,
f steps forward and l or r turn the walker. Spaces and commas are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.build(cmd)
			if err != nil {
				return err
			}

			w := game.NewWalker(m, mirrored)
			blocked, err := play(w, moves)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "state %s at %s facing %s, %d moves, %d blocked\n",
				m.State(), m.Position(), w.Facing(), w.Moves(), blocked)
			fmt.Fprintf(out, "trail %d cells\n", m.TrailLength())
			if w.Completed() {
				fmt.Fprintln(out, "completed")
			}
			fmt.Fprint(out, m.Render(maze.RenderOptions{Trail: true, Agent: true}))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&moves, "moves", "m", "", "moves to play, e.g. \"s n e f l r\"")
	cmd.Flags().BoolVar(&mirrored, "mirrored", false, "swap east and west for forward steps on circular mazes")
	return cmd
}

// play applies moves to w and returns how many of them were blocked.
func play(w *game.Walker, moves string) (int, error) {
	blocked := 0
	for _, r := range moves {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}

		var (
			ok  bool
			err error
		)
		switch unicode.ToLower(r) {
		case 'f':
			ok, err = w.Forward()
		case 'l':
			ok, err = w.TurnLeft()
		case 'r':
			ok, err = w.TurnRight()
		default:
			d, perr := maze.ParseDirection(string(r))
			if perr != nil {
				return blocked, perr
			}
			ok, err = w.Step(d)
		}
		if err != nil {
			return blocked, fmt.Errorf("move %q: %w", strings.ToLower(string(r)), err)
		}
		if !ok {
			blocked++
		}
	}
	return blocked, nil
}
