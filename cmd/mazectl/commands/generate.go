package commands

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		flags        mazeFlags
		showSolution bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Generate a maze and print it",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := flags.build(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "seed %d, entrance column %d, exit column %d, solution %d cells\n",
				m.Seed(), m.EntranceColumn(), m.ExitColumn(), m.SolutionLength())
			fmt.Fprint(out, m.Render(maze.RenderOptions{Solution: showSolution}))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&showSolution, "solution", false, "mark the solution path")
	return cmd
}
