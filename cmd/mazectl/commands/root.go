// Package commands holds the mazectl command tree.
package commands

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/spf13/cobra"
)

// mazeFlags are the flags shared by every command that builds a maze.
type mazeFlags struct {
	width    int
	height   int
	circular bool
	seed     int64
}

func (f *mazeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.width, "width", "W", 10, "maze width in cells")
	cmd.Flags().IntVarP(&f.height, "height", "H", 10, "maze height in cells")
	cmd.Flags().BoolVarP(&f.circular, "circular", "c", false, "join the east and west edges")
	cmd.Flags().Int64VarP(&f.seed, "seed", "s", 0, "random seed, a time based seed is used when unset")
}

func (f *mazeFlags) build(cmd *cobra.Command) (*maze.Maze, error) {
	var opts []maze.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, maze.WithSeed(f.seed))
	}
	return maze.New(f.width, f.height, f.circular, opts...)
}

// NewRootCmd builds the mazectl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mazectl",
		Short:         "Generate, solve and walk perfect mazes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newWalkCmd())
	return root
}
