package cmd

import (
	"github.com/discshelf/discnamer/internal/evalcmd"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Identification accuracy evaluation tools",
		Long: `Evaluation tools for measuring identification accuracy against a labeled
dataset of disc photos with known titles.`,
	}

	cmd.AddCommand(evalcmd.NewRunCmd())

	return cmd
}
