package commands

import (
	"github.com/spf13/cobra"

	"numconv/internal/render"
)

func basesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bases",
		Short: "List supported numeral bases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.Bases(cmd.OutOrStdout(), wire.Output)
		},
	}
}
