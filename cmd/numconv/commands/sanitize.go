package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sanitizeCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "sanitize <text>",
		Short: "Keep only the characters that are digits of the base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := resolveBase(from)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), wire.Numerals.Sanitize(args[0], base))
			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "input base (default from config)")
	return cmd
}
