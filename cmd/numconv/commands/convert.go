package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"numconv/internal/domain"
	"numconv/internal/render"
	"numconv/internal/services/converter"
)

func convertCmd() *cobra.Command {
	var (
		from      string
		canonical bool
		strict    bool
	)
	cmd := &cobra.Command{
		Use:   "convert <number>",
		Short: "Convert a number into decimal, binary, octal and hexadecimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := resolveBase(from)
			if err != nil {
				return err
			}

			numerals := wire.Numerals
			if canonical {
				numerals = converter.New(domain.Canonical, wire.Logger.Named("converter"))
			}

			c, err := numerals.Convert(args[0], base)
			if err != nil {
				if strict {
					return fmt.Errorf("converting %q as %s: %w", args[0], base, err)
				}
				c = domain.Failed()
			}
			return render.Conversion(cmd.OutOrStdout(), wire.Output, c)
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "input base: decimal, binary, octal, hexadecimal (default from config)")
	cmd.Flags().BoolVar(&canonical, "canonical", false, "re-derive the input base's field instead of echoing the input")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero on invalid input")
	return cmd
}
