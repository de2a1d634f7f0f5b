package commands

import (
	"github.com/spf13/cobra"

	"numconv/internal/currency"
	"numconv/internal/domain"
	"numconv/internal/render"
)

func currencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Convert amounts between currencies using the static rate table",
	}
	cmd.AddCommand(currencyListCmd(), currencyConvertCmd())
	return cmd
}

func currencyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the rate table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.Currencies(cmd.OutOrStdout(), wire.Output, wire.Currency.List())
		},
	}
}

// currencyConvertCmd converts <amount> from one currency to another; missing
// codes fall back to currency.from / currency.to in the config.
func currencyConvertCmd() *cobra.Command {
	var swap bool
	cmd := &cobra.Command{
		Use:   "convert <amount> [from] [to]",
		Short: "Convert an amount between two currencies",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := domain.CurrencyCode(wire.Settings.Currency.From)
			to := domain.CurrencyCode(wire.Settings.Currency.To)
			if len(args) > 1 {
				from = domain.CurrencyCode(args[1])
			}
			if len(args) > 2 {
				to = domain.CurrencyCode(args[2])
			}
			if swap {
				from, to = currency.Swap(from, to)
			}

			q, err := wire.Currency.Convert(args[0], from, to)
			if err != nil {
				return err
			}
			return render.Quote(cmd.OutOrStdout(), wire.Output, q)
		},
	}
	cmd.Flags().BoolVar(&swap, "swap", false, "swap the from and to currencies")
	return cmd
}
