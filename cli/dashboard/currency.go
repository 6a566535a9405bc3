package dashboard

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tripgpt/cli"
	"tripgpt/internal/api"
	"tripgpt/internal/configuration"
	"tripgpt/internal/currency"
)

// NewCurrencyCmd instantiates and returns the currency command. The service
// endpoints are preferred; the offline rate table covers outages so the
// converter always answers.
func NewCurrencyCmd(client *api.Client, config *configuration.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Exchange rates and conversion",
	}
	cmd.AddCommand(newRatesCmd(client, config))
	cmd.AddCommand(newConvertCmd(client))
	return cmd
}

func newRatesCmd(client *api.Client, config *configuration.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rates [base]",
		Short: "Show exchange rates for a base currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := config.DefaultCurrency
			if len(args) == 1 {
				base = args[0]
			}
			table, err := client.CurrencyRates(cmd.Context(), base)
			if err != nil {
				cli.Warn("Rate service unavailable, using offline rates\n")
				table = currency.FallbackRates(base)
			}
			cli.Title("Rates for %s", table.BaseCurrency)
			for _, entry := range currency.Popular {
				rate, ok := table.Rates[entry.Code]
				if !ok {
					continue
				}
				cli.Label("%s (%s): ", entry.Code, entry.Name)
				cli.Value("%s\n", rate.String())
			}
			return nil
		},
	}
}

func newConvertCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount between currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			cobra.CheckErr(err)
			from, to := args[1], args[2]

			converted, err := client.ConvertCurrency(cmd.Context(), amount, from, to)
			if err != nil {
				cli.Warn("Conversion service unavailable, using offline rates\n")
				converted = amount.Mul(currency.FallbackRate(from, to)).Round(2)
			}
			cli.Label("%s %s = ", amount.String(), from)
			cli.Value("%s %s\n", converted.String(), to)
			return nil
		},
	}
}
