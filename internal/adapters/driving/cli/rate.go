package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate <currency>",
	Short: "Show the latest USD exchange rate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportService == nil {
			return errors.New("report service not configured")
		}
		rate, err := reportService.ExchangeRate(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if rate == nil {
			return errors.New("exchange rate unavailable")
		}
		if jsonOutput {
			return printJSON(cmd, rate)
		}
		cmd.Printf("1 %s = %.4f %s (%s)\n", rate.Base, rate.Rate, rate.Quote, rate.Date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rateCmd)
}
