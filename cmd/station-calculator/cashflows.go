package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/firecalc/station-calculator/internal/config"
	"github.com/firecalc/station-calculator/pkg/money"
	"github.com/spf13/cobra"
)

var cashflowsStation string

var cashflowsCmd = &cobra.Command{
	Use:   "cashflows",
	Short: "Print the per-year cash-flow table for one station",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireStation(cashflowsStation); err != nil {
			return err
		}

		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(configFile)
		if err != nil {
			return err
		}

		station := cfg.Station(cashflowsStation)
		if station == nil {
			return fmt.Errorf("station %q not found in %s", cashflowsStation, configFile)
		}

		engine := newEngine()
		series, err := engine.GenerateCashFlows(station, &cfg.GlobalAssumptions)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "Year\tNominal\tDiscounted\tCumulative\t\n")
		for t := range series.Nominal {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n",
				t,
				money.FormatCurrency(series.Nominal[t]),
				money.FormatCurrency(series.Discounted[t]),
				money.FormatCurrency(series.Cumulative[t]))
		}
		return w.Flush()
	},
}

func init() {
	cashflowsCmd.Flags().StringVarP(&cashflowsStation, "station", "s", "", "station name from the configuration")
}
