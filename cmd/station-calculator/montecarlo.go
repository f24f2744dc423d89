package main

import (
	"fmt"

	"github.com/firecalc/station-calculator/internal/calculation"
	"github.com/firecalc/station-calculator/internal/config"
	"github.com/firecalc/station-calculator/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	mcStation    string
	mcTrials     int
	mcSeed       int64
	mcHistorical bool
	mcDataPath   string
)

var montecarloCmd = &cobra.Command{
	Use:   "montecarlo",
	Short: "Run a Monte Carlo sensitivity analysis for one station",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireStation(mcStation); err != nil {
			return err
		}

		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(configFile)
		if err != nil {
			return err
		}

		station := cfg.Station(mcStation)
		if station == nil {
			return fmt.Errorf("station %q not found in %s", mcStation, configFile)
		}

		mcConfig := calculation.MonteCarloConfig{
			NumTrials:        1000,
			Seed:             12345,
			InflationStdDev:  decimal.NewFromFloat(0.01),
			PopulationStdDev: decimal.NewFromFloat(0.008),
			DemandStdDev:     decimal.NewFromFloat(0.008),
		}
		if cfg.MonteCarlo != nil {
			mcConfig.NumTrials = cfg.MonteCarlo.NumTrials
			mcConfig.Seed = cfg.MonteCarlo.Seed
			mcConfig.UseHistorical = cfg.MonteCarlo.UseHistorical
			mcConfig.InflationStdDev = cfg.MonteCarlo.InflationStdDev
			mcConfig.PopulationStdDev = cfg.MonteCarlo.PopulationStdDev
			mcConfig.DemandStdDev = cfg.MonteCarlo.DemandStdDev
		}
		if cmd.Flags().Changed("trials") {
			mcConfig.NumTrials = mcTrials
		}
		if cmd.Flags().Changed("seed") {
			mcConfig.Seed = mcSeed
		}
		if cmd.Flags().Changed("historical") {
			mcConfig.UseHistorical = mcHistorical
		}

		var historical *calculation.HistoricalRateManager
		if mcConfig.UseHistorical {
			historical = calculation.NewHistoricalRateManager(mcDataPath)
			if err := historical.LoadAllData(); err != nil {
				// Degrade to statistical sampling rather than failing the run.
				loggerForFlags().Warnf("failed to load historical data: %v", err)
				historical = nil
				mcConfig.UseHistorical = false
			}
		}

		sampler := calculation.NewMonteCarloSampler(newEngine(), historical)
		sampler.Logger = loggerForFlags()

		result, err := sampler.Run(station, &cfg.GlobalAssumptions, mcConfig)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "MONTE CARLO SENSITIVITY: %s (%d trials, seed %d)\n", result.StationName, result.NumTrials, result.Seed)
		fmt.Fprintf(out, "Success rate (NPV > 0): %s\n", money.FormatRateAsPercent(result.SuccessRate))
		fmt.Fprintf(out, "Median NPV:             %s\n", money.FormatCurrency(result.MedianNPV))
		fmt.Fprintf(out, "NPV P10/P25/P50/P75/P90: %s / %s / %s / %s / %s\n",
			money.FormatCurrency(result.NPVPercentiles.P10),
			money.FormatCurrency(result.NPVPercentiles.P25),
			money.FormatCurrency(result.NPVPercentiles.P50),
			money.FormatCurrency(result.NPVPercentiles.P75),
			money.FormatCurrency(result.NPVPercentiles.P90))
		if result.PaybackFailures < result.NumTrials {
			fmt.Fprintf(out, "Median payback:         %s\n", money.FormatYears(result.MedianPayback))
		}
		fmt.Fprintf(out, "Payback never reached:  %d trial(s)\n", result.PaybackFailures)
		fmt.Fprintf(out, "IRR non-convergent:     %d trial(s)\n", result.IRRFailures)
		return nil
	},
}

func init() {
	montecarloCmd.Flags().StringVarP(&mcStation, "station", "s", "", "station name from the configuration")
	montecarloCmd.Flags().IntVarP(&mcTrials, "trials", "n", 1000, "number of trials")
	montecarloCmd.Flags().Int64Var(&mcSeed, "seed", 12345, "random seed")
	montecarloCmd.Flags().BoolVar(&mcHistorical, "historical", false, "sample rates from historical data")
	montecarloCmd.Flags().StringVar(&mcDataPath, "data", "data", "historical data directory")
}
