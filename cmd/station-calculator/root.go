package main

import (
	"fmt"

	"github.com/firecalc/station-calculator/internal/calculation"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "station-calculator",
	Short: "Fire station response-time and cost-benefit analysis",
	Long: `station-calculator evaluates fire station upgrade profiles: it projects
escalated cash flows over the analysis horizon and derives NPV, IRR,
payback period, ROI and benefit-cost ratio, with optional response-time
coverage analysis and Monte Carlo sensitivity runs.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "stations.yaml", "path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log per-station calculation detail")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(cashflowsCmd)
	rootCmd.AddCommand(montecarloCmd)
	rootCmd.AddCommand(responseCmd)
	rootCmd.AddCommand(exampleConfigCmd)
}

// newEngine builds the calculation engine honoring the verbosity flags.
func newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if verbose || debug {
		engine.SetLogger(calculation.StderrLogger{Debug: debug})
	}
	return engine
}

func loggerForFlags() calculation.Logger {
	if verbose || debug {
		return calculation.StderrLogger{Debug: debug}
	}
	return calculation.NopLogger{}
}

func requireStation(name string) error {
	if name == "" {
		return fmt.Errorf("--station is required")
	}
	return nil
}
