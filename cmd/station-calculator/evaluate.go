package main

import (
	"fmt"
	"os"

	"github.com/firecalc/station-calculator/internal/config"
	"github.com/firecalc/station-calculator/internal/output"
	"github.com/spf13/cobra"
)

var (
	evaluateFormat string
	evaluateToFile bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate all stations in the configuration and report metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(configFile)
		if err != nil {
			return err
		}

		engine := newEngine()
		comparison, err := engine.CompareStations(cfg.Stations, &cfg.GlobalAssumptions)
		if err != nil {
			return err
		}

		formatter := output.GetFormatterByName(evaluateFormat)
		if formatter == nil {
			return fmt.Errorf("unknown format %q (available: %v)", evaluateFormat, output.AvailableFormatterNames())
		}

		if evaluateToFile {
			filename, err := output.WriteFormatted(formatter, comparison, output.NormalizeFormatName(evaluateFormat))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", filename)
			return nil
		}

		data, err := formatter.Format(comparison)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateFormat, "format", "f", "console", "output format (console, json, csv, csv-cashflows)")
	evaluateCmd.Flags().BoolVarP(&evaluateToFile, "output-file", "o", false, "write a timestamped report file instead of stdout")
}
