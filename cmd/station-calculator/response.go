package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/firecalc/station-calculator/internal/calculation"
	"github.com/firecalc/station-calculator/internal/config"
	"github.com/spf13/cobra"
)

var responseCmd = &cobra.Command{
	Use:   "response",
	Short: "Compute response times and coverage from the distance matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(configFile)
		if err != nil {
			return err
		}
		if cfg.ResponseDataset == nil {
			return fmt.Errorf("configuration %s has no response_dataset section", configFile)
		}

		analysis, err := calculation.AnalyzeResponseTimes(cfg.ResponseDataset)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "RESPONSE TIME ANALYSIS (speed %s km/h, target %s min)\n",
			analysis.Dataset.AverageSpeedKmh.String(),
			analysis.Dataset.TargetResponseMinutes.String())

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Station\tMean (min)\tWorst (min)\tCoverage\t\n")
		for _, s := range analysis.Stations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s%%\t\n",
				s.Station,
				s.MeanResponseMinutes.StringFixed(1),
				s.WorstResponseMinutes.StringFixed(1),
				s.CoverageRatio.Mul(hundredPercent).StringFixed(0))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Best station per region:")
		for j, region := range analysis.Dataset.Regions {
			fmt.Fprintf(out, "  %-12s %s\n", region, analysis.BestStationPerRegion[j])
		}
		return nil
	},
}
