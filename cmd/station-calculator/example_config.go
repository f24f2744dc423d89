package main

import (
	"fmt"

	"github.com/firecalc/station-calculator/internal/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var hundredPercent = decimal.NewFromInt(100)

var exampleOut string

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config",
	Short: "Write a starter configuration with the five-station example dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if err := parser.WriteExampleFile(exampleOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "example configuration written to %s\n", exampleOut)
		return nil
	},
}

func init() {
	exampleConfigCmd.Flags().StringVarP(&exampleOut, "out", "o", "stations.yaml", "output path")
}
