package domain

import (
	"github.com/shopspring/decimal"
)

// Configuration is the full input document for an analysis run: the station
// profiles under evaluation, the shared economic assumptions, and the
// optional response-time dataset and Monte Carlo settings.
type Configuration struct {
	Stations          []StationProfile    `json:"stations" yaml:"stations"`
	GlobalAssumptions EconomicAssumptions `json:"global_assumptions" yaml:"global_assumptions"`

	ResponseDataset *ResponseDataset    `json:"response_dataset,omitempty" yaml:"response_dataset,omitempty"`
	MonteCarlo      *MonteCarloSettings `json:"monte_carlo,omitempty" yaml:"monte_carlo,omitempty"`
}

// MonteCarloSettings are the file-facing Monte Carlo knobs. Flag values on
// the CLI override what the file specifies.
type MonteCarloSettings struct {
	NumTrials     int   `json:"num_trials" yaml:"num_trials"`
	Seed          int64 `json:"seed" yaml:"seed"`
	UseHistorical bool  `json:"use_historical" yaml:"use_historical"`

	InflationStdDev  decimal.Decimal `json:"inflation_std_dev" yaml:"inflation_std_dev"`
	PopulationStdDev decimal.Decimal `json:"population_std_dev" yaml:"population_std_dev"`
	DemandStdDev     decimal.Decimal `json:"demand_std_dev" yaml:"demand_std_dev"`
}

// Station returns the profile with the given name, or nil.
func (c *Configuration) Station(name string) *StationProfile {
	for i := range c.Stations {
		if c.Stations[i].Name == name {
			return &c.Stations[i]
		}
	}
	return nil
}
