package domain

import (
	"github.com/shopspring/decimal"
)

// StationProfile holds the cost and savings profile for a single fire
// station upgrade. Amounts are annual unless noted otherwise. The profile
// is immutable for the duration of an evaluation.
type StationProfile struct {
	Name string `json:"name" yaml:"name"`

	// SetupCost is the one-time initial outlay, booked at year 0.
	SetupCost decimal.Decimal `json:"setup_cost" yaml:"setup_cost"`

	AnnualFuelSavings        decimal.Decimal `json:"annual_fuel_savings" yaml:"annual_fuel_savings"`
	AnnualMaintenanceSavings decimal.Decimal `json:"annual_maintenance_savings" yaml:"annual_maintenance_savings"`
	AnnualPersonnelSavings   decimal.Decimal `json:"annual_personnel_savings" yaml:"annual_personnel_savings"`

	// OperationalCost is the annual recurring cost of running the station.
	OperationalCost decimal.Decimal `json:"operational_cost" yaml:"operational_cost"`

	// CapacityFactor is the utilization multiplier in [0, 1]. Enforcing the
	// range is the caller's responsibility (config validation does so for
	// file-based input).
	CapacityFactor decimal.Decimal `json:"capacity_factor" yaml:"capacity_factor"`

	// ServicePopulation is carried through for reporting; the financial
	// engine itself does not read it.
	ServicePopulation int `json:"service_population" yaml:"service_population"`
}

// GrossAnnualSavings sums the three savings streams.
func (sp *StationProfile) GrossAnnualSavings() decimal.Decimal {
	return sp.AnnualFuelSavings.Add(sp.AnnualMaintenanceSavings).Add(sp.AnnualPersonnelSavings)
}

// NetAnnualSavings is gross savings less the annual operational cost. May be
// negative for stations whose running cost exceeds their savings.
func (sp *StationProfile) NetAnnualSavings() decimal.Decimal {
	return sp.GrossAnnualSavings().Sub(sp.OperationalCost)
}

// EconomicAssumptions are the run-wide economic parameters shared by every
// station evaluated in a batch.
type EconomicAssumptions struct {
	// Annual compounding rates, typically in [0, 0.1].
	InflationRate    decimal.Decimal `json:"inflation_rate" yaml:"inflation_rate"`
	PopulationGrowth decimal.Decimal `json:"population_growth" yaml:"population_growth"`
	DemandEscalation decimal.Decimal `json:"demand_escalation" yaml:"demand_escalation"`

	// DiscountRate must be greater than -1.
	DiscountRate decimal.Decimal `json:"discount_rate" yaml:"discount_rate"`

	// AnalysisPeriod is the horizon length in years, at least 1.
	AnalysisPeriod int `json:"analysis_period" yaml:"analysis_period"`
}
