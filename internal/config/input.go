package config

import (
	"fmt"
	"os"

	"github.com/firecalc/station-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Stations) == 0 {
		return fmt.Errorf("no stations provided")
	}

	seen := make(map[string]bool, len(config.Stations))
	for i := range config.Stations {
		station := &config.Stations[i]
		if err := ip.validateStation(station); err != nil {
			return fmt.Errorf("station %d (%s) validation failed: %w", i, station.Name, err)
		}
		if seen[station.Name] {
			return fmt.Errorf("duplicate station name %q", station.Name)
		}
		seen[station.Name] = true
	}

	if err := ip.validateAssumptions(&config.GlobalAssumptions); err != nil {
		return fmt.Errorf("global assumptions validation failed: %w", err)
	}

	if config.ResponseDataset != nil {
		if err := ip.validateResponseDataset(config.ResponseDataset); err != nil {
			return fmt.Errorf("response dataset validation failed: %w", err)
		}
	}

	if config.MonteCarlo != nil {
		if err := ip.validateMonteCarlo(config.MonteCarlo); err != nil {
			return fmt.Errorf("monte carlo settings validation failed: %w", err)
		}
	}

	return nil
}

// validateStation validates a single station profile
func (ip *InputParser) validateStation(station *domain.StationProfile) error {
	if station.Name == "" {
		return fmt.Errorf("station name is required")
	}
	if station.SetupCost.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("setup cost must be positive")
	}
	if station.AnnualFuelSavings.LessThan(decimal.Zero) {
		return fmt.Errorf("annual fuel savings cannot be negative")
	}
	if station.AnnualMaintenanceSavings.LessThan(decimal.Zero) {
		return fmt.Errorf("annual maintenance savings cannot be negative")
	}
	if station.AnnualPersonnelSavings.LessThan(decimal.Zero) {
		return fmt.Errorf("annual personnel savings cannot be negative")
	}
	if station.OperationalCost.LessThan(decimal.Zero) {
		return fmt.Errorf("operational cost cannot be negative")
	}
	if station.CapacityFactor.LessThan(decimal.Zero) || station.CapacityFactor.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("capacity factor must be between 0 and 1")
	}
	if station.ServicePopulation < 0 {
		return fmt.Errorf("service population cannot be negative")
	}
	return nil
}

// validateAssumptions validates the shared economic assumptions. The hard
// engine preconditions (discount rate, horizon) plus sanity bounds on the
// escalation rates a config file could plausibly fat-finger.
func (ip *InputParser) validateAssumptions(assumptions *domain.EconomicAssumptions) error {
	if assumptions.DiscountRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("discount rate must be greater than -100%%")
	}
	if assumptions.AnalysisPeriod <= 0 || assumptions.AnalysisPeriod > 50 {
		return fmt.Errorf("analysis period must be between 1 and 50 years")
	}
	if assumptions.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) || assumptions.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("inflation rate must be between -10%% and 20%%")
	}
	if assumptions.PopulationGrowth.LessThan(decimal.NewFromFloat(-0.10)) || assumptions.PopulationGrowth.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("population growth must be between -10%% and 20%%")
	}
	if assumptions.DemandEscalation.LessThan(decimal.NewFromFloat(-0.10)) || assumptions.DemandEscalation.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("demand escalation must be between -10%% and 20%%")
	}
	return nil
}

// validateResponseDataset validates the distance matrix shape
func (ip *InputParser) validateResponseDataset(dataset *domain.ResponseDataset) error {
	if len(dataset.Stations) == 0 {
		return fmt.Errorf("at least one station is required")
	}
	if len(dataset.Regions) == 0 {
		return fmt.Errorf("at least one region is required")
	}
	if len(dataset.DistancesKm) != len(dataset.Stations) {
		return fmt.Errorf("distance matrix must have one row per station")
	}
	for i, row := range dataset.DistancesKm {
		if len(row) != len(dataset.Regions) {
			return fmt.Errorf("distance row for station %s must have one entry per region", dataset.Stations[i])
		}
		for j, d := range row {
			if d.LessThan(decimal.Zero) {
				return fmt.Errorf("distance from %s to %s cannot be negative", dataset.Stations[i], dataset.Regions[j])
			}
		}
	}
	if !dataset.AverageSpeedKmh.IsPositive() {
		return fmt.Errorf("average speed must be positive")
	}
	if !dataset.TargetResponseMinutes.IsPositive() {
		return fmt.Errorf("target response time must be positive")
	}
	return nil
}

// validateMonteCarlo validates the sensitivity settings
func (ip *InputParser) validateMonteCarlo(settings *domain.MonteCarloSettings) error {
	if settings.NumTrials <= 0 {
		return fmt.Errorf("number of trials must be positive")
	}
	if settings.InflationStdDev.LessThan(decimal.Zero) ||
		settings.PopulationStdDev.LessThan(decimal.Zero) ||
		settings.DemandStdDev.LessThan(decimal.Zero) {
		return fmt.Errorf("standard deviations cannot be negative")
	}
	return nil
}

// CreateExampleConfiguration builds the canonical five-station, seven-region
// example dataset used by the starter config and the documentation.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	stations := []domain.StationProfile{
		{
			Name:                     "Central",
			SetupCost:                decimal.NewFromInt(1650),
			AnnualFuelSavings:        decimal.NewFromInt(95),
			AnnualMaintenanceSavings: decimal.NewFromInt(80),
			AnnualPersonnelSavings:   decimal.NewFromInt(110),
			OperationalCost:          decimal.NewFromInt(80),
			CapacityFactor:           decimal.NewFromFloat(0.85),
			ServicePopulation:        42000,
		},
		{
			Name:                     "Northside",
			SetupCost:                decimal.NewFromInt(1480),
			AnnualFuelSavings:        decimal.NewFromInt(70),
			AnnualMaintenanceSavings: decimal.NewFromInt(65),
			AnnualPersonnelSavings:   decimal.NewFromInt(95),
			OperationalCost:          decimal.NewFromInt(75),
			CapacityFactor:           decimal.NewFromFloat(0.78),
			ServicePopulation:        31000,
		},
		{
			Name:                     "Eastgate",
			SetupCost:                decimal.NewFromInt(1920),
			AnnualFuelSavings:        decimal.NewFromInt(105),
			AnnualMaintenanceSavings: decimal.NewFromInt(90),
			AnnualPersonnelSavings:   decimal.NewFromInt(120),
			OperationalCost:          decimal.NewFromInt(95),
			CapacityFactor:           decimal.NewFromFloat(0.90),
			ServicePopulation:        47000,
		},
		{
			Name:                     "Riverside",
			SetupCost:                decimal.NewFromInt(1350),
			AnnualFuelSavings:        decimal.NewFromInt(60),
			AnnualMaintenanceSavings: decimal.NewFromInt(55),
			AnnualPersonnelSavings:   decimal.NewFromInt(85),
			OperationalCost:          decimal.NewFromInt(70),
			CapacityFactor:           decimal.NewFromFloat(0.72),
			ServicePopulation:        26000,
		},
		{
			Name:                     "Hillcrest",
			SetupCost:                decimal.NewFromInt(1750),
			AnnualFuelSavings:        decimal.NewFromInt(90),
			AnnualMaintenanceSavings: decimal.NewFromInt(85),
			AnnualPersonnelSavings:   decimal.NewFromInt(105),
			OperationalCost:          decimal.NewFromInt(85),
			CapacityFactor:           decimal.NewFromFloat(0.82),
			ServicePopulation:        38000,
		},
	}

	regions := []string{"Downtown", "Harbor", "Industrial", "Uptown", "Suburbs", "Airport", "University"}
	distances := [][]decimal.Decimal{
		decimalRow(2.1, 4.8, 6.2, 3.5, 8.9, 11.4, 5.0),
		decimalRow(5.6, 8.2, 9.5, 2.4, 4.1, 13.0, 7.3),
		decimalRow(4.9, 3.2, 2.8, 6.7, 9.8, 6.5, 8.1),
		decimalRow(3.8, 2.5, 5.9, 5.2, 7.6, 9.9, 6.4),
		decimalRow(6.3, 7.9, 8.4, 4.6, 3.2, 12.1, 2.9),
	}

	return &domain.Configuration{
		Stations: stations,
		GlobalAssumptions: domain.EconomicAssumptions{
			InflationRate:    decimal.NewFromFloat(0.035),
			PopulationGrowth: decimal.NewFromFloat(0.025),
			DemandEscalation: decimal.NewFromFloat(0.02),
			DiscountRate:     decimal.NewFromFloat(0.055),
			AnalysisPeriod:   25,
		},
		ResponseDataset: &domain.ResponseDataset{
			Stations:              []string{"Central", "Northside", "Eastgate", "Riverside", "Hillcrest"},
			Regions:               regions,
			DistancesKm:           distances,
			AverageSpeedKmh:       decimal.NewFromInt(40),
			TargetResponseMinutes: decimal.NewFromInt(8),
		},
		MonteCarlo: &domain.MonteCarloSettings{
			NumTrials:        1000,
			Seed:             12345,
			InflationStdDev:  decimal.NewFromFloat(0.01),
			PopulationStdDev: decimal.NewFromFloat(0.008),
			DemandStdDev:     decimal.NewFromFloat(0.008),
		},
	}
}

func decimalRow(values ...float64) []decimal.Decimal {
	row := make([]decimal.Decimal, len(values))
	for i, v := range values {
		row[i] = decimal.NewFromFloat(v)
	}
	return row
}

// WriteExampleFile marshals the example configuration to a YAML file.
func (ip *InputParser) WriteExampleFile(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
