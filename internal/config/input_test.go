package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firecalc/station-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `stations:
  - name: "Central"
    setup_cost: 1650
    annual_fuel_savings: 95
    annual_maintenance_savings: 80
    annual_personnel_savings: 110
    operational_cost: 80
    capacity_factor: 0.85
    service_population: 42000
  - name: "Northside"
    setup_cost: 1480
    annual_fuel_savings: 70
    annual_maintenance_savings: 65
    annual_personnel_savings: 95
    operational_cost: 75
    capacity_factor: 0.78
    service_population: 31000

global_assumptions:
  inflation_rate: 0.035
  population_growth: 0.025
  demand_escalation: 0.02
  discount_rate: 0.055
  analysis_period: 25
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	assert.NotNil(t, NewInputParser())
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeConfig(t, minimalConfig))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Len(t, cfg.Stations, 2)
	assert.Equal(t, "Central", cfg.Stations[0].Name)
	assert.True(t, cfg.Stations[0].SetupCost.Equal(decimal.NewFromInt(1650)))
	assert.True(t, cfg.Stations[0].CapacityFactor.Equal(decimal.NewFromFloat(0.85)))
	assert.Equal(t, 42000, cfg.Stations[0].ServicePopulation)

	assert.True(t, cfg.GlobalAssumptions.DiscountRate.Equal(decimal.NewFromFloat(0.055)))
	assert.Equal(t, 25, cfg.GlobalAssumptions.AnalysisPeriod)

	// Derived savings: 95 + 80 + 110 - 80 = 205.
	assert.True(t, cfg.Stations[0].NetAnnualSavings().Equal(decimal.NewFromInt(205)))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeConfig(t, "stations:\n\tbad: indent\n"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	valid := func() *domain.Configuration {
		return parser.CreateExampleConfiguration()
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{"no stations", func(c *domain.Configuration) { c.Stations = nil }, "no stations"},
		{"missing name", func(c *domain.Configuration) { c.Stations[0].Name = "" }, "name is required"},
		{"duplicate name", func(c *domain.Configuration) { c.Stations[1].Name = c.Stations[0].Name }, "duplicate"},
		{"zero setup cost", func(c *domain.Configuration) { c.Stations[0].SetupCost = decimal.Zero }, "setup cost"},
		{"negative savings", func(c *domain.Configuration) {
			c.Stations[0].AnnualFuelSavings = decimal.NewFromInt(-5)
		}, "fuel savings"},
		{"capacity factor above 1", func(c *domain.Configuration) {
			c.Stations[0].CapacityFactor = decimal.NewFromFloat(1.2)
		}, "capacity factor"},
		{"discount rate at -1", func(c *domain.Configuration) {
			c.GlobalAssumptions.DiscountRate = decimal.NewFromInt(-1)
		}, "discount rate"},
		{"horizon too long", func(c *domain.Configuration) {
			c.GlobalAssumptions.AnalysisPeriod = 80
		}, "analysis period"},
		{"inflation out of range", func(c *domain.Configuration) {
			c.GlobalAssumptions.InflationRate = decimal.NewFromFloat(0.5)
		}, "inflation rate"},
		{"ragged distance matrix", func(c *domain.Configuration) {
			c.ResponseDataset.DistancesKm[0] = c.ResponseDataset.DistancesKm[0][:3]
		}, "one entry per region"},
		{"zero trials", func(c *domain.Configuration) { c.MonteCarlo.NumTrials = 0 }, "trials"},
		{"negative std dev", func(c *domain.Configuration) {
			c.MonteCarlo.InflationStdDev = decimal.NewFromFloat(-0.01)
		}, "standard deviations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := parser.ValidateConfiguration(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleConfiguration_IsValid(t *testing.T) {
	parser := NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	require.NoError(t, parser.ValidateConfiguration(cfg))
	assert.Len(t, cfg.Stations, 5)
	require.NotNil(t, cfg.ResponseDataset)
	assert.Len(t, cfg.ResponseDataset.Regions, 7)
	assert.Len(t, cfg.ResponseDataset.DistancesKm, 5)
	require.NotNil(t, cfg.MonteCarlo)
}

func TestWriteExampleFile_RoundTrips(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, parser.WriteExampleFile(path))

	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Stations, 5)
	assert.True(t, cfg.Stations[0].SetupCost.Equal(decimal.NewFromInt(1650)))
}

func TestConfiguration_StationLookup(t *testing.T) {
	parser := NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	station := cfg.Station("Eastgate")
	require.NotNil(t, station)
	assert.Equal(t, "Eastgate", station.Name)

	assert.Nil(t, cfg.Station("Nowhere"))
}
