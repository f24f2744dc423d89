package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMonteCarloConfig() MonteCarloConfig {
	return MonteCarloConfig{
		NumTrials:        200,
		Seed:             12345,
		InflationStdDev:  decimal.NewFromFloat(0.01),
		PopulationStdDev: decimal.NewFromFloat(0.008),
		DemandStdDev:     decimal.NewFromFloat(0.008),
	}
}

func TestMonteCarloSampler_Run(t *testing.T) {
	sampler := NewMonteCarloSampler(NewCalculationEngine(), nil)

	result, err := sampler.Run(testStation(), testAssumptions(), testMonteCarloConfig())
	require.NoError(t, err)

	assert.Equal(t, 200, result.NumTrials)
	assert.Len(t, result.Trials, 200)
	assert.Equal(t, "Central", result.StationName)

	// Success rate is a share in [0, 1].
	assert.True(t, result.SuccessRate.GreaterThanOrEqual(decimal.Zero))
	assert.True(t, result.SuccessRate.LessThanOrEqual(decimal.NewFromInt(1)))

	// The reference station is robustly positive under small perturbations.
	assert.True(t, result.SuccessRate.GreaterThan(decimal.NewFromFloat(0.9)),
		"success rate = %s", result.SuccessRate)

	// Percentiles are ordered.
	p := result.NPVPercentiles
	assert.True(t, p.P10.LessThanOrEqual(p.P25))
	assert.True(t, p.P25.LessThanOrEqual(p.P50))
	assert.True(t, p.P50.LessThanOrEqual(p.P75))
	assert.True(t, p.P75.LessThanOrEqual(p.P90))
}

func TestMonteCarloSampler_DeterministicForSeed(t *testing.T) {
	sampler := NewMonteCarloSampler(NewCalculationEngine(), nil)
	config := testMonteCarloConfig()
	config.NumTrials = 50

	first, err := sampler.Run(testStation(), testAssumptions(), config)
	require.NoError(t, err)
	second, err := sampler.Run(testStation(), testAssumptions(), config)
	require.NoError(t, err)

	require.Len(t, second.Trials, len(first.Trials))
	for i := range first.Trials {
		assert.True(t, first.Trials[i].NPV.Equal(second.Trials[i].NPV),
			"trial %d: %s vs %s", i, first.Trials[i].NPV, second.Trials[i].NPV)
	}
	assert.True(t, first.MedianNPV.Equal(second.MedianNPV))
}

func TestMonteCarloSampler_DifferentSeedsDiffer(t *testing.T) {
	sampler := NewMonteCarloSampler(NewCalculationEngine(), nil)
	config := testMonteCarloConfig()
	config.NumTrials = 50

	first, err := sampler.Run(testStation(), testAssumptions(), config)
	require.NoError(t, err)

	config.Seed = 99999
	second, err := sampler.Run(testStation(), testAssumptions(), config)
	require.NoError(t, err)

	differs := false
	for i := range first.Trials {
		if !first.Trials[i].NPV.Equal(second.Trials[i].NPV) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "different seeds should produce different draws")
}

func TestMonteCarloSampler_ZeroVolatilityReproducesBaseCase(t *testing.T) {
	engine := NewCalculationEngine()
	sampler := NewMonteCarloSampler(engine, nil)

	config := MonteCarloConfig{NumTrials: 10, Seed: 7}
	result, err := sampler.Run(testStation(), testAssumptions(), config)
	require.NoError(t, err)

	base, err := engine.Evaluate(testStation(), testAssumptions())
	require.NoError(t, err)

	for i, trial := range result.Trials {
		assert.True(t, trial.NPV.Equal(base.Metrics.NPV), "trial %d: %s", i, trial.NPV)
	}
	assert.Equal(t, 0, result.IRRFailures)
}

func TestMonteCarloSampler_TalliesFailuresWithoutAborting(t *testing.T) {
	// A station that never pays for itself: every trial has a failed IRR and
	// no payback, and the run still completes with full tallies.
	station := testStation()
	station.OperationalCost = decimal.NewFromInt(900)

	sampler := NewMonteCarloSampler(NewCalculationEngine(), nil)
	result, err := sampler.Run(station, testAssumptions(), testMonteCarloConfig())
	require.NoError(t, err)

	assert.Equal(t, result.NumTrials, result.IRRFailures)
	assert.Equal(t, result.NumTrials, result.PaybackFailures)
	assert.True(t, result.SuccessRate.IsZero())
}

func TestMonteCarloSampler_RejectsBadInput(t *testing.T) {
	sampler := NewMonteCarloSampler(NewCalculationEngine(), nil)

	_, err := sampler.Run(testStation(), testAssumptions(), MonteCarloConfig{NumTrials: 0})
	assert.Error(t, err)

	bad := testAssumptions()
	bad.AnalysisPeriod = 0
	_, err = sampler.Run(testStation(), bad, testMonteCarloConfig())
	assert.Error(t, err)
}

func TestMonteCarloSampler_HistoricalFallsBackWhenUnloaded(t *testing.T) {
	sampler := NewMonteCarloSampler(NewCalculationEngine(), nil)
	config := testMonteCarloConfig()
	config.UseHistorical = true
	config.NumTrials = 20

	result, err := sampler.Run(testStation(), testAssumptions(), config)
	require.NoError(t, err)
	assert.Len(t, result.Trials, 20)
}
