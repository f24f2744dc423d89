package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/firecalc/station-calculator/internal/calculation"
	"github.com/firecalc/station-calculator/internal/config"
	"github.com/firecalc/station-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparisonFixture(t *testing.T) *domain.StationComparison {
	t.Helper()
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	engine := calculation.NewCalculationEngine()
	comparison, err := engine.CompareStations(cfg.Stations, &cfg.GlobalAssumptions)
	require.NoError(t, err)
	return comparison
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"console", "console"},
		{"text", "console"},
		{"summary", "console"},
		{"json", "json"},
		{"JSON", "json"},
		{"csv", "csv"},
		{"cashflow-csv", "csv-cashflows"},
	}

	for _, tt := range tests {
		f := GetFormatterByName(tt.query)
		require.NotNil(t, f, "no formatter for %q", tt.query)
		assert.Equal(t, tt.want, f.Name(), "query %q", tt.query)
	}

	assert.Nil(t, GetFormatterByName("html"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Equal(t, []string{"console", "csv", "csv-cashflows", "json"}, names)
}

func TestConsoleFormatter(t *testing.T) {
	comparison := comparisonFixture(t)

	data, err := ConsoleFormatter{}.Format(comparison)
	require.NoError(t, err)
	text := string(data)

	for _, eval := range comparison.Evaluations {
		assert.Contains(t, text, eval.StationName)
	}
	assert.Contains(t, text, "NPV=")
	assert.Contains(t, text, "Best NPV:")
}

func TestConsoleFormatter_FlagsNonConvergence(t *testing.T) {
	comparison := comparisonFixture(t)
	comparison.Evaluations[0].Metrics.IRRConverged = false
	comparison.Evaluations[0].Metrics.PaybackAchieved = false
	comparison.NonConvergentIRRs = 1

	data, err := ConsoleFormatter{}.Format(comparison)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "IRR=n/a (no convergence)")
	assert.Contains(t, text, "Payback=never")
	assert.Contains(t, text, "non-convergent IRR")
}

func TestJSONFormatter(t *testing.T) {
	comparison := comparisonFixture(t)

	data, err := JSONFormatter{}.Format(comparison)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "evaluations")
	assert.Contains(t, decoded, "best_npv_station")
}

func TestCSVSummarizer(t *testing.T) {
	comparison := comparisonFixture(t)

	data, err := CSVSummarizer{}.Format(comparison)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(comparison.Evaluations)+1)
	assert.Equal(t, "Station", records[0][0])

	// Stations are sorted by name.
	names := make([]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		names = append(names, rec[0])
	}
	assert.IsNonDecreasing(t, names)
}

func TestCSVSummarizer_UndefinedCellsAreEmpty(t *testing.T) {
	comparison := comparisonFixture(t)
	comparison.Evaluations[0].Metrics.IRRConverged = false
	comparison.Evaluations[0].Metrics.PaybackAchieved = false

	data, err := CSVSummarizer{}.Format(comparison)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	stationName := comparison.Evaluations[0].StationName
	for _, rec := range records[1:] {
		if rec[0] != stationName {
			continue
		}
		assert.Empty(t, rec[6], "IRR cell must be empty when not converged")
		assert.Empty(t, rec[8], "payback cell must be empty when never achieved")
	}
}

func TestCSVCashFlowExporter(t *testing.T) {
	comparison := comparisonFixture(t)

	data, err := CSVCashFlowExporter{}.Format(comparison)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// One header plus (horizon+1) rows per station.
	wantRows := 1 + len(comparison.Evaluations)*(comparison.Assumptions.AnalysisPeriod+1)
	assert.Len(t, records, wantRows)

	// Year-0 rows carry the negative setup cost.
	require.Greater(t, len(records), 1)
	first := records[1]
	assert.Equal(t, "0", first[1])
	assert.True(t, strings.HasPrefix(first[2], "-"), "year-0 nominal should be negative, got %s", first[2])
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "console", NormalizeFormatName("  TEXT "))
	assert.Equal(t, "json", NormalizeFormatName("json-pretty"))
	assert.Equal(t, "custom", NormalizeFormatName("custom"))
}
