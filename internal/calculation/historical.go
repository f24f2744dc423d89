package calculation

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// HistoricalDataPoint represents a single year's observation.
type HistoricalDataPoint struct {
	Year int             `json:"year"`
	Rate decimal.Decimal `json:"rate"`
}

// HistoricalDataSet is one named annual rate series with summary statistics.
type HistoricalDataSet struct {
	Name       string                `json:"name"`
	DataPoints []HistoricalDataPoint `json:"data_points"`
	MinYear    int                   `json:"min_year"`
	MaxYear    int                   `json:"max_year"`
	Mean       decimal.Decimal       `json:"mean"`
	byYear     map[int]decimal.Decimal
}

// Rate returns the observation for a year.
func (ds *HistoricalDataSet) Rate(year int) (decimal.Decimal, error) {
	if rate, ok := ds.byYear[year]; ok {
		return rate, nil
	}
	return decimal.Zero, fmt.Errorf("no %s observation for year %d", ds.Name, year)
}

// HistoricalRateManager loads the historical annual rate series the Monte
// Carlo sampler can draw from instead of statistical distributions:
// CPI inflation and a municipal fuel-price index. Files live under the data
// path as <name>-annual.csv with year,rate rows (one header line).
type HistoricalRateManager struct {
	Inflation     *HistoricalDataSet `json:"inflation"`
	FuelPriceIdx  *HistoricalDataSet `json:"fuel_price_index"`
	DataPath      string             `json:"data_path"`
	IsLoaded      bool               `json:"is_loaded"`
}

// NewHistoricalRateManager creates a manager rooted at dataPath.
func NewHistoricalRateManager(dataPath string) *HistoricalRateManager {
	return &HistoricalRateManager{DataPath: dataPath}
}

// LoadAllData loads every rate series. Idempotent.
func (hrm *HistoricalRateManager) LoadAllData() error {
	if hrm.IsLoaded {
		return nil
	}

	inflation, err := hrm.loadCSVSeries("inflation")
	if err != nil {
		return fmt.Errorf("failed to load inflation data: %w", err)
	}
	hrm.Inflation = inflation

	fuel, err := hrm.loadCSVSeries("fuel-price")
	if err != nil {
		return fmt.Errorf("failed to load fuel price data: %w", err)
	}
	hrm.FuelPriceIdx = fuel

	hrm.IsLoaded = true
	return nil
}

// GetAvailableYears returns the year range covered by every loaded series.
func (hrm *HistoricalRateManager) GetAvailableYears() (int, int, error) {
	if !hrm.IsLoaded {
		return 0, 0, fmt.Errorf("historical data not loaded")
	}
	minYear := hrm.Inflation.MinYear
	maxYear := hrm.Inflation.MaxYear
	if hrm.FuelPriceIdx.MinYear > minYear {
		minYear = hrm.FuelPriceIdx.MinYear
	}
	if hrm.FuelPriceIdx.MaxYear < maxYear {
		maxYear = hrm.FuelPriceIdx.MaxYear
	}
	if minYear > maxYear {
		return 0, 0, fmt.Errorf("historical series do not overlap")
	}
	return minYear, maxYear, nil
}

// GetInflationRate returns the historical inflation rate for a year.
func (hrm *HistoricalRateManager) GetInflationRate(year int) (decimal.Decimal, error) {
	if !hrm.IsLoaded {
		return decimal.Zero, fmt.Errorf("historical data not loaded")
	}
	return hrm.Inflation.Rate(year)
}

// GetFuelPriceGrowth returns the historical fuel-price-index growth for a
// year, used as the demand escalation draw in historical sampling.
func (hrm *HistoricalRateManager) GetFuelPriceGrowth(year int) (decimal.Decimal, error) {
	if !hrm.IsLoaded {
		return decimal.Zero, fmt.Errorf("historical data not loaded")
	}
	return hrm.FuelPriceIdx.Rate(year)
}

func (hrm *HistoricalRateManager) loadCSVSeries(name string) (*HistoricalDataSet, error) {
	path := filepath.Join(hrm.DataPath, name+"-annual.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	dataset := &HistoricalDataSet{
		Name:   name,
		byYear: make(map[int]decimal.Decimal),
	}

	line := 0
	sum := decimal.Zero
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		line++
		if line == 1 {
			continue // header
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("%s line %d: expected year,rate", path, line)
		}

		year, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad year %q: %w", path, line, record[0], err)
		}
		rate, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad rate %q: %w", path, line, record[1], err)
		}

		dataset.DataPoints = append(dataset.DataPoints, HistoricalDataPoint{Year: year, Rate: rate})
		dataset.byYear[year] = rate
		sum = sum.Add(rate)
	}

	if len(dataset.DataPoints) == 0 {
		return nil, fmt.Errorf("%s contains no observations", path)
	}

	sort.Slice(dataset.DataPoints, func(i, j int) bool {
		return dataset.DataPoints[i].Year < dataset.DataPoints[j].Year
	})
	dataset.MinYear = dataset.DataPoints[0].Year
	dataset.MaxYear = dataset.DataPoints[len(dataset.DataPoints)-1].Year
	dataset.Mean = sum.Div(decimal.NewFromInt(int64(len(dataset.DataPoints))))

	return dataset, nil
}
