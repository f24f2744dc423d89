package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStationProfileSavings(t *testing.T) {
	station := &StationProfile{
		Name:                     "Central",
		SetupCost:                decimal.NewFromInt(1650),
		AnnualFuelSavings:        decimal.NewFromInt(95),
		AnnualMaintenanceSavings: decimal.NewFromInt(80),
		AnnualPersonnelSavings:   decimal.NewFromInt(110),
		OperationalCost:          decimal.NewFromInt(80),
	}

	assert.True(t, station.GrossAnnualSavings().Equal(decimal.NewFromInt(285)))
	assert.True(t, station.NetAnnualSavings().Equal(decimal.NewFromInt(205)))
}

func TestStationProfileNegativeNetSavings(t *testing.T) {
	station := &StationProfile{
		AnnualFuelSavings: decimal.NewFromInt(50),
		OperationalCost:   decimal.NewFromInt(120),
	}

	assert.True(t, station.NetAnnualSavings().Equal(decimal.NewFromInt(-70)))
}

func TestCashFlowSeriesYears(t *testing.T) {
	empty := &CashFlowSeries{}
	assert.Equal(t, 0, empty.Years())

	series := &CashFlowSeries{
		Nominal: []decimal.Decimal{
			decimal.NewFromInt(-100),
			decimal.NewFromInt(60),
			decimal.NewFromInt(60),
		},
	}
	assert.Equal(t, 2, series.Years())
	assert.True(t, series.TotalInflows().Equal(decimal.NewFromInt(120)))
}
