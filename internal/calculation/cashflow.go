package calculation

import (
	"fmt"

	"github.com/firecalc/station-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CapacityDecayRate models the annual erosion of effective station capacity:
// the utilization multiplier for year t is CapacityFactor * 0.98^t.
var CapacityDecayRate = decimal.NewFromFloat(0.98)

// ValidateAssumptions checks the constraints the cash-flow generator relies
// on. A discount rate at or below -100% makes the discount base
// non-positive, and a horizon below one year leaves nothing to project.
func ValidateAssumptions(assumptions *domain.EconomicAssumptions) error {
	if assumptions.DiscountRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("%w: discount rate must be greater than -100%%, got %s",
			ErrInvalidAssumptions, assumptions.DiscountRate.String())
	}
	if assumptions.AnalysisPeriod < 1 {
		return fmt.Errorf("%w: analysis period must be at least 1 year, got %d",
			ErrInvalidAssumptions, assumptions.AnalysisPeriod)
	}
	return nil
}

// GenerateCashFlows builds the nominal, discounted and cumulative cash-flow
// series for one station under the given assumptions. Year 0 carries the
// negative setup cost; each later year carries the net annual savings
// escalated by population growth, demand escalation and inflation, scaled by
// the decaying utilization factor. The function is pure and deterministic;
// the caller is responsible for CapacityFactor being within [0, 1].
func GenerateCashFlows(station *domain.StationProfile, assumptions *domain.EconomicAssumptions) (*domain.CashFlowSeries, error) {
	if err := ValidateAssumptions(assumptions); err != nil {
		return nil, err
	}

	n := assumptions.AnalysisPeriod
	series := &domain.CashFlowSeries{
		Nominal:    make([]decimal.Decimal, n+1),
		Discounted: make([]decimal.Decimal, n+1),
		Cumulative: make([]decimal.Decimal, n+1),
	}

	series.Nominal[0] = station.SetupCost.Neg()
	series.Discounted[0] = series.Nominal[0]
	series.Cumulative[0] = series.Discounted[0]

	netSavings := station.NetAnnualSavings()
	one := decimal.NewFromInt(1)

	// Running compound factors; after the t-th update each equals (1+rate)^t.
	populationFactor := one
	demandFactor := one
	inflationFactor := one
	discountFactor := one
	utilizationFactor := station.CapacityFactor

	onePlusPopulation := one.Add(assumptions.PopulationGrowth)
	onePlusDemand := one.Add(assumptions.DemandEscalation)
	onePlusInflation := one.Add(assumptions.InflationRate)
	onePlusDiscount := one.Add(assumptions.DiscountRate)

	for t := 1; t <= n; t++ {
		populationFactor = populationFactor.Mul(onePlusPopulation)
		demandFactor = demandFactor.Mul(onePlusDemand)
		inflationFactor = inflationFactor.Mul(onePlusInflation)
		discountFactor = discountFactor.Mul(onePlusDiscount)
		utilizationFactor = utilizationFactor.Mul(CapacityDecayRate)

		escalated := netSavings.Mul(populationFactor).Mul(demandFactor).Mul(inflationFactor)
		series.Nominal[t] = escalated.Mul(utilizationFactor)
		series.Discounted[t] = series.Nominal[t].Div(discountFactor)
		series.Cumulative[t] = series.Cumulative[t-1].Add(series.Discounted[t])
	}

	return series, nil
}
