package calculation

import (
	"github.com/firecalc/station-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// NetPresentValue sums the discounted cash flows of the series.
func NetPresentValue(series *domain.CashFlowSeries) decimal.Decimal {
	npv := decimal.Zero
	for _, cf := range series.Discounted {
		npv = npv.Add(cf)
	}
	return npv
}

// ReturnOnInvestment is total nominal inflows over the absolute year-0
// outlay, as a percentage. The second return is false when the year-0 flow
// is zero, in which case the ratio is undefined and the first return must be
// ignored. A zero setup cost is abnormal input, but it must not crash a
// batch run.
func ReturnOnInvestment(series *domain.CashFlowSeries) (decimal.Decimal, bool) {
	if len(series.Nominal) == 0 || series.Nominal[0].IsZero() {
		return decimal.Zero, false
	}
	return series.TotalInflows().Div(series.Nominal[0].Abs()).Mul(hundred), true
}

// BenefitCostRatio divides the sum of positive discounted entries by the sum
// of absolute negative discounted entries. When the series has no negative
// discounted entries there are no costs to compare against; the convention
// here is to report the ratio as undefined (false) rather than infinite.
func BenefitCostRatio(series *domain.CashFlowSeries) (decimal.Decimal, bool) {
	benefits := decimal.Zero
	costs := decimal.Zero
	for _, cf := range series.Discounted {
		if cf.IsPositive() {
			benefits = benefits.Add(cf)
		} else {
			costs = costs.Add(cf.Abs())
		}
	}
	if costs.IsZero() {
		return decimal.Zero, false
	}
	return benefits.Div(costs), true
}
