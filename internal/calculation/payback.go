package calculation

import (
	"github.com/firecalc/station-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// PaybackPeriod finds the fractional year at which the running sum of
// nominal (undiscounted) cash flows first turns positive. This deliberately
// uses the nominal stream while NPV uses the discounted one; see
// DiscountedPayback for the variant that discounts first.
//
// The second return is false when the cumulative flow never turns positive
// within the horizon (payback is then +infinity). A series that is already
// positive at year 0 has nothing to recoup and pays back at 0.
func PaybackPeriod(series *domain.CashFlowSeries) (decimal.Decimal, bool) {
	return paybackOf(series.Nominal)
}

// DiscountedPayback is the opt-in variant computed over the discounted
// stream. It is never substituted for PaybackPeriod implicitly: the two
// disagree whenever the discount rate is nonzero, and callers comparing
// against the nominal convention must not be handed discounted figures.
func DiscountedPayback(series *domain.CashFlowSeries) (decimal.Decimal, bool) {
	return paybackOf(series.Discounted)
}

func paybackOf(flows []decimal.Decimal) (decimal.Decimal, bool) {
	cumulative := decimal.Zero

	for i, cf := range flows {
		before := cumulative
		cumulative = cumulative.Add(cf)

		if !cumulative.IsPositive() {
			continue
		}
		if i == 0 {
			// Positive at year 0 means no negative investment to recoup.
			return decimal.Zero, true
		}
		if cf.IsZero() {
			// A zero inflow cannot be the crossing year; interpolating
			// would divide by zero. Treat as undefined.
			return decimal.Zero, false
		}

		// Interpolate within year i: the fraction of this year's inflow
		// needed to cover what was still outstanding at the end of year i-1.
		fraction := before.Abs().Div(cf)
		return decimal.NewFromInt(int64(i - 1)).Add(fraction), true
	}

	return decimal.Zero, false
}
