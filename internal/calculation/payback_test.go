package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaybackPeriod_Interpolation(t *testing.T) {
	// Cumulative: -100, -40, +20. Crossing in year 2, with 40/60 of that
	// year's inflow needed: payback = 1 + 0.6667.
	payback, ok := PaybackPeriod(nominalSeries(-100, 60, 60))

	require.True(t, ok)
	want := decimal.NewFromInt(1).Add(decimal.NewFromInt(40).Div(decimal.NewFromInt(60)))
	diff := payback.Sub(want).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(1e-9)), "payback = %s, want %s", payback, want)
}

func TestPaybackPeriod_ExactCrossingAtYearBoundary(t *testing.T) {
	// Cumulative: -100, 0, +50. Year 1 lands exactly on zero, which is not
	// yet positive; year 2 crosses with nothing outstanding.
	payback, ok := PaybackPeriod(nominalSeries(-100, 100, 50))

	require.True(t, ok)
	assert.True(t, payback.Equal(decimal.NewFromInt(1)), "payback = %s", payback)
}

func TestPaybackPeriod_AllPositive(t *testing.T) {
	// Positive at year 0: no investment to recoup, payback is 0.
	payback, ok := PaybackPeriod(nominalSeries(100, 50, 50))

	require.True(t, ok)
	assert.True(t, payback.IsZero())
}

func TestPaybackPeriod_NeverPositive(t *testing.T) {
	_, ok := PaybackPeriod(nominalSeries(-100, 10, 10, 10))
	assert.False(t, ok, "cumulative never turns positive within the horizon")
}

func TestPaybackPeriod_Bracketing(t *testing.T) {
	// If payback is finite, cumulative[floor] <= 0 < cumulative[ceil].
	series := nominalSeries(-1650, 120, 150, 180, 210, 240, 270, 300, 330, 360)
	payback, ok := PaybackPeriod(series)
	require.True(t, ok)

	floor := payback.Floor().IntPart()
	ceil := floor
	if !payback.Equal(payback.Floor()) {
		ceil = floor + 1
	}

	cumulative := decimal.Zero
	cums := make([]decimal.Decimal, len(series.Nominal))
	for i, cf := range series.Nominal {
		cumulative = cumulative.Add(cf)
		cums[i] = cumulative
	}

	assert.True(t, cums[floor].LessThanOrEqual(decimal.Zero), "cumulative[floor]=%s", cums[floor])
	assert.True(t, cums[ceil].GreaterThan(decimal.Zero), "cumulative[ceil]=%s", cums[ceil])
}

func TestPaybackPeriod_UsesNominalNotDiscounted(t *testing.T) {
	// The default convention interpolates on the undiscounted stream; the
	// discounted variant must lag it whenever the discount rate is positive.
	series, err := GenerateCashFlows(testStation(), testAssumptions())
	require.NoError(t, err)

	nominalPayback, ok := PaybackPeriod(series)
	require.True(t, ok)
	discountedPayback, ok := DiscountedPayback(series)
	require.True(t, ok)

	assert.True(t, discountedPayback.GreaterThan(nominalPayback),
		"discounted %s should exceed nominal %s", discountedPayback, nominalPayback)
}

func TestDiscountedPayback_MatchesDiscountedCumulative(t *testing.T) {
	series, err := GenerateCashFlows(testStation(), testAssumptions())
	require.NoError(t, err)

	payback, ok := DiscountedPayback(series)
	require.True(t, ok)

	floor := int(payback.Floor().IntPart())
	require.Less(t, floor+1, len(series.Cumulative))
	assert.True(t, series.Cumulative[floor].LessThanOrEqual(decimal.Zero))
	assert.True(t, series.Cumulative[floor+1].GreaterThan(decimal.Zero))
}
