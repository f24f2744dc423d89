package calculation

import (
	"github.com/firecalc/station-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Newton-Raphson parameters for the IRR search.
var (
	irrInitialGuess = decimal.NewFromFloat(0.10)
	irrTolerance    = decimal.NewFromFloat(1e-6)
	irrLowerBound   = decimal.NewFromFloat(-0.5)
	irrUpperBound   = decimal.NewFromFloat(2.0)
)

const irrMaxIterations = 100

// IRRResult carries the outcome of the internal-rate-of-return search.
// Converged=false means the solver hit its iteration budget or a flat
// derivative; Rate then holds the best estimate reached, which the caller
// must treat as unreliable. A converged 0% IRR is distinguishable from a
// failed search by the flag alone.
type IRRResult struct {
	// Rate is the found rate as a percentage (r * 100).
	Rate       decimal.Decimal `json:"rate"`
	Converged  bool            `json:"converged"`
	Iterations int             `json:"iterations"`
}

// InternalRateOfReturn finds the discount rate at which the NPV of the
// nominal (undiscounted) cash flows is zero, by Newton-Raphson from a 10%
// starting guess. The rate is clamped to [-50%, 200%] after every step to
// keep the iteration away from rates where the discount base degenerates.
// Cash flows without a sign change have no real root; the solver then runs
// out of iterations and reports Converged=false.
func InternalRateOfReturn(series *domain.CashFlowSeries) IRRResult {
	rate := irrInitialGuess

	for i := 1; i <= irrMaxIterations; i++ {
		npv, derivative := npvAndDerivativeAt(series.Nominal, rate)

		if npv.Abs().LessThan(irrTolerance) {
			return IRRResult{Rate: rate.Mul(hundred), Converged: true, Iterations: i}
		}
		if derivative.Abs().LessThan(irrTolerance) {
			// Flat derivative: a Newton step would divide by ~0. Stop with
			// the current estimate and flag the failure.
			return IRRResult{Rate: rate.Mul(hundred), Converged: false, Iterations: i}
		}

		rate = rate.Sub(npv.Div(derivative))
		rate = clampRate(rate)
	}

	return IRRResult{Rate: rate.Mul(hundred), Converged: false, Iterations: irrMaxIterations}
}

// npvAndDerivativeAt evaluates NPV(r) = sum nominal[t]/(1+r)^t and its
// derivative sum -t*nominal[t]/(1+r)^(t+1) in a single pass.
func npvAndDerivativeAt(nominal []decimal.Decimal, rate decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	one := decimal.NewFromInt(1)
	base := one.Add(rate)

	npv := decimal.Zero
	derivative := decimal.Zero
	factor := one // (1+r)^t

	for t, cf := range nominal {
		if t > 0 {
			factor = factor.Mul(base)
		}
		npv = npv.Add(cf.Div(factor))
		if t > 0 {
			tDec := decimal.NewFromInt(int64(t))
			derivative = derivative.Sub(tDec.Mul(cf).Div(factor.Mul(base)))
		}
	}

	return npv, derivative
}

func clampRate(rate decimal.Decimal) decimal.Decimal {
	if rate.LessThan(irrLowerBound) {
		return irrLowerBound
	}
	if rate.GreaterThan(irrUpperBound) {
		return irrUpperBound
	}
	return rate
}
