package domain

import (
	"github.com/shopspring/decimal"
)

// CashFlowSeries holds the year-indexed cash flows for one station
// evaluation. All three slices have length AnalysisPeriod+1, with index 0
// carrying the negative setup cost.
type CashFlowSeries struct {
	// Nominal cash flows: Nominal[0] = -SetupCost, Nominal[t] for t >= 1 is
	// the escalated, utilization-adjusted net savings for year t.
	Nominal []decimal.Decimal `json:"nominal"`

	// Discounted[t] = Nominal[t] / (1+DiscountRate)^t.
	Discounted []decimal.Decimal `json:"discounted"`

	// Cumulative is the running sum of Discounted.
	Cumulative []decimal.Decimal `json:"cumulative"`
}

// Years returns the analysis horizon covered by the series (year 0 excluded).
func (cfs *CashFlowSeries) Years() int {
	if len(cfs.Nominal) == 0 {
		return 0
	}
	return len(cfs.Nominal) - 1
}

// TotalInflows sums the nominal cash flows after year 0.
func (cfs *CashFlowSeries) TotalInflows() decimal.Decimal {
	total := decimal.Zero
	for t := 1; t < len(cfs.Nominal); t++ {
		total = total.Add(cfs.Nominal[t])
	}
	return total
}

// FinancialMetrics is the per-station output of one evaluation. Metric
// values that can be undefined carry an explicit flag; a false flag means
// the companion value must not be read. Payback that never occurs within
// the horizon is represented by PaybackAchieved=false (the +infinity
// sentinel: decimals have no infinity).
type FinancialMetrics struct {
	// NPV is the sum of the discounted cash flows.
	NPV decimal.Decimal `json:"npv"`

	// IRR is the internal rate of return as a percentage (r * 100).
	// IRRConverged=false marks a solver that hit its iteration budget or a
	// flat derivative; IRR then holds the best available estimate.
	IRR           decimal.Decimal `json:"irr"`
	IRRConverged  bool            `json:"irr_converged"`
	IRRIterations int             `json:"irr_iterations"`

	// PaybackYears is the fractional year at which cumulative nominal cash
	// flow first turns positive.
	PaybackYears    decimal.Decimal `json:"payback_years"`
	PaybackAchieved bool            `json:"payback_achieved"`

	// ROI is total inflows over the initial outlay, as a percentage.
	// Undefined when the year-0 flow is zero.
	ROI        decimal.Decimal `json:"roi"`
	ROIDefined bool            `json:"roi_defined"`

	// BenefitCostRatio is discounted benefits over discounted costs.
	// Undefined when there are no discounted costs to compare against.
	BenefitCostRatio   decimal.Decimal `json:"benefit_cost_ratio"`
	BenefitCostDefined bool            `json:"benefit_cost_defined"`
}

// StationEvaluation pairs a station with its metrics and the intermediate
// series, so report and table callers can inspect both.
type StationEvaluation struct {
	StationName string            `json:"station_name"`
	Profile     StationProfile    `json:"profile"`
	CashFlows   *CashFlowSeries   `json:"cash_flows"`
	Metrics     *FinancialMetrics `json:"metrics"`
}

// StationComparison aggregates a batch of evaluations for reporting.
type StationComparison struct {
	Evaluations []StationEvaluation `json:"evaluations"`
	Assumptions EconomicAssumptions `json:"assumptions"`

	BestNPVStation     string `json:"best_npv_station"`
	BestPaybackStation string `json:"best_payback_station"`
	NonConvergentIRRs  int    `json:"non_convergent_irrs"`
}
