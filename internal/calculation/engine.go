package calculation

import (
	"fmt"

	"github.com/firecalc/station-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates station cost-benefit evaluations: cash-flow
// generation, NPV and ratio metrics, the IRR search and the payback
// calculation. It holds no per-evaluation state, so one engine may be shared
// across goroutines evaluating independent stations.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates an engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// GenerateCashFlows exposes the intermediate cash-flow series so callers
// building year-by-year tables or Monte Carlo samplers can inspect it
// without recomputing the scalar metrics.
func (ce *CalculationEngine) GenerateCashFlows(station *domain.StationProfile, assumptions *domain.EconomicAssumptions) (*domain.CashFlowSeries, error) {
	return GenerateCashFlows(station, assumptions)
}

// Evaluate runs the full financial evaluation for one station. It returns an
// error only when the assumptions themselves are unusable; every per-metric
// failure state (non-convergent IRR, never-achieved payback, undefined
// ratios) is reported as a flag on the result so batch callers can tally
// failures without aborting.
func (ce *CalculationEngine) Evaluate(station *domain.StationProfile, assumptions *domain.EconomicAssumptions) (*domain.StationEvaluation, error) {
	series, err := GenerateCashFlows(station, assumptions)
	if err != nil {
		return nil, fmt.Errorf("station %s: %w", station.Name, err)
	}

	metrics := &domain.FinancialMetrics{}
	metrics.NPV = NetPresentValue(series)
	metrics.ROI, metrics.ROIDefined = ReturnOnInvestment(series)
	metrics.BenefitCostRatio, metrics.BenefitCostDefined = BenefitCostRatio(series)

	irr := InternalRateOfReturn(series)
	metrics.IRR = irr.Rate
	metrics.IRRConverged = irr.Converged
	metrics.IRRIterations = irr.Iterations
	if !irr.Converged {
		ce.Logger.Warnf("station %s: IRR search did not converge after %d iterations (last estimate %s%%)",
			station.Name, irr.Iterations, irr.Rate.StringFixed(4))
	}

	metrics.PaybackYears, metrics.PaybackAchieved = PaybackPeriod(series)
	if !metrics.PaybackAchieved {
		ce.Logger.Debugf("station %s: cumulative cash flow never turns positive within %d years",
			station.Name, assumptions.AnalysisPeriod)
	}

	return &domain.StationEvaluation{
		StationName: station.Name,
		Profile:     *station,
		CashFlows:   series,
		Metrics:     metrics,
	}, nil
}

// EvaluateStations evaluates a batch of stations under shared assumptions.
// The assumptions are validated once up front; after that, no single
// pathological profile aborts the batch.
func (ce *CalculationEngine) EvaluateStations(stations []domain.StationProfile, assumptions *domain.EconomicAssumptions) ([]domain.StationEvaluation, error) {
	if err := ValidateAssumptions(assumptions); err != nil {
		return nil, err
	}

	evaluations := make([]domain.StationEvaluation, 0, len(stations))
	for i := range stations {
		eval, err := ce.Evaluate(&stations[i], assumptions)
		if err != nil {
			// Assumptions were validated above, so this is unreachable in
			// practice; keep the batch alive regardless.
			ce.Logger.Errorf("skipping station %s: %v", stations[i].Name, err)
			continue
		}
		evaluations = append(evaluations, *eval)
	}
	return evaluations, nil
}

// CompareStations evaluates all stations and builds the ranking summary the
// report formatters consume.
func (ce *CalculationEngine) CompareStations(stations []domain.StationProfile, assumptions *domain.EconomicAssumptions) (*domain.StationComparison, error) {
	evaluations, err := ce.EvaluateStations(stations, assumptions)
	if err != nil {
		return nil, err
	}

	comparison := &domain.StationComparison{
		Evaluations: evaluations,
		Assumptions: *assumptions,
	}

	bestNPV := decimal.Decimal{}
	bestPayback := decimal.Decimal{}
	for _, eval := range evaluations {
		if !eval.Metrics.IRRConverged {
			comparison.NonConvergentIRRs++
		}
		if comparison.BestNPVStation == "" || eval.Metrics.NPV.GreaterThan(bestNPV) {
			bestNPV = eval.Metrics.NPV
			comparison.BestNPVStation = eval.StationName
		}
		if eval.Metrics.PaybackAchieved &&
			(comparison.BestPaybackStation == "" || eval.Metrics.PaybackYears.LessThan(bestPayback)) {
			bestPayback = eval.Metrics.PaybackYears
			comparison.BestPaybackStation = eval.StationName
		}
	}

	return comparison, nil
}
