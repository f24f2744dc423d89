package calculation

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/firecalc/station-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// MonteCarloConfig holds the settings for a sensitivity run over one
// station. Rates are perturbed around the base assumptions; the discount
// rate and horizon stay fixed so trials remain comparable.
type MonteCarloConfig struct {
	NumTrials int
	Seed      int64

	// UseHistorical draws inflation and demand escalation from the loaded
	// historical series instead of statistical distributions.
	UseHistorical bool

	// Standard deviations for the statistical draws.
	InflationStdDev  decimal.Decimal
	PopulationStdDev decimal.Decimal
	DemandStdDev     decimal.Decimal
}

// TrialOutcome is the result of a single Monte Carlo trial.
type TrialOutcome struct {
	Trial       int                        `json:"trial"`
	Assumptions domain.EconomicAssumptions `json:"assumptions"`

	NPV             decimal.Decimal `json:"npv"`
	IRR             decimal.Decimal `json:"irr"`
	IRRConverged    bool            `json:"irr_converged"`
	PaybackYears    decimal.Decimal `json:"payback_years"`
	PaybackAchieved bool            `json:"payback_achieved"`
}

// PercentileRanges summarizes the NPV distribution across trials.
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// MonteCarloResult aggregates all trials for one station. Convergence
// failures are tallied, not fatal: a 1000-trial run completes even when some
// sampled assumption sets give the IRR solver no root to find.
type MonteCarloResult struct {
	StationName string         `json:"station_name"`
	Trials      []TrialOutcome `json:"trials"`

	SuccessRate     decimal.Decimal  `json:"success_rate"` // share of trials with NPV > 0
	MedianNPV       decimal.Decimal  `json:"median_npv"`
	NPVPercentiles  PercentileRanges `json:"npv_percentiles"`
	MedianPayback   decimal.Decimal  `json:"median_payback"`
	PaybackFailures int              `json:"payback_failures"`
	IRRFailures     int              `json:"irr_failures"`
	NumTrials       int              `json:"num_trials"`
	Seed            int64            `json:"seed"`
}

// MonteCarloSampler perturbs economic assumptions around a base set and
// evaluates a station under each draw. Randomness comes from an explicit
// seeded source so runs are reproducible; the engine itself stays pure.
type MonteCarloSampler struct {
	Engine     *CalculationEngine
	Historical *HistoricalRateManager
	Logger     Logger
}

// NewMonteCarloSampler creates a sampler. The historical manager may be nil
// when only statistical sampling is used.
func NewMonteCarloSampler(engine *CalculationEngine, historical *HistoricalRateManager) *MonteCarloSampler {
	return &MonteCarloSampler{
		Engine:     engine,
		Historical: historical,
		Logger:     NopLogger{},
	}
}

// Run executes the sensitivity analysis for one station. Assumption sets are
// drawn serially from the seeded source so the sequence is deterministic;
// the independent evaluations then run on a bounded set of goroutines.
func (mcs *MonteCarloSampler) Run(station *domain.StationProfile, base *domain.EconomicAssumptions, config MonteCarloConfig) (*MonteCarloResult, error) {
	if config.NumTrials < 1 {
		return nil, fmt.Errorf("number of trials must be at least 1, got %d", config.NumTrials)
	}
	if err := ValidateAssumptions(base); err != nil {
		return nil, err
	}
	if config.UseHistorical && (mcs.Historical == nil || !mcs.Historical.IsLoaded) {
		mcs.Logger.Warnf("historical data not loaded, falling back to statistical sampling")
		config.UseHistorical = false
	}

	rng := rand.New(rand.NewSource(config.Seed))
	sampled := make([]domain.EconomicAssumptions, config.NumTrials)
	for i := range sampled {
		sampled[i] = mcs.sampleAssumptions(rng, base, config)
	}

	trials := make([]TrialOutcome, config.NumTrials)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 10)

	for i := 0; i < config.NumTrials; i++ {
		wg.Add(1)
		go func(trial int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			assumptions := sampled[trial]
			eval, err := mcs.Engine.Evaluate(station, &assumptions)
			if err != nil {
				// Sampled rates are clamped into the valid range, so this
				// is unreachable; record an empty outcome rather than panic.
				mcs.Logger.Errorf("trial %d: %v", trial, err)
				trials[trial] = TrialOutcome{Trial: trial, Assumptions: assumptions}
				return
			}

			trials[trial] = TrialOutcome{
				Trial:           trial,
				Assumptions:     assumptions,
				NPV:             eval.Metrics.NPV,
				IRR:             eval.Metrics.IRR,
				IRRConverged:    eval.Metrics.IRRConverged,
				PaybackYears:    eval.Metrics.PaybackYears,
				PaybackAchieved: eval.Metrics.PaybackAchieved,
			}
		}(i)
	}
	wg.Wait()

	return mcs.aggregate(station.Name, trials, config), nil
}

// sampleAssumptions draws one perturbed assumption set.
func (mcs *MonteCarloSampler) sampleAssumptions(rng *rand.Rand, base *domain.EconomicAssumptions, config MonteCarloConfig) domain.EconomicAssumptions {
	out := *base

	if config.UseHistorical {
		minYear, maxYear, err := mcs.Historical.GetAvailableYears()
		if err == nil {
			year := minYear + rng.Intn(maxYear-minYear+1)
			if inflation, err := mcs.Historical.GetInflationRate(year); err == nil {
				out.InflationRate = inflation
			}
			if fuelGrowth, err := mcs.Historical.GetFuelPriceGrowth(year); err == nil {
				out.DemandEscalation = fuelGrowth
			}
			out.PopulationGrowth = clampSampledRate(base.PopulationGrowth.Add(normalDraw(rng, config.PopulationStdDev)))
			return out
		}
		mcs.Logger.Warnf("historical year range unavailable: %v", err)
	}

	out.InflationRate = clampSampledRate(base.InflationRate.Add(normalDraw(rng, config.InflationStdDev)))
	out.PopulationGrowth = clampSampledRate(base.PopulationGrowth.Add(normalDraw(rng, config.PopulationStdDev)))
	out.DemandEscalation = clampSampledRate(base.DemandEscalation.Add(normalDraw(rng, config.DemandStdDev)))
	return out
}

func (mcs *MonteCarloSampler) aggregate(stationName string, trials []TrialOutcome, config MonteCarloConfig) *MonteCarloResult {
	result := &MonteCarloResult{
		StationName: stationName,
		Trials:      trials,
		NumTrials:   config.NumTrials,
		Seed:        config.Seed,
	}

	npvs := make([]decimal.Decimal, 0, len(trials))
	paybacks := make([]decimal.Decimal, 0, len(trials))
	successes := 0
	for _, trial := range trials {
		npvs = append(npvs, trial.NPV)
		if trial.NPV.IsPositive() {
			successes++
		}
		if !trial.IRRConverged {
			result.IRRFailures++
		}
		if trial.PaybackAchieved {
			paybacks = append(paybacks, trial.PaybackYears)
		} else {
			result.PaybackFailures++
		}
	}

	sortDecimals(npvs)
	n := len(npvs)
	result.SuccessRate = decimal.NewFromInt(int64(successes)).Div(decimal.NewFromInt(int64(n)))
	result.MedianNPV = npvs[n/2]
	result.NPVPercentiles = PercentileRanges{
		P10: npvs[n/10],
		P25: npvs[n/4],
		P50: npvs[n/2],
		P75: npvs[3*n/4],
		P90: npvs[9*n/10],
	}

	if len(paybacks) > 0 {
		sortDecimals(paybacks)
		result.MedianPayback = paybacks[len(paybacks)/2]
	}

	return result
}

// normalDraw produces one N(0, stdDev) sample via the Box-Muller transform.
func normalDraw(rng *rand.Rand, stdDev decimal.Decimal) decimal.Decimal {
	if stdDev.IsZero() {
		return decimal.Zero
	}
	u1 := rng.Float64()
	u2 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return decimal.NewFromFloat(z).Mul(stdDev)
}

// clampSampledRate keeps draws inside a range the cash-flow generator and
// IRR solver behave sensibly on. Statistical tails beyond +/-50% annual
// growth are not economically meaningful for this model.
func clampSampledRate(rate decimal.Decimal) decimal.Decimal {
	lower := decimal.NewFromFloat(-0.5)
	upper := decimal.NewFromFloat(0.5)
	if rate.LessThan(lower) {
		return lower
	}
	if rate.GreaterThan(upper) {
		return upper
	}
	return rate
}

func sortDecimals(values []decimal.Decimal) {
	sort.Slice(values, func(i, j int) bool { return values[i].LessThan(values[j]) })
}
