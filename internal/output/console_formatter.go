package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/firecalc/station-calculator/internal/domain"
	"github.com/firecalc/station-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a concise human-readable summary of the station
// comparison.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.StationComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FIRE STATION COST-BENEFIT SUMMARY")
	fmt.Fprintln(&buf, "=================================")
	fmt.Fprintf(&buf, "Discount rate: %s  Horizon: %d years\n",
		money.FormatRateAsPercent(results.Assumptions.DiscountRate),
		results.Assumptions.AnalysisPeriod)
	fmt.Fprintln(&buf)

	evaluations := append([]domain.StationEvaluation(nil), results.Evaluations...)
	sort.Slice(evaluations, func(i, j int) bool { return evaluations[i].StationName < evaluations[j].StationName })

	for _, eval := range evaluations {
		m := eval.Metrics
		fmt.Fprintf(&buf, "%s: NPV=%s", eval.StationName, money.FormatCurrency(m.NPV))

		if m.IRRConverged {
			fmt.Fprintf(&buf, " IRR=%s", money.FormatPercent(m.IRR))
		} else {
			fmt.Fprintf(&buf, " IRR=n/a (no convergence)")
		}

		if m.PaybackAchieved {
			fmt.Fprintf(&buf, " Payback=%s", money.FormatYears(m.PaybackYears))
		} else {
			fmt.Fprintf(&buf, " Payback=never")
		}
		fmt.Fprintln(&buf)

		fmt.Fprintf(&buf, "  ROI=%s BCR=%s SetupCost=%s Population=%d\n",
			formatOptionalPercent(m.ROI, m.ROIDefined),
			formatOptionalRatio(m.BenefitCostRatio, m.BenefitCostDefined),
			money.FormatCurrency(eval.Profile.SetupCost),
			eval.Profile.ServicePopulation)
	}

	fmt.Fprintln(&buf)
	if results.BestNPVStation != "" {
		fmt.Fprintf(&buf, "Best NPV: %s\n", results.BestNPVStation)
	}
	if results.BestPaybackStation != "" {
		fmt.Fprintf(&buf, "Fastest payback: %s\n", results.BestPaybackStation)
	}
	if results.NonConvergentIRRs > 0 {
		fmt.Fprintf(&buf, "Warning: %d station(s) with non-convergent IRR\n", results.NonConvergentIRRs)
	}

	return buf.Bytes(), nil
}

func formatOptionalPercent(value decimal.Decimal, defined bool) string {
	if !defined {
		return "undefined"
	}
	return money.FormatPercent(value)
}

func formatOptionalRatio(value decimal.Decimal, defined bool) string {
	if !defined {
		return "undefined"
	}
	return value.StringFixed(3)
}
