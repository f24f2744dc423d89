package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/firecalc/station-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per station).
// Undefined metrics are emitted as empty cells so spreadsheets do not
// mistake a sentinel for a real value.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.StationComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Station", "SetupCost", "NetAnnualSavings", "CapacityFactor", "ServicePopulation",
		"NPV", "IRRPercent", "IRRConverged", "PaybackYears", "ROIPercent", "BenefitCostRatio"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	evaluations := append([]domain.StationEvaluation(nil), results.Evaluations...)
	sort.Slice(evaluations, func(i, j int) bool { return evaluations[i].StationName < evaluations[j].StationName })

	for _, eval := range evaluations {
		m := eval.Metrics
		irr := ""
		if m.IRRConverged {
			irr = m.IRR.StringFixed(4)
		}
		payback := ""
		if m.PaybackAchieved {
			payback = m.PaybackYears.StringFixed(2)
		}
		roi := ""
		if m.ROIDefined {
			roi = m.ROI.StringFixed(2)
		}
		bcr := ""
		if m.BenefitCostDefined {
			bcr = m.BenefitCostRatio.StringFixed(4)
		}

		row := []string{
			eval.StationName,
			eval.Profile.SetupCost.StringFixed(2),
			eval.Profile.NetAnnualSavings().StringFixed(2),
			eval.Profile.CapacityFactor.String(),
			strconv.Itoa(eval.Profile.ServicePopulation),
			m.NPV.StringFixed(2),
			irr,
			strconv.FormatBool(m.IRRConverged),
			payback,
			roi,
			bcr,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
