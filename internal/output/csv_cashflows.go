package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/firecalc/station-calculator/internal/domain"
)

// CSVCashFlowExporter writes the full per-year cash-flow table: one row per
// station-year with nominal, discounted and cumulative values. This is the
// export cash-flow tables and external plotting tools consume.
type CSVCashFlowExporter struct{}

func (c CSVCashFlowExporter) Name() string { return "csv-cashflows" }

func (c CSVCashFlowExporter) Format(results *domain.StationComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Station", "Year", "Nominal", "Discounted", "Cumulative"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, eval := range results.Evaluations {
		series := eval.CashFlows
		if series == nil {
			continue
		}
		for t := range series.Nominal {
			row := []string{
				eval.StationName,
				strconv.Itoa(t),
				series.Nominal[t].StringFixed(4),
				series.Discounted[t].StringFixed(4),
				series.Cumulative[t].StringFixed(4),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
