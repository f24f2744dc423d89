package output

import (
	"encoding/json"

	"github.com/firecalc/station-calculator/internal/domain"
)

// JSONFormatter serializes the station comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.StationComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
