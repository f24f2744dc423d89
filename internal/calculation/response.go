package calculation

import (
	"fmt"

	"github.com/firecalc/station-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// AnalyzeResponseTimes turns a station/region distance matrix into response
// times (distance / speed), per-station coverage against the target, and the
// best-serving station for each region. Pure arithmetic over the dataset.
func AnalyzeResponseTimes(dataset *domain.ResponseDataset) (*domain.ResponseAnalysis, error) {
	if len(dataset.Stations) == 0 || len(dataset.Regions) == 0 {
		return nil, fmt.Errorf("response dataset must name at least one station and one region")
	}
	if len(dataset.DistancesKm) != len(dataset.Stations) {
		return nil, fmt.Errorf("distance matrix has %d rows for %d stations",
			len(dataset.DistancesKm), len(dataset.Stations))
	}
	if !dataset.AverageSpeedKmh.IsPositive() {
		return nil, fmt.Errorf("average speed must be positive, got %s", dataset.AverageSpeedKmh.String())
	}

	regionCount := len(dataset.Regions)
	analysis := &domain.ResponseAnalysis{
		Stations:             make([]domain.StationResponseSummary, len(dataset.Stations)),
		BestStationPerRegion: make([]string, regionCount),
		Dataset:              *dataset,
	}

	bestTimes := make([]decimal.Decimal, regionCount)

	for i, name := range dataset.Stations {
		row := dataset.DistancesKm[i]
		if len(row) != regionCount {
			return nil, fmt.Errorf("station %s has %d distances for %d regions", name, len(row), regionCount)
		}

		summary := domain.StationResponseSummary{
			Station:         name,
			ResponseMinutes: make([]decimal.Decimal, regionCount),
		}

		total := decimal.Zero
		covered := 0
		for j, distance := range row {
			minutes := distance.Div(dataset.AverageSpeedKmh).Mul(minutesPerHour)
			summary.ResponseMinutes[j] = minutes
			total = total.Add(minutes)
			if minutes.GreaterThan(summary.WorstResponseMinutes) {
				summary.WorstResponseMinutes = minutes
			}
			if minutes.LessThanOrEqual(dataset.TargetResponseMinutes) {
				covered++
			}
			if analysis.BestStationPerRegion[j] == "" || minutes.LessThan(bestTimes[j]) {
				bestTimes[j] = minutes
				analysis.BestStationPerRegion[j] = name
			}
		}

		summary.MeanResponseMinutes = total.Div(decimal.NewFromInt(int64(regionCount)))
		summary.CoverageRatio = decimal.NewFromInt(int64(covered)).Div(decimal.NewFromInt(int64(regionCount)))
		analysis.Stations[i] = summary
	}

	return analysis, nil
}
