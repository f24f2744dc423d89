package domain

import (
	"github.com/shopspring/decimal"
)

// ResponseDataset is the distance matrix between stations and the regions
// they serve, plus the travel assumptions used to turn distance into time.
type ResponseDataset struct {
	Stations []string `json:"stations" yaml:"stations"`
	Regions  []string `json:"regions" yaml:"regions"`

	// DistancesKm[i][j] is the road distance from station i to region j.
	DistancesKm [][]decimal.Decimal `json:"distances_km" yaml:"distances_km"`

	// AverageSpeedKmh is the assumed apparatus travel speed.
	AverageSpeedKmh decimal.Decimal `json:"average_speed_kmh" yaml:"average_speed_kmh"`

	// TargetResponseMinutes is the coverage threshold.
	TargetResponseMinutes decimal.Decimal `json:"target_response_minutes" yaml:"target_response_minutes"`
}

// StationResponseSummary holds the derived response-time metrics for one
// station across all regions.
type StationResponseSummary struct {
	Station string `json:"station"`

	// ResponseMinutes[j] is the travel time to region j.
	ResponseMinutes []decimal.Decimal `json:"response_minutes"`

	MeanResponseMinutes  decimal.Decimal `json:"mean_response_minutes"`
	WorstResponseMinutes decimal.Decimal `json:"worst_response_minutes"`

	// CoverageRatio is the share of regions reachable within the target.
	CoverageRatio decimal.Decimal `json:"coverage_ratio"`
}

// ResponseAnalysis is the full matrix result: per-station summaries plus the
// best-serving station for each region.
type ResponseAnalysis struct {
	Stations []StationResponseSummary `json:"stations"`

	// BestStationPerRegion[j] names the station with the shortest response
	// time to region j.
	BestStationPerRegion []string `json:"best_station_per_region"`

	Dataset ResponseDataset `json:"dataset"`
}
