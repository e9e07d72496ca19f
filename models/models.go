package models

import (
	"time"
)

// Observation represents a single time-stamped market sample
type Observation struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
	Volume    float64   `json:"volume"`
}

// AnomalyType identifies which detector produced an anomaly
type AnomalyType string

const (
	AnomalyPriceSpike      AnomalyType = "PRICE_SPIKE"
	AnomalyVolumeSpike     AnomalyType = "VOLUME_SPIKE"
	AnomalyReturnOutlier   AnomalyType = "RETURN_OUTLIER"
	AnomalyVolatilitySpike AnomalyType = "VOLATILITY_SPIKE"
	AnomalyGap             AnomalyType = "GAP"

	// AnomalyPattern is reserved for future pattern-based detectors
	AnomalyPattern AnomalyType = "PATTERN_ANOMALY"
)

// Severity classifies how unusual an anomaly is
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Rank maps a severity to its position in the ordering LOW < MEDIUM <
// HIGH < CRITICAL. Unknown severities rank below LOW.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Anomaly is a single detected deviation from expected statistical
// behavior. Anomalies are created by detectors and never mutated.
type Anomaly struct {
	Type          AnomalyType `json:"type"`
	Date          time.Time   `json:"date"`
	Value         float64     `json:"value"`          // observed magnitude in its native unit
	ExpectedValue float64     `json:"expected_value"` // statistic the detector compared against
	ZScore        float64     `json:"z_score"`        // ranking statistic; log-ratio for volume/volatility
	Severity      Severity    `json:"severity"`
	Description   string      `json:"description,omitempty"`
}

// AnomalyCluster groups a run of same-type anomalies whose dates are
// each within the clustering window of the previous member. Severity is
// carried from the first member.
type AnomalyCluster struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Severity  Severity  `json:"severity"`
	Anomalies []Anomaly `json:"anomalies"`
}

// TwelveResponse represents the time_series API response from Twelve Data
type TwelveResponse struct {
	Meta struct {
		Symbol   string `json:"symbol"`
		Interval string `json:"interval"`
	} `json:"meta"`
	Values []struct {
		Datetime string  `json:"datetime"`
		Open     float64 `json:"open,string"`
		High     float64 `json:"high,string"`
		Low      float64 `json:"low,string"`
		Close    float64 `json:"close,string"`
		Volume   float64 `json:"volume,string,omitempty"`
	} `json:"values"`
	Status string `json:"status"`
}
