package detect

import (
	"fmt"
	"math"

	"github.com/quantworks/marketanomaly/models"
)

// gapReference is the typical single-period move used to normalize gap
// magnitudes into a ranking statistic.
const gapReference = 0.01

// Gap flags consecutive observations whose prices differ by more than
// Threshold of the previous price. Severity comes from a two-level rule
// on the raw gap magnitude instead of the shared classifier: gaps are
// only ever MEDIUM or HIGH.
type Gap struct {
	Threshold     float64
	HighThreshold float64
	severity      SeverityRule
}

// NewGap creates a gap detector with the default 5% threshold
func NewGap(threshold float64) *Gap {
	if threshold <= 0 {
		threshold = 0.05
	}
	d := &Gap{
		Threshold:     threshold,
		HighThreshold: 0.10,
	}
	d.severity = func(gap float64) models.Severity {
		if gap > d.HighThreshold {
			return models.SeverityHigh
		}
		return models.SeverityMedium
	}
	return d
}

func (d *Gap) Name() string {
	return "gap"
}

func (d *Gap) Detect(obs []models.Observation) []models.Anomaly {
	var anomalies []models.Anomaly
	for i := 1; i < len(obs); i++ {
		prevClose := obs[i-1].Price
		if prevClose == 0 {
			continue
		}
		gap := math.Abs(obs[i].Price-prevClose) / prevClose
		if gap <= d.Threshold {
			continue
		}
		direction := "upward"
		if obs[i].Price < prevClose {
			direction = "downward"
		}
		anomalies = append(anomalies, models.Anomaly{
			Type:          models.AnomalyGap,
			Date:          obs[i].Timestamp,
			Value:         gap,
			ExpectedValue: gapReference,
			ZScore:        gap / gapReference,
			Severity:      d.severity(gap),
			Description:   fmt.Sprintf("%.1f%% %s gap from previous close %.4f", gap*100, direction, prevClose),
		})
	}
	return anomalies
}
