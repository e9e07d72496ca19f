package detect

import (
	"fmt"
	"math"

	"github.com/quantworks/marketanomaly/internal/series"
	"github.com/quantworks/marketanomaly/models"
)

// PriceSpike flags observations whose price deviates from the series
// mean by more than Threshold population standard deviations.
type PriceSpike struct {
	Threshold float64
	severity  SeverityRule
}

// NewPriceSpike creates a price spike detector with the default 3-sigma
// threshold
func NewPriceSpike(threshold float64) *PriceSpike {
	if threshold <= 0 {
		threshold = 3.0
	}
	return &PriceSpike{
		Threshold: threshold,
		severity:  Classify,
	}
}

func (d *PriceSpike) Name() string {
	return "price_spike"
}

func (d *PriceSpike) Detect(obs []models.Observation) []models.Anomaly {
	if len(obs) == 0 {
		return nil
	}

	prices := series.Prices(obs)
	mean := series.Mean(prices)
	std := series.Std(prices)
	if std == 0 {
		// Constant series, nothing can be scored
		return nil
	}

	var anomalies []models.Anomaly
	for i, price := range prices {
		z := math.Abs(price-mean) / std
		if z <= d.Threshold {
			continue
		}
		anomalies = append(anomalies, models.Anomaly{
			Type:          models.AnomalyPriceSpike,
			Date:          obs[i].Timestamp,
			Value:         price,
			ExpectedValue: mean,
			ZScore:        z,
			Severity:      d.severity(z),
			Description:   fmt.Sprintf("Price %.4f is %.1f standard deviations from the mean %.4f", price, z, mean),
		})
	}
	return anomalies
}
