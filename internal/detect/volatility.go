package detect

import (
	"fmt"
	"math"

	"github.com/quantworks/marketanomaly/internal/series"
	"github.com/quantworks/marketanomaly/models"
)

// VolatilityRegime flags points where the rolling standard deviation of
// returns exceeds a multiple of the expanding average of all rolling
// volatility seen so far. The expanding baseline is deliberate:
// volatility regimes are long-memory, unlike the volume detector's
// short trailing window.
type VolatilityRegime struct {
	Window         int
	RatioThreshold float64
	MinHistory     int
	severity       SeverityRule
}

// NewVolatilityRegime creates a volatility regime detector with the
// default 20-period rolling window and 2x ratio threshold
func NewVolatilityRegime(window int, ratioThreshold float64) *VolatilityRegime {
	if window <= 0 {
		window = 20
	}
	if ratioThreshold <= 0 {
		ratioThreshold = 2.0
	}
	return &VolatilityRegime{
		Window:         window,
		RatioThreshold: ratioThreshold,
		MinHistory:     20,
		severity:       Classify,
	}
}

func (d *VolatilityRegime) Name() string {
	return "volatility_regime"
}

func (d *VolatilityRegime) Detect(obs []models.Observation) []models.Anomaly {
	returns := series.Returns(series.Prices(obs))
	// vol[i] covers returns[i..i+Window-1] and is dated at the end of
	// its window, a raw offset of Window from the price series
	vol := series.RollingStd(returns, d.Window)
	if vol.Len() <= d.MinHistory {
		return nil
	}

	sum := 0.0
	for i := 0; i < d.MinHistory; i++ {
		sum += vol.Values[i]
	}

	var anomalies []models.Anomaly
	for i := d.MinHistory; i < vol.Len(); i++ {
		baseline := sum / float64(i)
		current := vol.Values[i]
		sum += current

		if baseline <= 0 {
			continue
		}
		ratio := current / baseline
		if ratio <= d.RatioThreshold {
			continue
		}
		logRatio := math.Log(ratio)
		anomalies = append(anomalies, models.Anomaly{
			Type:          models.AnomalyVolatilitySpike,
			Date:          obs[vol.RawIndex(i)].Timestamp,
			Value:         current,
			ExpectedValue: baseline,
			ZScore:        logRatio,
			Severity:      d.severity(logRatio),
			Description:   fmt.Sprintf("Rolling volatility %.4f is %.1fx the running average %.4f", current, ratio, baseline),
		})
	}
	return anomalies
}
