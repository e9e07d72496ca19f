package detect

import (
	"fmt"
	"math"

	"github.com/quantworks/marketanomaly/internal/series"
	"github.com/quantworks/marketanomaly/models"
)

// VolumeSpike flags observations whose volume exceeds a multiple of the
// trailing moving average. The ranking statistic is ln(ratio) rather
// than a true z-score.
type VolumeSpike struct {
	Window         int
	RatioThreshold float64
	severity       SeverityRule
}

// NewVolumeSpike creates a volume spike detector with the default
// 20-period window and 3x ratio threshold
func NewVolumeSpike(window int, ratioThreshold float64) *VolumeSpike {
	if window <= 0 {
		window = 20
	}
	if ratioThreshold <= 0 {
		ratioThreshold = 3.0
	}
	return &VolumeSpike{
		Window:         window,
		RatioThreshold: ratioThreshold,
		severity:       Classify,
	}
}

func (d *VolumeSpike) Name() string {
	return "volume_spike"
}

func (d *VolumeSpike) Detect(obs []models.Observation) []models.Anomaly {
	if len(obs) <= d.Window {
		return nil
	}

	volumes := series.Volumes(obs)
	avg := series.MovingAverage(volumes, d.Window)

	var anomalies []models.Anomaly
	for i, baseline := range avg.Values {
		if baseline <= 0 {
			// No trading in the window, a ratio is meaningless
			continue
		}
		raw := avg.RawIndex(i)
		ratio := volumes[raw] / baseline
		if ratio <= d.RatioThreshold {
			continue
		}
		logRatio := math.Log(ratio)
		anomalies = append(anomalies, models.Anomaly{
			Type:          models.AnomalyVolumeSpike,
			Date:          obs[raw].Timestamp,
			Value:         ratio,
			ExpectedValue: baseline,
			ZScore:        logRatio,
			Severity:      d.severity(logRatio),
			Description:   fmt.Sprintf("Volume %.0f is %.1fx the %d-period average %.0f", volumes[raw], ratio, d.Window, baseline),
		})
	}
	return anomalies
}
