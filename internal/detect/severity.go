package detect

import (
	"github.com/quantworks/marketanomaly/models"
)

// Classify buckets a ranking statistic into the shared four-level
// severity scheme used by the price, volume, return and volatility
// detectors.
func Classify(z float64) models.Severity {
	switch {
	case z > 4.0:
		return models.SeverityCritical
	case z > 3.0:
		return models.SeverityHigh
	case z > 2.0:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}
