package detect

import (
	"github.com/quantworks/marketanomaly/models"
)

// Detector is one independent statistical pass over an observation
// series. Detectors share no state and read the series read-only, so
// they are safe to run concurrently.
type Detector interface {
	Name() string
	Detect(obs []models.Observation) []models.Anomaly
}

// SeverityRule maps a detector's ranking statistic to a severity level.
// Most detectors use the shared Classify rule; the gap detector carries
// its own two-level rule keyed on the raw gap magnitude.
type SeverityRule func(stat float64) models.Severity
