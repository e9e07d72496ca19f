package engine

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quantworks/marketanomaly/internal/cluster"
	"github.com/quantworks/marketanomaly/internal/detect"
	"github.com/quantworks/marketanomaly/models"
)

// Options holds detector tuning parameters. Zero values fall back to
// the standard thresholds.
type Options struct {
	PriceZThreshold  float64
	VolumeWindow     int
	VolumeRatio      float64
	IQRMultiplier    float64
	VolatilityWindow int
	VolatilityRatio  float64
	GapThreshold     float64
}

// Engine runs the full detection pipeline: five independent detectors
// fanned out over the observation series, merged and sorted by
// severity, with clustering as a separate second pass.
type Engine struct {
	detectors []detect.Detector
	logger    zerolog.Logger
}

// New creates an engine with the standard five detectors
func New(opts Options) *Engine {
	return &Engine{
		detectors: []detect.Detector{
			detect.NewPriceSpike(opts.PriceZThreshold),
			detect.NewVolumeSpike(opts.VolumeWindow, opts.VolumeRatio),
			detect.NewReturnOutlier(opts.IQRMultiplier),
			detect.NewVolatilityRegime(opts.VolatilityWindow, opts.VolatilityRatio),
			detect.NewGap(opts.GapThreshold),
		},
		logger: log.With().Str("component", "anomaly_engine").Logger(),
	}
}

// Detect runs every detector over the series and returns the combined
// anomalies sorted by severity, most severe first. Ties keep detector
// order. Detectors run concurrently; each writes only its own result
// slot, and slots are merged in a fixed order, so output is
// deterministic. An empty or too-short series yields an empty result,
// never an error.
func (e *Engine) Detect(obs []models.Observation) []models.Anomaly {
	if len(obs) == 0 {
		return []models.Anomaly{}
	}

	results := make([][]models.Anomaly, len(e.detectors))
	var wg sync.WaitGroup
	for i, d := range e.detectors {
		wg.Add(1)
		go func(slot int, d detect.Detector) {
			defer wg.Done()
			results[slot] = d.Detect(obs)
		}(i, d)
	}
	wg.Wait()

	anomalies := []models.Anomaly{}
	for i, r := range results {
		e.logger.Debug().
			Str("detector", e.detectors[i].Name()).
			Int("anomalies", len(r)).
			Msg("Detector finished")
		anomalies = append(anomalies, r...)
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].Severity.Rank() > anomalies[j].Severity.Rank()
	})
	return anomalies
}

// Cluster groups any anomaly collection into multi-day events
func (e *Engine) Cluster(anomalies []models.Anomaly) []models.AnomalyCluster {
	clusters := cluster.Group(anomalies)
	e.logger.Debug().
		Int("anomalies", len(anomalies)).
		Int("clusters", len(clusters)).
		Msg("Clustering finished")
	return clusters
}
