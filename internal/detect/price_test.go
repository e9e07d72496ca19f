package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantworks/marketanomaly/models"
)

func TestPriceSpikeConstantSeries(t *testing.T) {
	obs := generateObservations(50, func(i int) (float64, float64) {
		return 100, 1000
	})
	assert.Empty(t, NewPriceSpike(0).Detect(obs))
}

func TestPriceSpikeEmptySeries(t *testing.T) {
	assert.Empty(t, NewPriceSpike(0).Detect(nil))
}

func TestPriceSpikeInjected(t *testing.T) {
	const spikeIndex = 126
	obs := generateObservations(253, func(i int) (float64, float64) {
		if i == spikeIndex {
			return 140, 1000
		}
		return 100, 1000
	})

	anomalies := NewPriceSpike(0).Detect(obs)
	require.Len(t, anomalies, 1)

	a := anomalies[0]
	assert.Equal(t, models.AnomalyPriceSpike, a.Type)
	assert.Equal(t, obs[spikeIndex].Timestamp, a.Date)
	assert.Equal(t, 140.0, a.Value)
	assert.InDelta(t, 100.158, a.ExpectedValue, 0.01)
	assert.Greater(t, a.ZScore, 3.0)
	assert.Contains(t, []models.Severity{models.SeverityHigh, models.SeverityCritical}, a.Severity)
}
