package detect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantworks/marketanomaly/models"
)

func TestVolumeSpikeRatioBoundary(t *testing.T) {
	tests := []struct {
		name       string
		lastVolume float64
		want       int
	}{
		{name: "ratio above threshold", lastVolume: 3500, want: 1},
		{name: "ratio below threshold", lastVolume: 2900, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := generateObservations(21, func(i int) (float64, float64) {
				if i == 20 {
					return 100, tt.lastVolume
				}
				return 100, 1000
			})

			anomalies := NewVolumeSpike(0, 0).Detect(obs)
			require.Len(t, anomalies, tt.want)

			if tt.want == 1 {
				a := anomalies[0]
				assert.Equal(t, models.AnomalyVolumeSpike, a.Type)
				assert.Equal(t, obs[20].Timestamp, a.Date)
				assert.Equal(t, 1000.0, a.ExpectedValue)
				assert.InDelta(t, 3.5, a.Value, 1e-9)
				assert.InDelta(t, math.Log(3.5), a.ZScore, 1e-4)
				assert.Equal(t, models.SeverityLow, a.Severity)
			}
		})
	}
}

func TestVolumeSpikeTooShort(t *testing.T) {
	obs := generateObservations(20, func(i int) (float64, float64) {
		return 100, 1000
	})
	assert.Empty(t, NewVolumeSpike(0, 0).Detect(obs))
}

func TestVolumeSpikeZeroBaseline(t *testing.T) {
	// A dormant window yields no baseline to compare against
	obs := generateObservations(25, func(i int) (float64, float64) {
		if i >= 20 {
			return 100, 5000
		}
		return 100, 0
	})
	anomalies := NewVolumeSpike(0, 0).Detect(obs)
	for _, a := range anomalies {
		assert.Greater(t, a.ExpectedValue, 0.0)
	}
}
