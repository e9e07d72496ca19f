package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantworks/marketanomaly/models"
)

func TestGapThresholds(t *testing.T) {
	tests := []struct {
		name      string
		nextPrice float64
		want      int
		severity  models.Severity
		direction string
	}{
		{name: "6% gap is medium", nextPrice: 106, want: 1, severity: models.SeverityMedium, direction: "upward"},
		{name: "13% gap is high", nextPrice: 113, want: 1, severity: models.SeverityHigh, direction: "upward"},
		{name: "2% gap is ignored", nextPrice: 102, want: 0},
		{name: "12% drop is high", nextPrice: 88, want: 1, severity: models.SeverityHigh, direction: "downward"},
		{name: "exactly 10% stays medium", nextPrice: 110, want: 1, severity: models.SeverityMedium, direction: "upward"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := generateObservations(2, func(i int) (float64, float64) {
				if i == 0 {
					return 100, 1000
				}
				return tt.nextPrice, 1000
			})

			anomalies := NewGap(0).Detect(obs)
			require.Len(t, anomalies, tt.want)

			if tt.want == 1 {
				a := anomalies[0]
				assert.Equal(t, models.AnomalyGap, a.Type)
				assert.Equal(t, obs[1].Timestamp, a.Date)
				assert.Equal(t, tt.severity, a.Severity)
				assert.Equal(t, 0.01, a.ExpectedValue)
				assert.InDelta(t, a.Value/0.01, a.ZScore, 1e-9)
				assert.Contains(t, a.Description, tt.direction)
			}
		})
	}
}

func TestGapNeverLowOrCritical(t *testing.T) {
	// Even an extreme gap stays within the two-level scheme
	obs := generateObservations(2, func(i int) (float64, float64) {
		if i == 0 {
			return 100, 1000
		}
		return 300, 1000
	})
	anomalies := NewGap(0).Detect(obs)
	require.Len(t, anomalies, 1)
	assert.Equal(t, models.SeverityHigh, anomalies[0].Severity)
}

func TestGapEmptySeries(t *testing.T) {
	assert.Empty(t, NewGap(0).Detect(nil))
}
