package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantworks/marketanomaly/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		z    float64
		want models.Severity
	}{
		{z: 5.0, want: models.SeverityCritical},
		{z: 4.1, want: models.SeverityCritical},
		{z: 4.0, want: models.SeverityHigh},
		{z: 3.5, want: models.SeverityHigh},
		{z: 3.0, want: models.SeverityMedium},
		{z: 2.5, want: models.SeverityMedium},
		{z: 2.0, want: models.SeverityLow},
		{z: 1.0, want: models.SeverityLow},
		{z: 0, want: models.SeverityLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.z), "z=%v", tt.z)
	}
}
