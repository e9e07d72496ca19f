package detect

import (
	"fmt"
	"math"

	"github.com/quantworks/marketanomaly/internal/series"
	"github.com/quantworks/marketanomaly/models"
)

// ReturnOutlier flags single-period returns outside the Tukey fences
// [Q1 - k*IQR, Q3 + k*IQR] of the return distribution.
type ReturnOutlier struct {
	IQRMultiplier float64
	severity      SeverityRule
}

// NewReturnOutlier creates a return outlier detector with the default
// 1.5 IQR fence multiplier
func NewReturnOutlier(iqrMultiplier float64) *ReturnOutlier {
	if iqrMultiplier <= 0 {
		iqrMultiplier = 1.5
	}
	return &ReturnOutlier{
		IQRMultiplier: iqrMultiplier,
		severity:      Classify,
	}
}

func (d *ReturnOutlier) Name() string {
	return "return_outlier"
}

func (d *ReturnOutlier) Detect(obs []models.Observation) []models.Anomaly {
	returns := series.Returns(series.Prices(obs))
	if returns.Len() < 4 {
		return nil
	}

	q1 := series.Quantile(returns.Values, 0.25)
	q3 := series.Quantile(returns.Values, 0.75)
	iqr := q3 - q1
	lower := q1 - d.IQRMultiplier*iqr
	upper := q3 + d.IQRMultiplier*iqr

	median := series.Median(returns.Values)
	std := series.Std(returns.Values)
	if std == 0 {
		// Identical returns, nothing can be scored
		return nil
	}

	var anomalies []models.Anomaly
	for i, r := range returns.Values {
		if r >= lower && r <= upper {
			continue
		}
		z := math.Abs(r-median) / std
		direction := "positive"
		if r < 0 {
			direction = "negative"
		}
		anomalies = append(anomalies, models.Anomaly{
			Type:          models.AnomalyReturnOutlier,
			Date:          obs[returns.RawIndex(i)].Timestamp,
			Value:         r,
			ExpectedValue: median,
			ZScore:        z,
			Severity:      d.severity(z),
			Description:   fmt.Sprintf("Unusual %s return of %.2f%%", direction, r*100),
		})
	}
	return anomalies
}
