package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/quantworks/marketanomaly/models"
)

// Summary holds aggregate statistics over one detection run
type Summary struct {
	Total          int                         `json:"total"`
	BySeverity     map[models.Severity]int     `json:"by_severity"`
	ByType         map[models.AnomalyType]int  `json:"by_type"`
	MostCommonType models.AnomalyType          `json:"most_common_type,omitempty"`
	AverageScore   float64                     `json:"average_score"`
	From           time.Time                   `json:"from,omitempty"`
	To             time.Time                   `json:"to,omitempty"`
}

// severityOrder lists severities most severe first for rendering
var severityOrder = []models.Severity{
	models.SeverityCritical,
	models.SeverityHigh,
	models.SeverityMedium,
	models.SeverityLow,
}

// Summarize computes aggregate statistics over a set of anomalies
func Summarize(anomalies []models.Anomaly) Summary {
	s := Summary{
		Total:      len(anomalies),
		BySeverity: make(map[models.Severity]int),
		ByType:     make(map[models.AnomalyType]int),
	}
	if len(anomalies) == 0 {
		return s
	}

	scoreSum := 0.0
	for _, a := range anomalies {
		s.BySeverity[a.Severity]++
		s.ByType[a.Type]++
		scoreSum += a.ZScore

		if s.From.IsZero() || a.Date.Before(s.From) {
			s.From = a.Date
		}
		if a.Date.After(s.To) {
			s.To = a.Date
		}
	}
	s.AverageScore = scoreSum / float64(len(anomalies))

	best := 0
	for _, t := range []models.AnomalyType{
		models.AnomalyPriceSpike,
		models.AnomalyVolumeSpike,
		models.AnomalyReturnOutlier,
		models.AnomalyVolatilitySpike,
		models.AnomalyGap,
		models.AnomalyPattern,
	} {
		if s.ByType[t] > best {
			best = s.ByType[t]
			s.MostCommonType = t
		}
	}
	return s
}

// Render formats anomalies and clusters into a human-readable report,
// grouped by severity with the most severe first.
func Render(symbol string, anomalies []models.Anomaly, clusters []models.AnomalyCluster) string {
	var b strings.Builder

	summary := Summarize(anomalies)
	fmt.Fprintf(&b, "Anomaly report for %s\n", symbol)
	if summary.Total == 0 {
		b.WriteString("No anomalies detected.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%d anomalies between %s and %s, average score %.2f\n",
		summary.Total,
		summary.From.Format("2006-01-02"),
		summary.To.Format("2006-01-02"),
		summary.AverageScore)
	if summary.MostCommonType != "" {
		fmt.Fprintf(&b, "Most common type: %s\n", summary.MostCommonType)
	}

	for _, sev := range severityOrder {
		if summary.BySeverity[sev] == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s (%d):\n", sev, summary.BySeverity[sev])
		for _, a := range anomalies {
			if a.Severity != sev {
				continue
			}
			fmt.Fprintf(&b, "  %s  %-17s %s\n", a.Date.Format("2006-01-02"), a.Type, a.Description)
		}
	}

	if len(clusters) > 0 {
		fmt.Fprintf(&b, "\nClusters (%d):\n", len(clusters))
		for _, c := range clusters {
			fmt.Fprintf(&b, "  %s to %s  %-17s %d anomalies, severity %s\n",
				c.StartDate.Format("2006-01-02"),
				c.EndDate.Format("2006-01-02"),
				c.Anomalies[0].Type,
				len(c.Anomalies),
				c.Severity)
		}
	}
	return b.String()
}
