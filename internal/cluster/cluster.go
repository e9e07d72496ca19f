package cluster

import (
	"sort"
	"time"

	"github.com/quantworks/marketanomaly/models"
)

const (
	// MaxGap is the widest spacing allowed between consecutive members
	// of one cluster.
	MaxGap = 5 * 24 * time.Hour

	// MinSize is the smallest cluster kept in the output; singletons
	// are discarded.
	MinSize = 2
)

// Group merges temporally adjacent same-type anomalies into clusters.
// The input need not be sorted; anomalies are ordered by date first,
// which may interleave types. A new cluster starts whenever the date
// gap from the current cluster's end exceeds MaxGap or the incoming
// type differs from the type of the cluster's first member. Clusters
// with fewer than MinSize members are dropped. Output is chronological
// by cluster start.
func Group(anomalies []models.Anomaly) []models.AnomalyCluster {
	if len(anomalies) == 0 {
		return nil
	}

	sorted := make([]models.Anomaly, len(anomalies))
	copy(sorted, anomalies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var clusters []models.AnomalyCluster
	var current *models.AnomalyCluster
	for _, a := range sorted {
		if current == nil ||
			a.Date.Sub(current.EndDate) > MaxGap ||
			a.Type != current.Anomalies[0].Type {
			clusters = append(clusters, models.AnomalyCluster{
				StartDate: a.Date,
				EndDate:   a.Date,
				Severity:  a.Severity,
				Anomalies: []models.Anomaly{a},
			})
			current = &clusters[len(clusters)-1]
			continue
		}
		current.Anomalies = append(current.Anomalies, a)
		current.EndDate = a.Date
	}

	var kept []models.AnomalyCluster
	for _, c := range clusters {
		if len(c.Anomalies) >= MinSize {
			kept = append(kept, c)
		}
	}
	return kept
}
