package detect

import (
	"time"

	"github.com/quantworks/marketanomaly/models"
)

var testBase = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// generateObservations builds a daily series from a per-index generator
func generateObservations(n int, generator func(i int) (price, volume float64)) []models.Observation {
	obs := make([]models.Observation, n)
	for i := 0; i < n; i++ {
		price, volume := generator(i)
		obs[i] = models.Observation{
			Timestamp: testBase.AddDate(0, 0, i),
			Price:     price,
			Volume:    volume,
		}
	}
	return obs
}

// observationsFromReturns builds prices by compounding a return series
// from a starting price of 100
func observationsFromReturns(returns []float64) []models.Observation {
	obs := make([]models.Observation, len(returns)+1)
	price := 100.0
	obs[0] = models.Observation{Timestamp: testBase, Price: price, Volume: 1000}
	for i, r := range returns {
		price *= 1 + r
		obs[i+1] = models.Observation{
			Timestamp: testBase.AddDate(0, 0, i+1),
			Price:     price,
			Volume:    1000,
		}
	}
	return obs
}
