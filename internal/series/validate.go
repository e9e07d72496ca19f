package series

import (
	"fmt"

	"github.com/quantworks/marketanomaly/models"
)

// Validate checks the contract the detectors assume: strictly ascending
// unique timestamps, positive prices, non-negative volumes. Callers
// should reject a series that fails validation before running detection.
func Validate(obs []models.Observation) error {
	for i, o := range obs {
		if o.Price <= 0 {
			return fmt.Errorf("observation %d: non-positive price %v", i, o.Price)
		}
		if o.Volume < 0 {
			return fmt.Errorf("observation %d: negative volume %v", i, o.Volume)
		}
		if i > 0 && !o.Timestamp.After(obs[i-1].Timestamp) {
			return fmt.Errorf("observation %d: timestamp %s is not after %s",
				i, o.Timestamp.Format("2006-01-02 15:04:05"), obs[i-1].Timestamp.Format("2006-01-02 15:04:05"))
		}
	}
	return nil
}
