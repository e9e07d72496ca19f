package series

import (
	"math"
	"sort"

	"github.com/quantworks/marketanomaly/models"
)

// Derived pairs a series computed from raw observations with the raw
// index of its first element. Returns are one element shorter than
// prices, rolling statistics shorter still; carrying the offset keeps
// every derived value mappable back to the observation it describes.
type Derived struct {
	Offset int
	Values []float64
}

// RawIndex returns the index into the original observation series for
// the i-th derived value.
func (d Derived) RawIndex(i int) int {
	return d.Offset + i
}

// Len returns the number of derived values.
func (d Derived) Len() int {
	return len(d.Values)
}

// Prices extracts the price column from a series of observations
func Prices(obs []models.Observation) []float64 {
	prices := make([]float64, len(obs))
	for i, o := range obs {
		prices[i] = o.Price
	}
	return prices
}

// Volumes extracts the volume column from a series of observations
func Volumes(obs []models.Observation) []float64 {
	volumes := make([]float64, len(obs))
	for i, o := range obs {
		volumes[i] = o.Volume
	}
	return volumes
}

// Returns computes single-period returns. The result is offset by 1:
// Values[0] is the return from prices[0] to prices[1].
func Returns(prices []float64) Derived {
	d := Derived{Offset: 1}
	if len(prices) < 2 {
		return d
	}
	d.Values = make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		d.Values = append(d.Values, (prices[i]-prices[i-1])/prices[i-1])
	}
	return d
}

// MovingAverage computes a trailing simple moving average over window
// values, aligned so each average corresponds to the observation that
// follows its window: Values[k] averages values[k..k+window-1] and maps
// to raw index k+window.
func MovingAverage(values []float64, window int) Derived {
	d := Derived{Offset: window}
	if window < 1 || len(values) <= window {
		return d
	}
	d.Values = make([]float64, 0, len(values)-window)
	sum := 0.0
	for i := 0; i < window; i++ {
		sum += values[i]
	}
	for i := window; i < len(values); i++ {
		d.Values = append(d.Values, sum/float64(window))
		sum += values[i] - values[i-window]
	}
	return d
}

// RollingStd computes the population standard deviation over a sliding
// window of a derived series. Each value is dated at the end of its
// window, so the offset grows by window-1.
func RollingStd(d Derived, window int) Derived {
	out := Derived{Offset: d.Offset + window - 1}
	if window < 2 || len(d.Values) < window {
		return out
	}
	out.Values = make([]float64, 0, len(d.Values)-window+1)
	for i := 0; i+window <= len(d.Values); i++ {
		out.Values = append(out.Values, Std(d.Values[i:i+window]))
	}
	return out
}

// Mean returns the arithmetic mean of values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Std returns the population standard deviation of values
func Std(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// Quantile returns the q-th quantile of values using linear
// interpolation between order statistics. q must be in [0, 1].
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Median returns the median of values
func Median(values []float64) float64 {
	return Quantile(values, 0.5)
}
