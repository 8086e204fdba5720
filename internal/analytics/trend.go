package analytics

import (
	"math/rand"
	"time"
)

// The trend generators below are SYNTHETIC placeholders: they produce
// random values for chart scaffolding and are not derived from the
// order history. They live next to the real aggregations only because
// the dashboard consumes them the same way; do not treat them as
// production analytics.

// TrendPoint is one chart point: a short date label ("Dec 28") and a
// rounded value.
type TrendPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// TrendSample bundles one synthetic day across the three dashboard
// series.
type TrendSample struct {
	Date      string `json:"date"`
	Revenue   int    `json:"revenue"`
	Orders    int    `json:"orders"`
	Customers int    `json:"customers"`
}

// SyntheticTrend returns one point per day for the trailing days
// ending today, each value drawn uniformly from [lo, hi) and rounded.
// Pass a seeded *rand.Rand for deterministic output; nil falls back
// to the shared source.
func SyntheticTrend(r *rand.Rand, days int, lo, hi float64) []TrendPoint {
	points := make([]TrendPoint, 0, days)
	now := time.Now()
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		points = append(points, TrendPoint{
			Date:  day.Format("Jan 2"),
			Value: int(uniform(r, lo, hi) + 0.5),
		})
	}
	return points
}

// SyntheticTrendSamples returns one sample per trailing day with the
// value ranges the dashboard charts expect: revenue in [1000, 3000),
// orders in [25, 75), customers in [10, 30).
func SyntheticTrendSamples(r *rand.Rand, days int) []TrendSample {
	samples := make([]TrendSample, 0, days)
	now := time.Now()
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		samples = append(samples, TrendSample{
			Date:      day.Format("Jan 2"),
			Revenue:   int(uniform(r, 1000, 3000) + 0.5),
			Orders:    int(uniform(r, 25, 75) + 0.5),
			Customers: int(uniform(r, 10, 30) + 0.5),
		})
	}
	return samples
}

// DaysForRange maps a dashboard date-range selector value to a day
// count. Unknown values default to 30.
func DaysForRange(rangeValue string) int {
	switch rangeValue {
	case "7d":
		return 7
	case "30d":
		return 30
	case "90d":
		return 90
	default:
		return 30
	}
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	if r == nil {
		return lo + rand.Float64()*(hi-lo)
	}
	return lo + r.Float64()*(hi-lo)
}
