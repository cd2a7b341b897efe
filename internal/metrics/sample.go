package metrics

import (
	"math/rand"
	"time"
)

// SampleDays is the length of the generated fallback series.
const SampleDays = 14

// Sampler generates a fallback metrics series of n days ending today.
// Keeping the generator injectable keeps the read path deterministic in
// tests.
type Sampler func(n int) []Metric

// NewSampler returns a deterministic sampler seeded with the given
// value: the same seed and length always produce the same series.
func NewSampler(seed int64) Sampler {
	return func(n int) []Metric {
		rng := rand.New(rand.NewSource(seed))
		points := make([]Metric, n)
		start := time.Now().AddDate(0, 0, -(n - 1))

		for i := range points {
			points[i] = Metric{
				Date:    start.AddDate(0, 0, i).Format("2006-01-02"),
				Users:   150 + rng.Intn(50) + i*3,
				Revenue: 45 + rng.Float64()*20 + float64(i)*2,
				Spend:   15 + rng.Float64()*10,
			}
		}
		return points
	}
}

// DefaultSampler seeds from the current day so consecutive reads within
// a day agree with each other.
func DefaultSampler() Sampler {
	day := time.Now().Format("2006-01-02")
	var seed int64
	for _, c := range day {
		seed = seed*31 + int64(c)
	}
	return NewSampler(seed)
}
