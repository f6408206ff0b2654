package wallpaper

import (
	"math"

	"github.com/paperdesk/paperdesk/pkg/provider"
)

// aspectScore rates how closely a candidate's aspect ratio matches the
// target's. The larger ratio always goes in the denominator, so the result
// is in (0, 1] regardless of which side is wider, and 1.0 means an exact
// match.
func aspectScore(c provider.Candidate, t Target) float64 {
	ca := float64(c.Width) / float64(c.Height)
	ta := t.Aspect()
	if ca > ta {
		return ta / ca
	}
	return ca / ta
}

// resolutionScore rates a candidate's pixel count against the target's.
// Anything at or above the target resolution is equally good (1.0); below
// it the score falls linearly with pixel count.
func resolutionScore(c provider.Candidate, t Target) float64 {
	cp := float64(c.Width) * float64(c.Height)
	tp := t.Pixels()
	if cp >= tp {
		return 1.0
	}
	return cp / tp
}

// logPopularity maps a raw popularity signal onto a compressed scale.
// Negative signals are clamped to zero first; log1p keeps a zero signal
// finite.
func logPopularity(signal int64) float64 {
	if signal < 0 {
		signal = 0
	}
	return math.Log1p(float64(signal))
}

// popularityRange holds the pool-wide log-popularity bounds, computed once
// per ranking pass.
type popularityRange struct {
	min float64
	max float64
}

// newPopularityRange scans the pool for the log-popularity extremes.
func newPopularityRange(pool []provider.Candidate) popularityRange {
	r := popularityRange{min: math.Inf(1), max: math.Inf(-1)}
	for _, c := range pool {
		lp := logPopularity(c.Popularity)
		if lp < r.min {
			r.min = lp
		}
		if lp > r.max {
			r.max = lp
		}
	}
	return r
}

// score normalizes one candidate's signal into [0, 1] within the pool's
// range. A degenerate range (everyone equally popular) yields the neutral
// constant for all candidates instead of a division by zero.
func (r popularityRange) score(signal int64) float64 {
	if r.max <= r.min {
		return NeutralPopularityScore
	}
	s := (logPopularity(signal) - r.min) / (r.max - r.min)
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
