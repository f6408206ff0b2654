package wallpaper

import (
	"math/rand"
	"sort"

	"github.com/paperdesk/paperdesk/config"
	"github.com/paperdesk/paperdesk/pkg/provider"
	"github.com/paperdesk/paperdesk/util/log"
)

// Rank orders a candidate pool for one target from worst to best. The
// returned slice is a new slice; the caller treats it as a stack and pops
// from the tail to get the best remaining candidate.
//
// Pools without any dimension metadata (literal user-supplied URLs) cannot
// be scored; they are returned in uniformly random order instead. In a
// scorable pool, candidates missing width or height are dropped with a
// warning before scoring.
func Rank(target Target, pool []provider.Candidate, weights config.Weights) []provider.Candidate {
	if len(pool) == 0 {
		return nil
	}

	scorable := make([]provider.Candidate, 0, len(pool))
	for _, c := range pool {
		if c.HasMetadata() {
			scorable = append(scorable, c)
		}
	}

	if len(scorable) == 0 {
		shuffled := make([]provider.Candidate, len(pool))
		copy(shuffled, pool)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		return shuffled
	}

	if dropped := len(pool) - len(scorable); dropped > 0 {
		log.Printf("Ranker: dropped %d candidate(s) without dimension metadata", dropped)
	}

	popRange := newPopularityRange(scorable)

	for i := range scorable {
		c := &scorable[i]
		c.Scores.Aspect = aspectScore(*c, target)
		c.Scores.Resolution = resolutionScore(*c, target)
		c.Scores.Popularity = popRange.score(c.Popularity)
		c.Scores.Jitter = rand.Float64()
		c.Scores.Combined = (weights.Aspect*c.Scores.Aspect +
			weights.Resolution*c.Scores.Resolution +
			weights.Popularity*c.Scores.Popularity +
			weights.Jitter*c.Scores.Jitter) / 4
		log.Debugf("Ranker: %q aspect=%.3f res=%.3f pop=%.3f jitter=%.3f combined=%.4f",
			c.ShortTitle(MaxTitleLength), c.Scores.Aspect, c.Scores.Resolution, c.Scores.Popularity, c.Scores.Jitter, c.Scores.Combined)
	}

	// Stable keeps insertion order for equal scores, which matters for
	// deterministic selection when jitter is weighted out.
	sort.SliceStable(scorable, func(i, j int) bool {
		return scorable[i].Scores.Combined < scorable[j].Scores.Combined
	})

	return scorable
}
