package wallpaper

import (
	"context"

	"github.com/paperdesk/paperdesk/pkg/provider"
	"github.com/paperdesk/paperdesk/util/log"
)

// Materializer fetches a candidate's bytes and persists them to local
// storage, returning a handle (file path) inside destDir.
type Materializer interface {
	Materialize(ctx context.Context, c provider.Candidate, destDir string) (string, error)
}

// Artifact is one successfully materialized candidate.
type Artifact struct {
	Candidate provider.Candidate
	Path      string
}

// Pick consumes the ranked pool from the best end (the tail) until want
// artifacts have been materialized or the pool runs dry. A candidate whose
// fetch fails is discarded for this run and never retried; its ID is
// returned so the caller can avoid re-fetching it from the feed. Neither
// fetch failures nor pool exhaustion are errors: the result may simply be
// shorter than want.
//
// The returned artifacts are ordered best-first.
func Pick(ctx context.Context, ranked []provider.Candidate, want int, m Materializer, destDir string) ([]Artifact, []string) {
	var artifacts []Artifact
	var failed []string

	for len(artifacts) < want {
		if len(ranked) == 0 {
			log.Printf("Selection: pool exhausted with %d of %d image(s) materialized", len(artifacts), want)
			break
		}

		best := ranked[len(ranked)-1]
		ranked = ranked[:len(ranked)-1]

		path, err := m.Materialize(ctx, best, destDir)
		if err != nil {
			log.Printf("Selection: fetch failed for %q (%s), skipping: %v", best.ShortTitle(MaxTitleLength), best.URL, err)
			failed = append(failed, best.ID)
			continue
		}

		artifacts = append(artifacts, Artifact{Candidate: best, Path: path})
	}

	return artifacts, failed
}
