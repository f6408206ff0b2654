package provider

import (
	"context"
)

// Scores holds the sub-scores computed for a candidate during a ranking
// pass. They are written once per pass and only meaningful afterwards.
type Scores struct {
	Aspect     float64
	Resolution float64
	Popularity float64
	Jitter     float64
	Combined   float64
}

// Candidate represents one image under consideration for a target display.
type Candidate struct {
	ID         string
	URL        string // URL to download the image
	ViewURL    string // URL to view the image in a browser
	Title      string
	Width      int
	Height     int
	Popularity int64 // raw signal from the origin (e.g. favorites count)
	Provider   string
	FileType   string // content type (e.g. "image/jpeg")

	Scores Scores
}

// HasMetadata reports whether the candidate carries the dimensions needed
// for scoring. Literal user-supplied URLs usually do not.
func (c Candidate) HasMetadata() bool {
	return c.Width > 0 && c.Height > 0
}

// ShortTitle returns the title truncated for log output.
func (c Candidate) ShortTitle(max int) string {
	if max > 3 && len(c.Title) > max {
		return c.Title[:max-3] + "..."
	}
	return c.Title
}

// FeedSource defines the interface for a candidate image feed.
type FeedSource interface {
	// Name returns the feed source name.
	Name() string
	// FetchCandidates fetches candidates for the given feed query and page.
	FetchCandidates(ctx context.Context, query string, page int) ([]Candidate, error)
}
