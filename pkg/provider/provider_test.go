package provider

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_HasMetadata(t *testing.T) {
	assert.True(t, Candidate{Width: 1920, Height: 1080}.HasMetadata())
	assert.False(t, Candidate{Width: 1920}.HasMetadata())
	assert.False(t, Candidate{Height: 1080}.HasMetadata())
	assert.False(t, Candidate{}.HasMetadata())
}

func TestCandidate_ShortTitle(t *testing.T) {
	c := Candidate{Title: "a very long descriptive wallpaper title"}
	assert.Equal(t, "a very lon...", c.ShortTitle(13))
	assert.Equal(t, c.Title, c.ShortTitle(100))
	assert.Equal(t, "", Candidate{}.ShortTitle(10))
}

type stubFeed struct{ name string }

func (s *stubFeed) Name() string { return s.name }
func (s *stubFeed) FetchCandidates(ctx context.Context, query string, page int) ([]Candidate, error) {
	return nil, nil
}

func TestRegistry(t *testing.T) {
	Register("StubOne", func(apiKey string, client *http.Client) FeedSource {
		return &stubFeed{name: "StubOne"}
	})
	Register("StubTwo", func(apiKey string, client *http.Client) FeedSource {
		return &stubFeed{name: "StubTwo"}
	})

	names := Registered()
	assert.Contains(t, names, "StubOne")
	assert.Contains(t, names, "StubTwo")
	assert.IsIncreasing(t, names)

	feed := New("StubOne", "key", nil)
	require.NotNil(t, feed)
	assert.Equal(t, "StubOne", feed.Name())

	assert.Nil(t, New("Nope", "", nil))
}
