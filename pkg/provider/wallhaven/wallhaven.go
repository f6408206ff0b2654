// Package wallhaven implements a candidate feed backed by the wallhaven.cc
// search API.
package wallhaven

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/paperdesk/paperdesk/pkg/provider"
	"github.com/paperdesk/paperdesk/util/log"
)

func init() {
	provider.Register(serviceName, func(apiKey string, client *http.Client) provider.FeedSource {
		return NewFeed(apiKey, client)
	})
}

// Feed implements provider.FeedSource for Wallhaven.
type Feed struct {
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	searchURL  string // overridable for tests
}

// NewFeed creates a new Wallhaven feed.
func NewFeed(apiKey string, client *http.Client) *Feed {
	if client == nil {
		client = http.DefaultClient
	}
	return &Feed{
		apiKey:     apiKey,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Every(requestInterval), 1),
		searchURL:  wallhavenAPISearchURL,
	}
}

// Name returns the service name.
func (f *Feed) Name() string {
	return serviceName
}

// FetchCandidates fetches one page of search results for the given query.
func (f *Feed) FetchCandidates(ctx context.Context, query string, page int) ([]provider.Candidate, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(f.searchURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("page", fmt.Sprint(page))
	q.Set("sorting", "favorites")
	if f.apiKey != "" {
		q.Set("apikey", f.apiKey)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from Wallhaven: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wallhaven API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var response searchResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	var candidates []provider.Candidate
	for _, item := range response.Data {
		log.Debugf("Wallhaven image ID: %s, resolution: %s, favorites: %d", item.ID, item.Resolution, item.Favorites)
		candidates = append(candidates, provider.Candidate{
			ID:         item.ID,
			URL:        item.Path,
			ViewURL:    item.ShortURL,
			Title:      item.ID,
			Width:      item.DimensionX,
			Height:     item.DimensionY,
			Popularity: item.Favorites,
			Provider:   f.Name(),
			FileType:   item.FileType,
		})
	}

	return candidates, nil
}

// --- Wallhaven JSON Structs ---

// searchResponse is the response from the Wallhaven search API
type searchResponse struct {
	Data []searchImage `json:"data"`
	Meta struct {
		CurrentPage int `json:"current_page"`
		LastPage    int `json:"last_page"`
	} `json:"meta"`
}

// searchImage represents an image from the search API.
type searchImage struct {
	ID         string `json:"id"`
	ShortURL   string `json:"short_url"`
	Path       string `json:"path"`
	DimensionX int    `json:"dimension_x"`
	DimensionY int    `json:"dimension_y"`
	Resolution string `json:"resolution"`
	Favorites  int64  `json:"favorites"`
	FileType   string `json:"file_type"`
	Thumbs     thumbs `json:"thumbs"`
}

// thumbs represents the different sizes of the image.
type thumbs struct {
	Large    string `json:"large"`
	Original string `json:"original"`
	Small    string `json:"small"`
}
