package provider

import (
	"net/http"
	"sort"
)

// Factory defines the function signature for creating a feed source.
type Factory func(apiKey string, client *http.Client) FeedSource

var registry = make(map[string]Factory)

// Register registers a new feed source factory under the given name.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// Registered returns the names of all registered feed sources, sorted.
func Registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New instantiates the named feed source, or nil if it is not registered.
func New(name, apiKey string, client *http.Client) FeedSource {
	factory, ok := registry[name]
	if !ok {
		return nil
	}
	return factory(apiKey, client)
}
