package wallhaven

import "time"

// serviceName is the name of the wallhaven image service
const serviceName = "Wallhaven"

// Default values for wallhaven.cc image service
const (
	// wallhavenAPISearchURL is the search endpoint of the wallhaven API.
	wallhavenAPISearchURL = "https://wallhaven.cc/api/v1/search"

	// Wallhaven allows 45 API calls per minute for authenticated clients.
	requestsPerMinute = 45
	requestInterval   = time.Minute / requestsPerMinute
)
