package wallpaper

import "time"

// NeutralPopularityScore is assigned to every candidate when the pool's
// popularity range is degenerate (all candidates equally popular), so the
// criterion neither helps nor hurts anyone.
const NeutralPopularityScore = 0.5

// Internal constants
const (
	MaxTitleLength   = 50
	MaxDownloadBytes = 100 * 1024 * 1024

	// MaxStoredDimension caps either side of a stored image; anything larger
	// is scaled down before it reaches the disk cache. 7680 covers 8K.
	MaxStoredDimension = 7680
)

// NetworkTimeouts defines the standard durations for various network operations.
const (
	// HTTPClientRequestTimeout is the total time limit for a single HTTP request,
	// including connection, redirects, and reading the response body.
	HTTPClientRequestTimeout = 60 * time.Second

	// HTTPClientDialerTimeout is the timeout for establishing a TCP connection.
	HTTPClientDialerTimeout = 15 * time.Second

	// HTTPClientTLSHandshakeTimeout is the time limit for the TLS handshake for HTTPS.
	HTTPClientTLSHandshakeTimeout = 10 * time.Second

	// HTTPClientResponseHeaderTimeout is the time limit for receiving response headers
	// from the server after the request has been successfully sent.
	HTTPClientResponseHeaderTimeout = 15 * time.Second

	// HTTPClientKeepAlive is the duration for TCP keep-alive probes.
	HTTPClientKeepAlive = 30 * time.Second
)
