package wallpaper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	// Feeds occasionally serve webp; register the decoder so verification
	// does not reject them.
	_ "golang.org/x/image/webp"

	"github.com/paperdesk/paperdesk/pkg/provider"
	"github.com/paperdesk/paperdesk/util/log"
)

// NewHTTPClient returns the HTTP client used for all feed and image
// traffic, with timeouts tuned to survive flaky wakes from sleep.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: HTTPClientRequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   HTTPClientDialerTimeout,
				KeepAlive: HTTPClientKeepAlive,
			}).DialContext,
			ResponseHeaderTimeout: HTTPClientResponseHeaderTimeout,
			TLSHandshakeTimeout:   HTTPClientTLSHandshakeTimeout,
		},
	}
}

// HTTPMaterializer downloads a candidate's bytes, verifies they decode as
// an image, and persists them atomically inside the destination directory.
type HTTPMaterializer struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewHTTPMaterializer creates a materializer. A nil limiter disables rate
// limiting.
func NewHTTPMaterializer(client *http.Client, limiter *rate.Limiter) *HTTPMaterializer {
	if client == nil {
		client = NewHTTPClient()
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &HTTPMaterializer{client: client, limiter: limiter}
}

// Materialize fetches the candidate and returns the path of the stored
// file. An already-present file is reused without re-downloading.
func (m *HTTPMaterializer) Materialize(ctx context.Context, c provider.Candidate, destDir string) (string, error) {
	path := filepath.Join(destDir, artifactFilename(c))
	if _, err := os.Stat(path); err == nil {
		log.Debugf("Materializer: %s already on disk, skipping download", path)
		return path, nil
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request for %s: %w", c.URL, err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("request for %s canceled: %w", c.ID, err)
		}
		return "", fmt.Errorf("downloading %s: %w", c.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %s: status %d", c.URL, resp.StatusCode)
	}

	imgBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadBytes))
	if err != nil {
		return "", fmt.Errorf("reading image bytes for %s: %w", c.ID, err)
	}

	// Reject payloads that are not actually images (error pages, truncated
	// bodies) before they reach the wallpaper setter.
	img, err := imaging.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return "", fmt.Errorf("payload for %s is not a decodable image: %w", c.ID, err)
	}

	// Scale absurdly large sources down before caching them. Formats we
	// cannot re-encode (webp) are stored as-is.
	if b := img.Bounds(); b.Dx() > MaxStoredDimension || b.Dy() > MaxStoredDimension {
		if format, ferr := imaging.FormatFromFilename(path); ferr == nil {
			resized := imaging.Fit(img, MaxStoredDimension, MaxStoredDimension, imaging.Lanczos)
			var buf bytes.Buffer
			if err := imaging.Encode(&buf, resized, format); err == nil {
				log.Debugf("Materializer: resized %s from %dx%d to %dx%d",
					c.ID, b.Dx(), b.Dy(), resized.Bounds().Dx(), resized.Bounds().Dy())
				imgBytes = buf.Bytes()
			}
		}
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("creating download directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, imgBytes, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("renaming %s: %w", tmp, err)
	}

	return path, nil
}

// artifactFilename derives a stable on-disk name for a candidate, falling
// back to a fresh UUID when the URL has no usable basename.
func artifactFilename(c provider.Candidate) string {
	name := extractFilenameFromURL(c.URL)
	if name == "" {
		name = uuid.NewString()
	}
	if filepath.Ext(name) == "" {
		name += extForContentType(c.FileType)
	}
	return name
}
