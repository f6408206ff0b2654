package wallpaper

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperdesk/paperdesk/pkg/provider"
)

// pngBytes returns a small but valid PNG payload.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestHTTPMaterializer_Materialize(t *testing.T) {
	payload := pngBytes(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer ts.Close()

	dir := t.TempDir()
	m := NewHTTPMaterializer(ts.Client(), nil)
	c := provider.Candidate{ID: "abc", URL: ts.URL + "/walls/abc.png", FileType: "image/png"}

	path, err := m.Materialize(context.Background(), c, dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "abc.png"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestHTTPMaterializer_ReusesExistingFile(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	dir := t.TempDir()
	existing := filepath.Join(dir, "abc.png")
	require.NoError(t, os.WriteFile(existing, pngBytes(t), 0644))

	m := NewHTTPMaterializer(ts.Client(), nil)
	c := provider.Candidate{ID: "abc", URL: ts.URL + "/walls/abc.png"}

	path, err := m.Materialize(context.Background(), c, dir)

	require.NoError(t, err)
	assert.Equal(t, existing, path)
	assert.Zero(t, hits, "existing artifact must not be re-downloaded")
}

func TestHTTPMaterializer_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	m := NewHTTPMaterializer(ts.Client(), nil)
	c := provider.Candidate{ID: "gone", URL: ts.URL + "/gone.jpg"}

	_, err := m.Materialize(context.Background(), c, t.TempDir())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestHTTPMaterializer_RejectsNonImagePayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>service temporarily unavailable</html>"))
	}))
	defer ts.Close()

	dir := t.TempDir()
	m := NewHTTPMaterializer(ts.Client(), nil)
	c := provider.Candidate{ID: "fake", URL: ts.URL + "/fake.jpg"}

	_, err := m.Materialize(context.Background(), c, dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a decodable image")

	// Nothing may be left behind, not even a temp file.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestHTTPMaterializer_FilenameFallback(t *testing.T) {
	payload := pngBytes(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer ts.Close()

	dir := t.TempDir()
	m := NewHTTPMaterializer(ts.Client(), nil)
	// URL with no usable basename forces the generated-name path.
	c := provider.Candidate{ID: "noname", URL: ts.URL + "/", FileType: "image/png"}

	path, err := m.Materialize(context.Background(), c, dir)

	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(path))
	assert.FileExists(t, path)
}

func TestHTTPMaterializer_ContextCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	m := NewHTTPMaterializer(ts.Client(), nil)
	c := provider.Candidate{ID: "slow", URL: ts.URL + "/slow.jpg"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Materialize(ctx, c, t.TempDir())
	assert.Error(t, err)
}

func TestHTTPMaterializer_DownscalesOversizedImages(t *testing.T) {
	// Wider than MaxStoredDimension on one side.
	huge := image.NewRGBA(image.Rect(0, 0, MaxStoredDimension+320, 8))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, huge))

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	defer ts.Close()

	dir := t.TempDir()
	m := NewHTTPMaterializer(ts.Client(), nil)
	c := provider.Candidate{ID: "huge", URL: ts.URL + "/huge.png", FileType: "image/png"}

	path, err := m.Materialize(context.Background(), c, dir)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	stored, _, err := image.Decode(f)
	require.NoError(t, err)
	assert.LessOrEqual(t, stored.Bounds().Dx(), MaxStoredDimension)
}

func TestArtifactFilename(t *testing.T) {
	tests := []struct {
		name string
		c    provider.Candidate
		want string
	}{
		{"from URL", provider.Candidate{URL: "https://x.cc/full/wallhaven-abc.jpg"}, "wallhaven-abc.jpg"},
		{"query stripped", provider.Candidate{URL: "https://x.cc/img.png?sig=1"}, "img.png"},
		{"extension added", provider.Candidate{URL: "https://x.cc/img", FileType: "image/webp"}, "img.webp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, artifactFilename(tt.c))
		})
	}
}
