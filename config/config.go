package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"
)

// Mode describes what happens to the images selected for a target.
type Mode int

// Run modes. In set-wallpaper mode the best materialized image becomes the
// active background; in download-only mode images are merely left on disk.
const (
	ModeSetWallpaper Mode = iota
	ModeDownloadOnly
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeSetWallpaper:
		return "set-wallpaper"
	case ModeDownloadOnly:
		return "download-only"
	default:
		return "unknown"
	}
}

// Weights holds the multipliers applied to each ranking sub-score.
type Weights struct {
	Aspect     float64 `yaml:"aspect"`
	Resolution float64 `yaml:"resolution"`
	Popularity float64 `yaml:"popularity"`
	Jitter     float64 `yaml:"jitter"`
}

// DefaultWeights returns the reference weighting: the three quality signals
// count fully, jitter only nudges ties.
func DefaultWeights() Weights {
	return Weights{Aspect: 1.0, Resolution: 1.0, Popularity: 1.0, Jitter: 0.25}
}

func (w Weights) isZero() bool {
	return w.Aspect == 0 && w.Resolution == 0 && w.Popularity == 0 && w.Jitter == 0
}

// TargetSource assigns a candidate source to one monitor. Exactly one of
// Feed (a named feed query) or URLs (literal image locators without
// metadata) should be set.
type TargetSource struct {
	Monitor int      `yaml:"monitor"`
	Feed    string   `yaml:"feed,omitempty"`
	URLs    []string `yaml:"urls,omitempty"`
}

// Config holds all settings for a run. It is loaded once at startup and
// treated as read-only while targets are being processed.
type Config struct {
	DownloadDir       string         `yaml:"download_dir"`
	DownloadCount     int            `yaml:"download_count"` // <=0 selects set-wallpaper mode with N=1
	CacheLimit        int            `yaml:"cache_limit"`    // max images kept in the download dir, 0 = unlimited
	IntervalMinutes   int            `yaml:"interval_minutes"`
	Provider          string         `yaml:"provider"`
	APIKey            string         `yaml:"api_key"`
	APIKeyFromKeyring bool           `yaml:"api_key_from_keyring"`
	DefaultFeed       string         `yaml:"default_feed"`
	Targets           []TargetSource `yaml:"targets"`
	Weights           Weights        `yaml:"weights"`
	Verbose           bool           `yaml:"verbose"`
}

// keyringUser is the account name under which the feed API key is stored.
const keyringUser = "feed_api_key"

// AppDir returns the path to the user's application directory.
func AppDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "." + strings.ToLower(AppName)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(AppName))
}

// Default returns a Config populated with usable defaults.
func Default() *Config {
	return &Config{
		DownloadDir:     filepath.Join(AppDir(), DownloadSubDir),
		DownloadCount:   0,
		CacheLimit:      200,
		IntervalMinutes: 0,
		Provider:        "Wallhaven",
		DefaultFeed:     "landscape",
		Weights:         DefaultWeights(),
	}
}

// Load reads the YAML config at path over the defaults. A missing file is
// not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Weights.isZero() {
		cfg.Weights = DefaultWeights()
	}
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = filepath.Join(AppDir(), DownloadSubDir)
	}
	if cfg.Provider == "" {
		cfg.Provider = "Wallhaven"
	}
	return cfg, nil
}

// Quota resolves the per-target download count and the process-wide mode.
func (c *Config) Quota() (int, Mode) {
	if c.DownloadCount <= 0 {
		return 1, ModeSetWallpaper
	}
	return c.DownloadCount, ModeDownloadOnly
}

// SourceFor returns the candidate source assigned to the given monitor
// ordinal. When no target entry matches, the default feed applies.
func (c *Config) SourceFor(monitor int) TargetSource {
	for _, t := range c.Targets {
		if t.Monitor == monitor {
			return t
		}
	}
	return TargetSource{Monitor: monitor, Feed: c.DefaultFeed}
}

// ResolveAPIKey returns the feed API key, preferring the OS keychain when
// configured. An empty key is valid; feeds then serve public content only.
func (c *Config) ResolveAPIKey() string {
	if c.APIKeyFromKeyring {
		key, err := keyring.Get(strings.ToLower(AppName), keyringUser)
		if err == nil && key != "" {
			return key
		}
	}
	return c.APIKey
}

// StoreAPIKey saves the feed API key in the OS keychain.
func StoreAPIKey(key string) error {
	return keyring.Set(strings.ToLower(AppName), keyringUser, key)
}
