package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/paperdesk/paperdesk/config"
	"github.com/paperdesk/paperdesk/pkg/provider"
	_ "github.com/paperdesk/paperdesk/pkg/provider/wallhaven"
	"github.com/paperdesk/paperdesk/pkg/wallpaper"
	"github.com/paperdesk/paperdesk/util/log"
)

func main() {
	var (
		configPath = flag.String("config", filepath.Join(config.AppDir(), config.ConfigFileName), "path to the YAML config file")
		once       = flag.Bool("once", false, "run a single cycle and exit, ignoring any configured interval")
		count      = flag.Int("count", -1, "override download_count (>0 downloads that many images per display instead of setting a wallpaper)")
		storeKey   = flag.String("store-key", "", "save the given feed API key in the OS keychain and exit")
		version    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Printf("%s %s\n", config.AppName, config.AppVersion)
		return
	}

	if *storeKey != "" {
		if err := config.StoreAPIKey(*storeKey); err != nil {
			log.Fatalf("Failed to store API key: %v", err)
		}
		log.Println("API key stored in the OS keychain.")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *count >= 0 {
		cfg.DownloadCount = *count
	}
	if *once {
		cfg.IntervalMinutes = 0
	}
	if cfg.Verbose {
		n, mode := cfg.Quota()
		log.Printf("Config: provider=%s feed=%q quota=%d mode=%s interval=%dm cache=%d dir=%s",
			cfg.Provider, cfg.DefaultFeed, n, mode, cfg.IntervalMinutes, cfg.CacheLimit, cfg.DownloadDir)
	}

	client := wallpaper.NewHTTPClient()
	feeds := buildFeeds(cfg, client)
	if _, ok := feeds[cfg.Provider]; !ok {
		log.Fatalf("Unknown provider %q. Registered: %v", cfg.Provider, provider.Registered())
	}

	svc := wallpaper.NewService(cfg, wallpaper.DetectOS(), feeds, wallpaper.NewHTTPMaterializer(client, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := svc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Run failed: %v", err)
	}
}

// buildFeeds instantiates every registered feed source with the resolved
// API key and a shared HTTP client.
func buildFeeds(cfg *config.Config, client *http.Client) map[string]provider.FeedSource {
	apiKey := cfg.ResolveAPIKey()
	feeds := make(map[string]provider.FeedSource)
	for _, name := range provider.Registered() {
		feeds[name] = provider.New(name, apiKey, client)
	}
	return feeds
}
