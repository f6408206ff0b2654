package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/paperdesk/paperdesk/config"
	"github.com/paperdesk/paperdesk/pkg/provider"
	"github.com/paperdesk/paperdesk/util"
	"github.com/paperdesk/paperdesk/util/log"
)

// Service runs the fetch → rank → select → apply cycle for every detected
// target. Targets are processed strictly one after another; the only state
// shared between them is the read-only config and the avoid set.
type Service struct {
	cfg   *config.Config
	os    OS
	feeds map[string]provider.FeedSource
	mat   Materializer

	page    *util.SafeCounter
	running *util.SafeFlag
	avoid   map[string]bool

	now func() time.Time // test hook
}

// NewService wires a service from its collaborators.
func NewService(cfg *config.Config, osImpl OS, feeds map[string]provider.FeedSource, mat Materializer) *Service {
	return &Service{
		cfg:     cfg,
		os:      osImpl,
		feeds:   feeds,
		mat:     mat,
		page:    util.NewSafeIntWithValue(1),
		running: util.NewSafeBoolWithValue(false),
		avoid:   make(map[string]bool),
		now:     time.Now,
	}
}

// RunOnce processes every target once. Per-target failures are isolated:
// the worst outcome for one display is an empty result, never an abort of
// the remaining displays.
func (s *Service) RunOnce(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		log.Println("Run skipped - previous cycle still in progress.")
		return nil
	}
	defer s.running.Set(false)

	targets, err := s.os.GetMonitors()
	if err != nil {
		return fmt.Errorf("detecting displays: %w", err)
	}
	if len(targets) == 0 {
		return errors.New("no displays detected")
	}

	if err := os.MkdirAll(s.cfg.DownloadDir, 0755); err != nil {
		return fmt.Errorf("creating download directory: %w", err)
	}

	want, mode := s.cfg.Quota()
	log.Printf("Processing %d target(s), quota %d per target, mode %s", len(targets), want, mode)

	starved := false
	for _, target := range targets {
		pool := s.withoutAvoided(s.resolvePool(ctx, target))
		ranked := Rank(target, pool, s.cfg.Weights)

		artifacts, failed := Pick(ctx, ranked, want, s.mat, s.cfg.DownloadDir)
		for _, id := range failed {
			s.avoid[id] = true
		}
		if len(artifacts) < want {
			starved = true
		}

		if len(artifacts) == 0 {
			log.Printf("Target %d: nothing to set, nothing downloaded", target.ID)
			continue
		}

		if mode == config.ModeSetWallpaper {
			best := artifacts[0]
			if err := s.os.SetWallpaper(best.Path, target.ID); err != nil {
				log.Printf("Target %d: failed to set wallpaper: %v", target.ID, err)
			} else {
				log.Printf("Target %d: wallpaper set to %q", target.ID, best.Candidate.ShortTitle(MaxTitleLength))
			}
		} else {
			log.Printf("Target %d: downloaded %d image(s)", target.ID, len(artifacts))
		}
	}

	if starved {
		log.Printf("Some targets fell short of quota. Advancing feed page to %d.", s.page.Increment())
	}

	if err := TrimCache(s.cfg.DownloadDir, s.cfg.CacheLimit); err != nil {
		log.Printf("Cache trim failed: %v", err)
	}
	return nil
}

// Run executes one cycle immediately and then, when an interval is
// configured, keeps cycling until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.RunOnce(ctx); err != nil {
		return err
	}
	if s.cfg.IntervalMinutes <= 0 {
		return nil
	}

	ticker := time.NewTicker(time.Duration(s.cfg.IntervalMinutes) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.RunOnce(ctx); err != nil {
				log.Printf("Cycle failed: %v", err)
			}
		}
	}
}

// resolvePool produces the candidate pool for one target: either literal
// locators straight from the config, or a page of feed results. Feed
// failures degrade to an empty pool with a warning.
func (s *Service) resolvePool(ctx context.Context, target Target) []provider.Candidate {
	src := s.cfg.SourceFor(target.ID)

	if len(src.URLs) > 0 {
		pool := make([]provider.Candidate, 0, len(src.URLs))
		for _, u := range src.URLs {
			pool = append(pool, provider.Candidate{ID: u, URL: u})
		}
		return pool
	}

	if src.Feed == "" {
		log.Printf("Target %d: no candidate source configured", target.ID)
		return nil
	}

	feed, ok := s.feeds[s.cfg.Provider]
	if !ok {
		log.Printf("Target %d: feed source %q not registered", target.ID, s.cfg.Provider)
		return nil
	}

	query := ExpandQuery(src.Feed, s.now())
	pool, err := feed.FetchCandidates(ctx, query, s.page.Value())
	if err != nil {
		log.Printf("Target %d: fetch from %s failed: %v", target.ID, feed.Name(), err)
		return nil
	}
	log.Debugf("Target %d: feed %q returned %d candidate(s)", target.ID, query, len(pool))
	return pool
}

func (s *Service) withoutAvoided(pool []provider.Candidate) []provider.Candidate {
	if len(s.avoid) == 0 {
		return pool
	}
	kept := pool[:0]
	for _, c := range pool {
		if !s.avoid[c.ID] {
			kept = append(kept, c)
		}
	}
	return kept
}
