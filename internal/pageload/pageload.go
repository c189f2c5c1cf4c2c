// Package pageload turns a CLI target (URL or local HTML file) into a
// processed page context, with TTL caching of fetched HTML.
package pageload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pagechat/pagechat/models"
	"github.com/pagechat/pagechat/pkg/caching"
	"github.com/pagechat/pagechat/pkg/classifier"
	"github.com/pagechat/pagechat/pkg/extractor"
	"github.com/pagechat/pagechat/pkg/fetcher"
)

// Options control how a target is loaded.
type Options struct {
	CacheDir   string
	MaxAge     time.Duration
	ForceFetch bool
}

// Load fetches (or reads) the target, extracts its content, and derives
// the page context. Extraction itself never fails; only I/O can.
func Load(ctx context.Context, logger *slog.Logger, target string, opts Options) (*models.RawPageContent, *models.PageContext, error) {
	rawHTML, pageURL, err := loadHTML(ctx, logger, target, opts)
	if err != nil {
		return nil, nil, err
	}

	raw := extractor.New().Extract(rawHTML, pageURL)
	pctx := classifier.Process(raw)
	logger.Info("page loaded",
		"url", pageURL,
		"page_type", pctx.PageType,
		"sections", len(raw.MainContent.Sections),
		"concepts", len(pctx.MainConcepts))
	return raw, pctx, nil
}

func loadHTML(ctx context.Context, logger *slog.Logger, target string, opts Options) (string, string, error) {
	target = SanitizeURL(target)
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		return loadFile(target)
	}
	if err := validateURL(target); err != nil {
		return "", "", err
	}

	var cache *caching.Cache
	if opts.CacheDir != "" {
		var err error
		cache, err = caching.NewCache(opts.CacheDir, opts.MaxAge)
		if err != nil {
			logger.Warn("cache unavailable, fetching directly", "error", err)
			cache = nil
		}
	}

	if cache != nil && !opts.ForceFetch {
		if html, ok := cache.Get(target); ok {
			logger.Debug("cache hit", "url", target)
			return string(html), target, nil
		}
	}

	html, err := fetcher.NewFetcher().GetHTML(ctx, target)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	if cache != nil {
		if err := cache.Set(target, html); err != nil {
			logger.Warn("failed to cache page", "url", target, "error", err)
		}
	}
	return string(html), target, nil
}

func loadFile(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return string(data), "file://" + abs, nil
}
