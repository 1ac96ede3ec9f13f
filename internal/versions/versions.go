package versions

import (
	"context"
	"net/http"
	"time"

	"github.com/luban-cli/luban/internal/branding"
	"github.com/luban-cli/luban/internal/logger"
)

// FallbackVersion is used when neither the registry, the cache, nor the CLI
// build provides a usable version.
const FallbackVersion = "1.0.0"

const requestTimeout = 5 * time.Second

// Versions describes the plugin versions available for a new project.
type Versions struct {
	Current     string // version of this CLI build
	Latest      string // latest published service plugin
	LatestMinor string // "<major>.<minor>.0" of Latest
}

// Checker resolves Versions.
type Checker struct {
	current    string
	pkg        string
	registry   string
	cacheDir   string
	maxAge     time.Duration
	httpClient *http.Client
	now        func() time.Time
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Checker) {
		ch.httpClient = c
	}
}

// WithRegistry sets the npm registry base URL.
func WithRegistry(registry string) Option {
	return func(ch *Checker) {
		ch.registry = registry
	}
}

// WithCacheDir stores the lookup cache in dir. Without it nothing is cached.
func WithCacheDir(dir string) Option {
	return func(ch *Checker) {
		ch.cacheDir = dir
	}
}

// WithPackage looks up pkg instead of the service plugin.
func WithPackage(pkg string) Option {
	return func(ch *Checker) {
		ch.pkg = pkg
	}
}

// New creates a Checker for a CLI built as version current.
func New(current string, opts ...Option) *Checker {
	ch := &Checker{
		current:    current,
		pkg:        branding.ServicePlugin(),
		registry:   branding.RegistryURL(),
		maxAge:     DefaultCacheMaxAge,
		httpClient: &http.Client{Timeout: requestTimeout},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// Latest asks the registry for the latest release of the checked package,
// bypassing the cache.
func (c *Checker) Latest(ctx context.Context) (string, error) {
	return c.FetchLatest(ctx, c.pkg)
}

// Get resolves the versions, preferring a fresh cache, then the registry,
// then a stale cache, then the CLI's own version. It never fails.
func (c *Checker) Get(ctx context.Context) *Versions {
	latest := c.latest(ctx)
	minor, err := MinorBase(latest)
	if err != nil {
		minor, _ = MinorBase(FallbackVersion)
	}
	return &Versions{
		Current:     c.current,
		Latest:      latest,
		LatestMinor: minor,
	}
}

func (c *Checker) latest(ctx context.Context) string {
	var cache *Cache
	if c.cacheDir != "" {
		var err error
		cache, err = LoadCache(c.cacheDir)
		if err != nil {
			logger.Debugf("ignoring version cache: %v", err)
		}
		if cache != nil && cache.Package != c.pkg {
			cache = nil
		}
		if cache != nil && !IsCacheStale(cache, c.maxAge) && Valid(cache.LatestVersion) {
			return cache.LatestVersion
		}
	}

	latest, err := c.FetchLatest(ctx, c.pkg)
	if err == nil {
		if c.cacheDir != "" {
			if err := SaveCache(c.cacheDir, &Cache{Package: c.pkg, LatestVersion: latest, CheckedAt: c.now()}); err != nil {
				logger.Debugf("saving version cache: %v", err)
			}
		}
		return latest
	}
	logger.Debugf("version lookup failed: %v", err)

	if cache != nil && Valid(cache.LatestVersion) {
		return cache.LatestVersion
	}
	if Valid(c.current) {
		return c.current
	}
	return FallbackVersion
}
