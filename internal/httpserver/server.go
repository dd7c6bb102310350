package httpserver

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	custommw "github.com/jammehabdou64/documentation/internal/httpserver/middleware"
	"github.com/jammehabdou64/documentation/internal/observability"
	"github.com/jammehabdou64/documentation/internal/render"
	"github.com/jammehabdou64/documentation/internal/site"
	"github.com/jammehabdou64/documentation/public"
)

const (
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultRequestTimeout = 30 * time.Second
)

// Config holds runtime options for the documentation HTTP server.
type Config struct {
	Address        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration

	Site    *site.Site
	Bridge  *render.Bridge
	Metrics *observability.Metrics
	Logger  *zap.Logger

	// Static overrides the embedded assets served under /assets/.
	Static fs.FS
	// AllowIndexing lets crawlers in through robots.txt.
	AllowIndexing bool
}

// New constructs the HTTP server with the middleware stack, one GET route per route table
// entry and the operational endpoints.
func New(cfg Config) (*http.Server, error) {
	if cfg.Site == nil {
		return nil, errors.New("httpserver: site is required")
	}
	if cfg.Bridge == nil {
		return nil, errors.New("httpserver: render bridge is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	static := cfg.Static
	if static == nil {
		embedded, err := public.StaticFS()
		if err != nil {
			return nil, fmt.Errorf("httpserver: embed static: %w", err)
		}
		static = embedded
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	router.Use(chimw.RealIP)
	router.Use(custommw.InjectLogger(logger))
	router.Use(custommw.RequestLogger())
	router.Use(custommw.Metrics(cfg.Metrics))
	router.Use(chimw.Recoverer)
	router.Use(chimw.GetHead)
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(durationOr(cfg.RequestTimeout, defaultRequestTimeout)))

	router.Get("/healthz", healthHandler)
	if cfg.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}
	router.Handle("/assets/*", http.StripPrefix("/assets", custommw.AssetsWithCache(static)))
	router.Get("/sitemap.xml", sitemapHandler(cfg.Site))
	router.Get("/robots.txt", robotsHandler(cfg.Site, cfg.AllowIndexing))

	mountPages(router, cfg.Site, cfg.Bridge)

	return &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       durationOr(cfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout:      durationOr(cfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:       durationOr(cfg.IdleTimeout, defaultIdleTimeout),
	}, nil
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
