package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/jammehabdou64/documentation/internal/config"
	"github.com/jammehabdou64/documentation/internal/content"
	"github.com/jammehabdou64/documentation/internal/handlers"
	"github.com/jammehabdou64/documentation/internal/layout"
	"github.com/jammehabdou64/documentation/internal/observability"
	"github.com/jammehabdou64/documentation/internal/render"
	"github.com/jammehabdou64/documentation/internal/site"
)

// app holds the immutable components shared by every request.
type app struct {
	cfg     config.Config
	site    *site.Site
	content *content.Store
	layout  *layout.Renderer
	metrics *observability.Metrics
	bridge  *render.Bridge
}

// buildApp wires the site from configuration. Every start-up check runs here: duplicate
// routes, dead sidebar links, missing page content and broken templates.
func buildApp(cfg config.Config) (*app, error) {
	var siteOpts []site.Option
	if cfg.Site.Name != "" {
		siteOpts = append(siteOpts, site.WithName(cfg.Site.Name))
	}
	if cfg.Site.GitHubURL != "" {
		siteOpts = append(siteOpts, site.WithGitHubURL(cfg.Site.GitHubURL))
	}
	if cfg.Site.BaseURL != "" {
		siteOpts = append(siteOpts, site.WithBaseURL(cfg.Site.BaseURL))
	}
	s, err := site.New(siteOpts...)
	if err != nil {
		return nil, err
	}

	var pages fs.FS = content.Embedded()
	if cfg.Content.Dir != "" {
		pages = os.DirFS(cfg.Content.Dir)
	}
	store, err := content.Load(pages)
	if err != nil {
		return nil, err
	}

	layoutOpts := []layout.Option{layout.WithDevMode(cfg.Dev)}
	if cfg.Content.TemplatesDir != "" {
		layoutOpts = append(layoutOpts, layout.WithDir(cfg.Content.TemplatesDir))
	}
	renderer, err := layout.New(layoutOpts...)
	if err != nil {
		return nil, err
	}

	metrics := observability.NewMetrics()
	bridge, err := render.New(render.Config{
		Site:      s,
		Content:   store,
		Layout:    renderer,
		Metrics:   metrics,
		Analytics: handlers.AnalyticsFromConfig(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("build render bridge: %w", err)
	}

	return &app{
		cfg:     cfg,
		site:    s,
		content: store,
		layout:  renderer,
		metrics: metrics,
		bridge:  bridge,
	}, nil
}
