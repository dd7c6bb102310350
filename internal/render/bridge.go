// Package render turns a page identifier plus props into a complete HTML response: it
// resolves the page content, builds the view model and executes the layout shell chosen
// for the page.
package render

import (
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/jammehabdou64/documentation/internal/content"
	"github.com/jammehabdou64/documentation/internal/handlers"
	"github.com/jammehabdou64/documentation/internal/layout"
	"github.com/jammehabdou64/documentation/internal/observability"
	"github.com/jammehabdou64/documentation/internal/routes"
	"github.com/jammehabdou64/documentation/internal/site"
)

const spanName = "render.page"

// ErrUnknownPage is returned for a page identifier with no content.
var ErrUnknownPage = errors.New("render: unknown page")

// Props are extra values handed to the page template as .Props.
type Props map[string]any

// Config wires the dependencies of a Bridge.
type Config struct {
	Site      *site.Site
	Content   *content.Store
	Layout    *layout.Renderer
	Metrics   *observability.Metrics
	Analytics handlers.Analytics
	Tracer    trace.Tracer
}

// Bridge renders pages. It holds only immutable state and is safe for concurrent use.
type Bridge struct {
	site      *site.Site
	content   *content.Store
	layout    *layout.Renderer
	metrics   *observability.Metrics
	analytics handlers.Analytics
	tracer    trace.Tracer
}

// New validates cfg and builds a Bridge. Metrics and Tracer are optional.
func New(cfg Config) (*Bridge, error) {
	switch {
	case cfg.Site == nil:
		return nil, errors.New("render: site is required")
	case cfg.Content == nil:
		return nil, errors.New("render: content store is required")
	case cfg.Layout == nil:
		return nil, errors.New("render: layout renderer is required")
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer("github.com/jammehabdou64/documentation/internal/render")
	}
	return &Bridge{
		site:      cfg.Site,
		content:   cfg.Content,
		layout:    cfg.Layout,
		metrics:   cfg.Metrics,
		analytics: cfg.Analytics,
		tracer:    tracer,
	}, nil
}

// Render writes the page identified by id. On error nothing has been written to w, so the
// caller decides on the response.
func (b *Bridge) Render(w http.ResponseWriter, r *http.Request, id routes.PageID, props Props) error {
	page := observability.PageLabel(id.String())
	ctx, span := b.tracer.Start(r.Context(), spanName, trace.WithAttributes(
		attribute.String("page.id", page),
		attribute.String("page.shell", id.Shell().String()),
		attribute.String("http.target", observability.PathValue(r.URL.Path)),
	))
	defer span.End()

	err := b.render(w, r, id, props)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")

	observability.FromContext(ctx).Debug("page rendered",
		zap.String("page", page),
		zap.String("shell", id.Shell().String()),
	)
	if b.metrics != nil {
		b.metrics.PageRendersTotal.WithLabelValues(page).Inc()
	}
	return nil
}

func (b *Bridge) render(w http.ResponseWriter, r *http.Request, id routes.PageID, props Props) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownPage, id)
	}
	page, ok := b.content.Page(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, id)
	}

	canonical, ok := b.site.Routes().CanonicalPath(id)
	if !ok {
		canonical = r.URL.Path
	}

	var data any
	switch id.Shell() {
	case routes.ShellSite:
		home := handlers.BuildHomeData(b.site, page, b.analytics)
		home.Props = props
		data = home
	default:
		doc := handlers.BuildDocData(b.site, page, canonical, b.analytics)
		doc.Props = props
		data = doc
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := b.layout.Render(w, id.Shell(), data); err != nil {
		w.Header().Del("Content-Type")
		return fmt.Errorf("render %s: %w", id, err)
	}
	return nil
}
