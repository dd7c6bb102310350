package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jammehabdou64/documentation/internal/observability"
	"github.com/jammehabdou64/documentation/internal/render"
	"github.com/jammehabdou64/documentation/internal/routes"
	"github.com/jammehabdou64/documentation/internal/site"
)

// mountPages registers one GET handler per route table entry. Paths are literal, so chi
// matches them exactly; anything else falls through to chi's default 404.
func mountPages(router chi.Router, s *site.Site, bridge *render.Bridge) {
	for _, entry := range s.Routes().Entries() {
		router.Get(entry.Path, pageHandler(bridge, entry.Page))
	}
}

func pageHandler(bridge *render.Bridge, id routes.PageID) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := bridge.Render(w, r, id, render.Props{}); err != nil {
			observability.FromContext(r.Context()).Error("render failed",
				zap.String("page", id.String()),
				zap.Error(err),
			)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}
