package httpserver

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/jammehabdou64/documentation/internal/observability"
	"github.com/jammehabdou64/documentation/internal/routes"
	"github.com/jammehabdou64/documentation/internal/seo"
	"github.com/jammehabdou64/documentation/internal/site"
)

// sitemapHandler lists the canonical path of every page. Alias paths such as /docs are
// left out so each page appears once.
func sitemapHandler(s *site.Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := s.Routes()
		var urls []seo.URL
		for _, entry := range table.Entries() {
			if canonical, _ := table.CanonicalPath(entry.Page); canonical != entry.Path {
				continue
			}
			u := seo.URL{Loc: absoluteURL(s, r, entry.Path), ChangeFreq: "weekly", Priority: "0.8"}
			if entry.Page == routes.PageIndex {
				u.Priority = "1.0"
			}
			urls = append(urls, u)
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		if err := seo.WriteSitemap(w, urls); err != nil {
			observability.FromContext(r.Context()).Error("write sitemap", zap.Error(err))
		}
	}
}

func robotsHandler(s *site.Site, allow bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(seo.Robots(absoluteURL(s, r, "/sitemap.xml"), allow)))
	}
}

// absoluteURL prefers the configured base URL and falls back to the request host.
func absoluteURL(s *site.Site, r *http.Request, p string) string {
	if s.BaseURL != "" {
		return s.AbsoluteURL(p)
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + p
}
