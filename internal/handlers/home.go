package handlers

import (
	"github.com/jammehabdou64/documentation/internal/content"
	"github.com/jammehabdou64/documentation/internal/seo"
	"github.com/jammehabdou64/documentation/internal/site"
)

// HomeData is the view model for the landing page.
type HomeData struct {
	PageData
	Features []content.Feature
}

// BuildHomeData constructs the view model for the landing page.
func BuildHomeData(s *site.Site, page content.Page, analytics Analytics) HomeData {
	title := firstNonEmpty(page.SEO.Title, s.Name)
	description := firstNonEmpty(page.SEO.Description, page.Summary, s.Tagline)
	canonical := s.AbsoluteURL("/")

	data := HomeData{
		PageData: PageData{
			Title:     firstNonEmpty(page.Title, s.Name),
			Lang:      "en",
			Analytics: analytics,
			SiteName:  s.Name,
			Tagline:   s.Tagline,
			GitHubURL: s.GitHubURL,
			Path:      "/",
			Page:      page,
		},
		Features: page.Features,
	}
	data.SEO = buildSEO(s, title, description, canonical, "website")
	data.SEO.JSONLD = []string{
		seo.JSON(seo.WebSite(s.Name, s.AbsoluteURL("/"), s.Tagline)),
		seo.JSON(seo.Organization(s.Name, s.GitHubURL, "")),
	}
	return data
}
