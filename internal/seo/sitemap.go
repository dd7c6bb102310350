package seo

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URL is one sitemap entry.
type URL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// WriteSitemap encodes urls as a sitemaps.org document.
func WriteSitemap(w io.Writer, urls []URL) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("seo: write sitemap header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(urlSet{XMLNS: sitemapNS, URLs: urls}); err != nil {
		return fmt.Errorf("seo: encode sitemap: %w", err)
	}
	return enc.Flush()
}

// Robots renders robots.txt. Non-production sites disallow everything.
func Robots(sitemapURL string, allow bool) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if allow {
		b.WriteString("Allow: /\n")
	} else {
		b.WriteString("Disallow: /\n")
	}
	if sitemapURL != "" {
		b.WriteString("Sitemap: " + sitemapURL + "\n")
	}
	return b.String()
}
