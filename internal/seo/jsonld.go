package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, description string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if description != "" {
		m["description"] = description
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList. Items without a URL keep their position
// but omit "item".
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		entry := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
		}
		if it.Item != "" {
			entry["item"] = it.Item
		}
		el = append(el, entry)
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// TechArticle returns a TechArticle schema for a documentation page.
func TechArticle(headline, description, url, publisher string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "TechArticle",
		"headline": headline,
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
		m["mainEntityOfPage"] = url
	}
	if publisher != "" {
		m["publisher"] = map[string]any{"@type": "Organization", "name": publisher}
	}
	return m
}
