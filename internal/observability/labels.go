package observability

import (
	"net/http"
	"strings"
	"unicode"
)

const (
	unmatchedRoute = "unmatched"
	unknownPage    = "unknown"
	otherMethod    = "OTHER"

	maxPathLen  = 180
	maxPageLen  = 64
	maxRouteLen = 96
)

// clean drops control characters and truncates to limit runes.
func clean(value string, limit int) string {
	var b strings.Builder
	n := 0
	for _, r := range value {
		if n == limit {
			break
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// RouteLabel turns a matched router pattern into a metric and log label. Requests that
// matched no route share the "unmatched" label so unknown URLs do not add series.
func RouteLabel(pattern string) string {
	if pattern = clean(pattern, maxRouteLen); pattern == "" {
		return unmatchedRoute
	}
	return pattern
}

// PageLabel is the label for a page identifier such as "Docs/orm/Index".
func PageLabel(id string) string {
	if id = clean(strings.TrimSpace(id), maxPageLen); id == "" {
		return unknownPage
	}
	return id
}

// PathValue is the request path as logged: no query string, no control characters.
func PathValue(p string) string {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	if p = clean(p, maxPathLen); p == "" {
		return "/"
	}
	return p
}

// MethodLabel keeps the standard HTTP methods and folds anything else into "OTHER".
func MethodLabel(method string) string {
	switch m := strings.ToUpper(method); m {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions, http.MethodConnect, http.MethodTrace:
		return m
	default:
		return otherMethod
	}
}
