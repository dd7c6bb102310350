package routes

import (
	"fmt"
	"sort"
	"strings"
)

// Entry binds an exact request path to a page.
type Entry struct {
	Path string
	Page PageID
}

// Table maps request paths to pages by exact string equality.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	entries []Entry
	index   map[string]PageID
}

// DuplicateError reports paths that were registered more than once. The table keeps the
// first registration of each.
type DuplicateError struct {
	Paths []string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("routes: duplicate paths [%s]", strings.Join(e.Paths, ", "))
}

// NewTable builds a table from entries in registration order. Duplicates keep the first
// registration and are reported through *DuplicateError alongside the usable table.
// Entries with an empty path or an undeclared page are rejected outright.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]PageID, len(entries)),
	}
	var dups []string
	for _, e := range entries {
		if e.Path == "" || !strings.HasPrefix(e.Path, "/") {
			return nil, fmt.Errorf("routes: invalid path %q", e.Path)
		}
		if !e.Page.Valid() {
			return nil, fmt.Errorf("routes: path %s bound to undeclared page %d", e.Path, int(e.Page))
		}
		if _, exists := t.index[e.Path]; exists {
			dups = append(dups, e.Path)
			continue
		}
		t.index[e.Path] = e.Page
		t.entries = append(t.entries, e)
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		return t, &DuplicateError{Paths: dups}
	}
	return t, nil
}

// Lookup returns the page registered for path. Matching is exact: no prefixes,
// wildcards, parameters or trailing-slash folding.
func (t *Table) Lookup(path string) (PageID, bool) {
	if t == nil {
		return 0, false
	}
	id, ok := t.index[path]
	return id, ok
}

// Has reports whether path is registered.
func (t *Table) Has(path string) bool {
	_, ok := t.Lookup(path)
	return ok
}

// Entries returns a copy of the registered entries in registration order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of registered paths.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// CanonicalPath returns the first registered path for id. "/docs" and "/docs/introduction"
// both serve the introduction page; the latter is registered first and is canonical.
func (t *Table) CanonicalPath(id PageID) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, e := range t.entries {
		if e.Page == id {
			return e.Path, true
		}
	}
	return "", false
}
