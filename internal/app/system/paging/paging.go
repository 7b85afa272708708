// internal/app/system/paging/paging.go

// Package paging parses the page/limit query parameters used by list
// endpoints and converts them to Mongo skip/limit values.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

const (
	// DefaultLimit is the page size when the client does not send one.
	DefaultLimit = 20

	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
)

// Page holds parsed pagination values.
type Page struct {
	Number int // 1-based page number
	Limit  int
}

// Parse extracts page/limit from the request query. Missing or invalid
// values fall back to page 1 and DefaultLimit; limit is capped at MaxLimit.
func Parse(r *http.Request) Page {
	p := Page{Number: 1, Limit: DefaultLimit}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Number = n
		}
	}
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Limit = n
			if p.Limit > MaxLimit {
				p.Limit = MaxLimit
			}
		}
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Page) Skip() int64 {
	return int64(p.Number-1) * int64(p.Limit)
}

// Limit64 returns the page limit as int64 for Mongo Find options.
func (p Page) Limit64() int64 {
	return int64(p.Limit)
}

// Meta is the pagination block included in list responses.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// MetaFor computes response metadata for a total document count.
func (p Page) MetaFor(total int64) Meta {
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return Meta{Page: p.Number, Limit: p.Limit, Total: total, TotalPages: pages}
}
