// Copyright (c) 2026 NitikBatik. All rights reserved.

// Package pagination provides shared types and helpers for list pages.
//
// # Overview
//
// It standardizes how page-based navigation is requested from the REST backend
// (query parameters) and how the backend's pagination cursor is represented in
// the stores and in the view models.
package pagination

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 12
	// MaxLimit is the upper bound for items per page.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params describes one list request to the backend.
type Params struct {
	Page  int
	Limit int

	// Search is the free-text filter; empty means unfiltered.
	Search string

	// FilterKey names the backend filter (e.g. a category slug), optional.
	FilterKey string
}

// Query encodes the params as backend query parameters.
//
// The backend accepts both "search" and "q"; "search" is sent.
func (p Params) Query() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(p.Page))
	values.Set("limit", strconv.Itoa(p.Limit))

	if search := strings.TrimSpace(p.Search); search != "" {
		values.Set("search", search)
	}
	if p.FilterKey != "" {
		values.Set("filter", p.FilterKey)
	}

	return values
}

// Normalize clamps page and limit to their valid ranges.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		p.Limit = DefaultLimit
	}
	p.Search = strings.TrimSpace(p.Search)
	return p
}

// Cursor is the pagination metadata reported by the backend for a list fetch.
type Cursor struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// NewCursor constructs a cursor, deriving TotalPages from the total count and limit.
func NewCursor(page, limit, totalItems int) Cursor {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	return Cursor{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// HasNext reports whether a page after the current one exists.
func (c Cursor) HasNext() bool {
	return c.Page < c.TotalPages
}

// HasPrev reports whether a page before the current one exists.
func (c Cursor) HasPrev() bool {
	return c.Page > 1
}

// FromRequest parses "page", "limit" and "search" query parameters from a page request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultLimit], or [MaxLimit].
func FromRequest(r *http.Request) Params {
	query := r.URL.Query()

	search := query.Get("search")
	if search == "" {
		search = query.Get("q")
	}

	return Params{
		Page:      parseIntParam(query, "page", DefaultPage),
		Limit:     parseIntParam(query, "limit", DefaultLimit),
		Search:    search,
		FilterKey: query.Get("filter"),
	}.Normalize()
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(query url.Values, key string, defaultVal int) int {
	raw := query.Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
