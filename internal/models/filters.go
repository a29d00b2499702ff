package models

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filters are the pagination and search parameters accepted by every list endpoint.
type Filters struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search,omitempty"`
}

// Normalize clamps page and limit into their accepted ranges.
func (f Filters) Normalize() Filters {
	if f.Page < 1 {
		f.Page = DefaultPage
	}

	if f.Limit < 1 {
		f.Limit = DefaultLimit
	} else if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}

	f.Search = strings.TrimSpace(f.Search)
	return f
}

// Values renders the filters as query parameters. search is omitted when empty.
func (f Filters) Values() url.Values {
	f = f.Normalize()

	values := url.Values{}
	values.Set("page", strconv.Itoa(f.Page))
	values.Set("limit", strconv.Itoa(f.Limit))
	if f.Search != "" {
		values.Set("search", f.Search)
	}

	return values
}

// FiltersFromQuery parses page, limit and search, ignoring malformed numbers.
func FiltersFromQuery(query url.Values) Filters {
	f := Filters{Search: query.Get("search")}

	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		f.Page = page
	}

	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		f.Limit = limit
	}

	return f.Normalize()
}

type FilteredList[T any] struct {
	Items       []T `json:"items"`
	Total       int `json:"total"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// APIResponse is the envelope the remote API wraps every successful payload in.
type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}
