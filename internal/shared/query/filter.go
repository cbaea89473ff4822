// Package query turns raw client-supplied list parameters into a
// deterministic filter/sort/page triple. Malformed numeric input coerces
// to defaults rather than erroring, and sort fields are validated against
// an allow-list before they ever reach the store.
package query

import (
	"strconv"
	"strings"

	"helpdesk/internal/shared/constants"
)

// SortField is one key of a compound sort order, already resolved to a
// store column name.
type SortField struct {
	Column string
	Desc   bool
}

// Page is a normalized 1-indexed page window.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the row offset of the window.
func (p Page) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// NewPage clamps page and limit to sane values: page >= 1, limit in
// [1, MaxLimit], with defaults applied for out-of-range input.
func NewPage(page, limit int) Page {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

// ParsePage parses a raw page parameter. Parse failure and values below 1
// coerce to the default page.
func ParsePage(raw string) int {
	return parsePositiveInt(raw, constants.DefaultPage)
}

// ParseLimit parses a raw limit parameter. Parse failure and values below 1
// coerce to the default limit; values above MaxLimit are capped.
func ParseLimit(raw string) int {
	limit := parsePositiveInt(raw, constants.DefaultLimit)
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return limit
}

func parsePositiveInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// ParseSort parses a comma-separated sort spec such as "-createdAt,priority".
// A leading '-' marks a field as descending. allowed maps API field names to
// store columns; names outside the allow-list are dropped. When nothing
// survives, fallback is used.
func ParseSort(raw string, allowed map[string]string, fallback SortField) []SortField {
	var fields []SortField

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		desc := false
		if strings.HasPrefix(part, "-") {
			desc = true
			part = part[1:]
		}

		column, ok := allowed[part]
		if !ok {
			continue
		}

		fields = append(fields, SortField{Column: column, Desc: desc})
	}

	if len(fields) == 0 {
		return []SortField{fallback}
	}
	return fields
}

// OrderClause renders the sort fields as a SQL ORDER BY expression.
// Columns have already been resolved through the allow-list, so the
// result is safe to pass to the store.
func OrderClause(fields []SortField) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		order := "ASC"
		if f.Desc {
			order = "DESC"
		}
		parts = append(parts, f.Column+" "+order)
	}
	return strings.Join(parts, ", ")
}
