// Package pagination maps page/limit query values onto skip/limit pairs for
// store queries.
package pagination

import (
	"strconv"
)

const (
	// DefaultLimit of 0 returns every matching document.
	DefaultLimit = 0
	// DefaultPage is the first page.
	DefaultPage = 1
)

// GetPagination computes skip and limit from raw query-string values.
// Negative values are coerced by absolute value; malformed or zero values
// fall back to the defaults.
func GetPagination(rawLimit, rawPage string) (skip, limit int64) {
	limit = absOrDefault(rawLimit, DefaultLimit)
	page := absOrDefault(rawPage, DefaultPage)
	skip = (page - 1) * limit
	return skip, limit
}

func absOrDefault(raw string, def int64) int64 {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value == 0 {
		return def
	}
	if value < 0 {
		return -value
	}
	return value
}
