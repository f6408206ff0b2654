package wallpaper

import (
	"strings"
	"time"
)

// tokenResolver produces the concrete text for one query placeholder.
type tokenResolver func(now time.Time) string

// queryTokens is the closed set of placeholders a feed query may contain.
// Unknown placeholders pass through untouched.
var queryTokens = map[string]tokenResolver{
	"${season}": seasonFor,
	"${month}":  func(now time.Time) string { return strings.ToLower(now.Month().String()) },
	"${year}":   func(now time.Time) string { return now.Format("2006") },
}

// ExpandQuery replaces the recognized placeholders in a feed query with
// their current values.
func ExpandQuery(query string, now time.Time) string {
	for token, resolve := range queryTokens {
		if strings.Contains(query, token) {
			query = strings.ReplaceAll(query, token, resolve(now))
		}
	}
	return query
}

// seasonFor maps a month to its meteorological season (northern
// hemisphere).
func seasonFor(now time.Time) string {
	switch now.Month() {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}
