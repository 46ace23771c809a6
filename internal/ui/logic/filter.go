package logic

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"bookdesk/internal/domain"
)

// minFuzzyQuery is the shortest query that gets a fuzzy fallback
const minFuzzyQuery = 4

// SearchFilter decides which bookings pass the current filter
type SearchFilter struct {
	fuzzyDistance int
}

// NewSearchFilter creates a new search filter. fuzzyDistance 0 disables fuzzy matching.
func NewSearchFilter(fuzzyDistance int) *SearchFilter {
	return &SearchFilter{fuzzyDistance: fuzzyDistance}
}

// Matches checks if a booking matches the given filter query
func (sf *SearchFilter) Matches(b *domain.Booking, filterQuery string) bool {
	query := strings.ToLower(strings.TrimSpace(filterQuery))
	if query == "" {
		return true
	}

	if strings.HasPrefix(query, "status:") {
		return sf.MatchesStatusFilter(b, strings.TrimPrefix(query, "status:"))
	}

	if strings.Contains(strings.ToLower(b.Guest), query) ||
		strings.Contains(strings.ToLower(b.Room), query) ||
		strings.Contains(strings.ToLower(b.ID), query) {
		return true
	}

	return sf.fuzzyGuest(b.Guest, query)
}

// MatchesStatusFilter checks if a booking matches the given status filter
func (sf *SearchFilter) MatchesStatusFilter(b *domain.Booking, filter string) bool {
	switch filter {
	case "active":
		return b.Status.IsActive()
	case "inactive":
		return b.Status.IsInactive()
	case "unpaid", "due":
		return b.Payable()
	default:
		return strings.HasPrefix(string(b.Status), filter)
	}
}

// Visible returns the ids of the bookings matching query, in the given order
func (sf *SearchFilter) Visible(ordered []*domain.Booking, query string) []string {
	ids := make([]string, 0, len(ordered))
	for _, b := range ordered {
		if sf.Matches(b, query) {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

func (sf *SearchFilter) fuzzyGuest(guest, query string) bool {
	if sf.fuzzyDistance <= 0 || utf8.RuneCountInString(query) < minFuzzyQuery {
		return false
	}
	for _, token := range strings.Fields(strings.ToLower(guest)) {
		if levenshtein.ComputeDistance(token, query) <= sf.fuzzyDistance {
			return true
		}
	}
	return false
}
