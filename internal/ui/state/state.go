package state

import (
	"time"

	"bookdesk/internal/domain"
)

// AppState contains all the application state except the selection,
// which is owned by the selection service
type AppState struct {
	// Booking data
	Bookings map[string]*domain.Booking // id -> booking
	Ordered  []string                   // ids in display order
	Visible  []string                   // ids passing the filter, display order

	// Cursor state
	Cursor         int // index into Visible
	ViewportOffset int
	ViewportHeight int

	// UI state
	ShowHelp      bool
	StatusMessage string
	FilterQuery   string
	Now           time.Time // time of the last tick
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Bookings:       make(map[string]*domain.Booking),
		Ordered:        make([]string, 0),
		Visible:        make([]string, 0),
		ViewportHeight: 20,
	}
}

// SetBookings replaces the booking snapshot, keeping the given order
func (s *AppState) SetBookings(ordered []*domain.Booking) {
	s.Bookings = make(map[string]*domain.Booking, len(ordered))
	s.Ordered = make([]string, 0, len(ordered))
	for _, b := range ordered {
		s.Bookings[b.ID] = b
		s.Ordered = append(s.Ordered, b.ID)
	}
}

// SetVisible replaces the visible ids and keeps the cursor in range
func (s *AppState) SetVisible(ids []string) {
	s.Visible = ids
	s.ClampCursor()
}

// ClampCursor keeps the cursor within the visible rows
func (s *AppState) ClampCursor() {
	if s.Cursor >= len(s.Visible) {
		s.Cursor = len(s.Visible) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// IDAt returns the visible id at index, or "" when out of range
func (s *AppState) IDAt(index int) string {
	if index < 0 || index >= len(s.Visible) {
		return ""
	}
	return s.Visible[index]
}

// CurrentID returns the id under the cursor
func (s *AppState) CurrentID() string {
	return s.IDAt(s.Cursor)
}

// Booking looks up a booking by id
func (s *AppState) Booking(id string) (*domain.Booking, bool) {
	b, ok := s.Bookings[id]
	return b, ok
}

// IsFiltered reports whether a filter is active
func (s *AppState) IsFiltered() bool {
	return s.FilterQuery != ""
}

// Known reports whether id is backed by a booking
func (s *AppState) Known(id string) bool {
	_, ok := s.Bookings[id]
	return ok
}
