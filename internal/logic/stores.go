package logic

import (
	"sort"
	"sync"
	"time"

	"bookdesk/internal/domain"
)

// MemoryBookingStore is an in-memory implementation of BookingStore
type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
}

// NewMemoryBookingStore creates a new memory-based booking store
func NewMemoryBookingStore(bookings ...*domain.Booking) *MemoryBookingStore {
	s := &MemoryBookingStore{
		bookings: make(map[string]*domain.Booking, len(bookings)),
	}
	for _, b := range bookings {
		cp := *b
		s.bookings[b.ID] = &cp
	}
	return s
}

// Get returns a copy of the booking, or nil
func (s *MemoryBookingStore) Get(id string) *domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil
	}
	cp := *b
	return &cp
}

func (s *MemoryBookingStore) All() map[string]*domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*domain.Booking, len(s.bookings))
	for k, v := range s.bookings {
		cp := *v
		result[k] = &cp
	}
	return result
}

// Ordered returns copies sorted by creation time, then ID
func (s *MemoryBookingStore) Ordered() []*domain.Booking {
	all := s.All()
	out := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SetStatus updates the status of the given bookings and returns the ids that
// existed. Leaving awaiting_payment clears the hold deadline.
func (s *MemoryBookingStore) SetStatus(ids []string, status domain.BookingStatus) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated []string
	for _, id := range ids {
		b, ok := s.bookings[id]
		if !ok {
			continue
		}
		b.Status = status
		if status != domain.StatusAwaitingPayment {
			b.HoldExpiresAt = time.Time{}
		}
		updated = append(updated, id)
	}
	return updated
}
