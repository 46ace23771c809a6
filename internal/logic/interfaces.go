package logic

import "bookdesk/internal/domain"

// BookingStore provides access to booking data
type BookingStore interface {
	Get(id string) *domain.Booking
	All() map[string]*domain.Booking
	Ordered() []*domain.Booking
	SetStatus(ids []string, status domain.BookingStatus) []string
}
