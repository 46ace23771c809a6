package domain

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending         BookingStatus = "pending"
	StatusAwaitingPayment BookingStatus = "awaiting_payment"
	StatusPaid            BookingStatus = "paid"
	StatusCancelled       BookingStatus = "cancelled"
	StatusExpired         BookingStatus = "expired"
)

// ActiveStatuses are bookings that still hold a room
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusAwaitingPayment,
	StatusPaid,
}

// InactiveStatuses are bookings that no longer hold a room
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusExpired,
}

// ParseStatus converts a status name into a BookingStatus
func ParseStatus(s string) (BookingStatus, error) {
	switch st := BookingStatus(s); st {
	case StatusPending, StatusAwaitingPayment, StatusPaid, StatusCancelled, StatusExpired:
		return st, nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// IsActive reports whether the status is one of ActiveStatuses
func (s BookingStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// IsInactive reports whether the status is one of InactiveStatuses
func (s BookingStatus) IsInactive() bool {
	for _, a := range InactiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// Booking represents a room booking
type Booking struct {
	ID            string
	Guest         string
	Room          string
	Nights        int
	AmountCents   int64
	Currency      string
	Status        BookingStatus
	HoldExpiresAt time.Time // zero unless awaiting payment
	CreatedAt     time.Time
}

// Payable reports whether a payment can still be taken for the booking
func (b *Booking) Payable() bool {
	return b.Status == StatusPending || b.Status == StatusAwaitingPayment
}

// Cancellable reports whether the booking can be cancelled
func (b *Booking) Cancellable() bool {
	return b.Status.IsActive()
}

// Amount formats the amount with its currency, e.g. "EUR 120.50"
func (b *Booking) Amount() string {
	sign := ""
	cents := b.AmountCents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s %s%d.%02d", b.Currency, sign, cents/100, cents%100)
}
