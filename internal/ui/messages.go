package ui

import (
	"time"

	"bookdesk/internal/domain"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event domain.DomainEvent
}

// tickMsg drives the payment hold countdowns
type tickMsg time.Time

// receiptPagerMsg contains the result of a receipt pager command
type receiptPagerMsg struct {
	bookingID string
	err       error
}
