package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventBookingsLoaded    EventType = "BookingsLoaded"
	EventSelectionChanged  EventType = "SelectionChanged"
	EventPaymentRequested  EventType = "PaymentRequested"
	EventBookingsCancelled EventType = "BookingsCancelled"
	EventHoldExpired       EventType = "HoldExpired"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// BookingsLoadedEvent is emitted once the fixture file has been read
type BookingsLoadedEvent struct {
	Source string
	Count  int
}

func (e BookingsLoadedEvent) Type() EventType { return EventBookingsLoaded }

// SelectionChangedEvent carries the diff of a selection update
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// PaymentRequestedEvent is emitted when payment is taken for bookings
type PaymentRequestedEvent struct {
	IDs []string
}

func (e PaymentRequestedEvent) Type() EventType { return EventPaymentRequested }

// BookingsCancelledEvent is emitted when bookings are cancelled
type BookingsCancelledEvent struct {
	IDs []string
}

func (e BookingsCancelledEvent) Type() EventType { return EventBookingsCancelled }

// HoldExpiredEvent is emitted when a payment hold runs out
type HoldExpiredEvent struct {
	ID string
}

func (e HoldExpiredEvent) Type() EventType { return EventHoldExpired }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
