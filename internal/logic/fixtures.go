package logic

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"bookdesk/internal/domain"
)

// fixtureFile is the top-level TOML structure of a bookings file
type fixtureFile struct {
	Bookings []fixtureBooking `toml:"booking"`
}

type fixtureBooking struct {
	ID            string    `toml:"id"`
	Guest         string    `toml:"guest"`
	Room          string    `toml:"room"`
	Nights        int       `toml:"nights"`
	AmountCents   int64     `toml:"amount_cents"`
	Currency      string    `toml:"currency"`
	Status        string    `toml:"status"`
	HoldExpiresAt time.Time `toml:"hold_expires_at"`
	HoldMinutes   int       `toml:"hold_minutes"` // relative to load time
	CreatedAt     time.Time `toml:"created_at"`
}

// LoadBookings reads bookings from a TOML file. Missing ids get a fresh uuid;
// hold_minutes is resolved against now.
func LoadBookings(path string, now time.Time) ([]*domain.Booking, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings file: %w", err)
	}

	bookings, err := ParseBookings(data, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bookings, nil
}

// ParseBookings decodes the TOML bookings format
func ParseBookings(data []byte, now time.Time) ([]*domain.Booking, error) {
	var file fixtureFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse bookings: %w", err)
	}

	seen := make(map[string]bool, len(file.Bookings))
	out := make([]*domain.Booking, 0, len(file.Bookings))
	for i, fb := range file.Bookings {
		b, err := fb.toBooking(now)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", i+1, err)
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("booking %d: duplicate id %q", i+1, b.ID)
		}
		seen[b.ID] = true
		out = append(out, b)
	}
	return out, nil
}

func (fb fixtureBooking) toBooking(now time.Time) (*domain.Booking, error) {
	status := domain.StatusPending
	if fb.Status != "" {
		st, err := domain.ParseStatus(fb.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}
	if strings.TrimSpace(fb.Guest) == "" {
		return nil, fmt.Errorf("guest is required")
	}
	if fb.Nights < 0 || fb.AmountCents < 0 || fb.HoldMinutes < 0 {
		return nil, fmt.Errorf("nights, amount_cents and hold_minutes must not be negative")
	}

	id := fb.ID
	if id == "" {
		id = uuid.NewString()
	}

	hold := fb.HoldExpiresAt
	if hold.IsZero() && fb.HoldMinutes > 0 {
		hold = now.Add(time.Duration(fb.HoldMinutes) * time.Minute)
	}
	if status != domain.StatusAwaitingPayment {
		hold = time.Time{}
	}

	created := fb.CreatedAt
	if created.IsZero() {
		created = now
	}

	currency := fb.Currency
	if currency == "" {
		currency = "EUR"
	}

	return &domain.Booking{
		ID:            id,
		Guest:         fb.Guest,
		Room:          fb.Room,
		Nights:        fb.Nights,
		AmountCents:   fb.AmountCents,
		Currency:      strings.ToUpper(currency),
		Status:        status,
		HoldExpiresAt: hold,
		CreatedAt:     created,
	}, nil
}
