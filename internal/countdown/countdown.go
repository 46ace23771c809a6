package countdown

import (
	"errors"
	"fmt"
	"time"
)

// Placeholder is shown when there is no active countdown
const Placeholder = "--:--"

// ErrInvalidArgument is returned for countdown values that break their
// own invariants. It usually points at a bug in whatever drives the timer.
var ErrInvalidArgument = errors.New("invalid argument")

// Countdown is a remaining duration split for display.
// A nil *Countdown means no countdown is running.
type Countdown struct {
	Minutes      int
	Seconds      int
	TotalSeconds int
}

// Validate checks the field ranges and that the fields agree with each other
func (c Countdown) Validate() error {
	switch {
	case c.Minutes < 0:
		return fmt.Errorf("%w: minutes %d is negative", ErrInvalidArgument, c.Minutes)
	case c.Seconds < 0 || c.Seconds > 59:
		return fmt.Errorf("%w: seconds %d outside [0,59]", ErrInvalidArgument, c.Seconds)
	case c.TotalSeconds != c.Minutes*60+c.Seconds:
		return fmt.Errorf("%w: total %ds does not match %dm%ds", ErrInvalidArgument, c.TotalSeconds, c.Minutes, c.Seconds)
	}
	return nil
}

// Format renders c as zero padded MM:SS, or the placeholder when c is nil
func Format(c *Countdown) (string, error) {
	if c == nil {
		return Placeholder, nil
	}
	if err := c.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", c.Minutes, c.Seconds), nil
}

// MustFormat is Format for render paths: invalid input yields the placeholder
func MustFormat(c *Countdown) string {
	s, err := Format(c)
	if err != nil {
		return Placeholder
	}
	return s
}

// FromDuration splits d into whole minutes and seconds.
// Sub-second remainders are dropped and negative durations clamp to zero.
func FromDuration(d time.Duration) *Countdown {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return &Countdown{
		Minutes:      total / 60,
		Seconds:      total % 60,
		TotalSeconds: total,
	}
}

// FromDeadline returns the countdown from now until deadline.
// A zero deadline means there is nothing to count down to.
func FromDeadline(now, deadline time.Time) *Countdown {
	if deadline.IsZero() {
		return nil
	}
	return FromDuration(deadline.Sub(now))
}
