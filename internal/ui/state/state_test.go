package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookdesk/internal/domain"
)

func TestSetBookingsKeepsOrder(t *testing.T) {
	s := NewAppState()
	s.SetBookings([]*domain.Booking{{ID: "b"}, {ID: "a"}})

	assert.Equal(t, []string{"b", "a"}, s.Ordered)
	assert.True(t, s.Known("a"))
	assert.False(t, s.Known("z"))
}

func TestSetVisibleClampsCursor(t *testing.T) {
	s := NewAppState()
	s.Cursor = 5
	s.SetVisible([]string{"a", "b"})
	assert.Equal(t, 1, s.Cursor)
	assert.Equal(t, "b", s.CurrentID())

	s.SetVisible(nil)
	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, "", s.CurrentID())
}
