package input

import (
	selectionsvc "bookdesk/internal/ui/services/selection"
	"bookdesk/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Selection *selectionsvc.Service
}

// TotalItems returns the number of visible bookings
func (c *ModelContext) TotalItems() int {
	return len(c.State.Visible)
}

func (c *ModelContext) HasSelection() bool {
	return c.Selection.HasSelection()
}

func (c *ModelContext) SelectedCount() int {
	return c.Selection.Count()
}

func (c *ModelContext) CurrentBookingID() string {
	return c.State.CurrentID()
}

func (c *ModelContext) IsFiltered() bool {
	return c.State.IsFiltered()
}

func (c *ModelContext) FilterQuery() string {
	return c.State.FilterQuery
}
