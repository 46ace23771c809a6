package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"bookdesk/internal/countdown"
	"bookdesk/internal/domain"
	"bookdesk/internal/selection"
)

func TestCheckbox(t *testing.T) {
	assert.Equal(t, "[ ]", Checkbox(selection.None))
	assert.Equal(t, "[-]", Checkbox(selection.Partial))
	assert.Equal(t, "[x]", Checkbox(selection.All))
}

func viewState() ViewState {
	bookings := map[string]*domain.Booking{
		"a": {ID: "a", Guest: "Ada Lovelace", Room: "204", Currency: "EUR", AmountCents: 100, Status: domain.StatusAwaitingPayment},
		"b": {ID: "b", Guest: "Alan Turing", Room: "101", Currency: "EUR", Status: domain.StatusPaid},
	}
	visible := []string{"a", "b"}
	selected := selection.NewSet("a")
	return ViewState{
		Bookings:   bookings,
		Visible:    visible,
		Selected:   selected,
		Aggregate:  selection.ComputeAggregate(visible, selected),
		Countdowns: map[string]*countdown.Countdown{"a": {Minutes: 5, Seconds: 3, TotalSeconds: 303}},
	}
}

func TestRenderShowsTriStateAndCountdown(t *testing.T) {
	out := NewRenderer(true).Render(viewState())

	assert.Contains(t, out, "[-] 1 selected (2 visible of 2)")
	assert.Contains(t, out, "05:03")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "EUR 1.00")
}

func TestRenderInvalidCountdownShowsPlaceholder(t *testing.T) {
	state := viewState()
	state.Countdowns["a"] = &countdown.Countdown{Minutes: 1, Seconds: 75, TotalSeconds: 135}

	out := NewRenderer(false).Render(state)
	assert.Contains(t, out, countdown.Placeholder)
	assert.NotContains(t, out, "EUR")
}

func TestRenderEmptyStates(t *testing.T) {
	r := NewRenderer(true)

	out := r.Render(ViewState{})
	assert.Contains(t, out, "No bookings loaded")

	state := viewState()
	state.Visible = nil
	state.FilterQuery = "zzz"
	state.Aggregate = selection.ComputeAggregate(nil, state.Selected)
	out = r.Render(state)
	assert.Contains(t, out, "No bookings match the filter")
	assert.Contains(t, out, "[ ] 1 selected")
}

func TestRenderScrollIndicators(t *testing.T) {
	state := viewState()
	state.ViewportHeight = 1
	state.ViewportOffset = 1
	state.Cursor = 1

	out := NewRenderer(true).Render(state)
	assert.Contains(t, out, "↑ 1 more")
	assert.False(t, strings.Contains(out, "Ada Lovelace"))
}

func TestRenderConfirmPrompt(t *testing.T) {
	state := viewState()
	state.InputMode = "confirm-cancel"
	state.ConfirmCount = 3

	assert.Contains(t, NewRenderer(true).Render(state), "Cancel 3 booking(s)? (y/n)")
}

func TestFoldIndexUsesOriginalOffsets(t *testing.T) {
	tests := []struct {
		text, query string
		start, end  int
	}{
		{"Ada Lovelace", "love", 4, 8},
		{"İrem Ada", "ada", 6, 9},
		{"Ölaf Berg", "öL", 0, 3},
		{"Ada", "", -1, -1},
		{"Ada", "adam", -1, -1},
	}

	for _, tt := range tests {
		start, end := foldIndex(tt.text, tt.query)
		assert.Equal(t, tt.start, start, "%q in %q", tt.query, tt.text)
		assert.Equal(t, tt.end, end, "%q in %q", tt.query, tt.text)
	}
}

func TestHighlightKeepsMultibyteText(t *testing.T) {
	r := NewBookingRenderer(NewStyles(), false)
	plain := lipgloss.NewStyle()

	assert.Equal(t, "İrem Ada", r.highlightMatch("İrem Ada", "ADA", plain, plain))
	assert.Equal(t, "İrem Ada", r.highlightMatch("İrem Ada", "zz", plain, plain))
}
