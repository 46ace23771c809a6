package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"bookdesk/internal/countdown"
	"bookdesk/internal/domain"
	"bookdesk/internal/selection"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Bookings       map[string]*domain.Booking
	Visible        []string
	Cursor         int
	Selected       selection.Set
	Aggregate      selection.Aggregate
	Countdowns     map[string]*countdown.Countdown
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
	FilterQuery    string
	InputMode      string // "normal", "filter" or "confirm-cancel"
	TextPrompt     string // label in front of the text input
	TextInput      string // rendered text input while filtering
	ConfirmCount   int
	ShowHelp       bool
	HelpContent    string
	HelpModel      help.Model
	KeyMap         help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	bookingRender *BookingRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showAmounts bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		bookingRender: NewBookingRenderer(styles, showAmounts),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if state.ShowHelp {
		content.WriteString(r.styles.HelpBox.Render(state.HelpContent))
		return r.styles.Main.Render(content.String())
	}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n")
	content.WriteString(r.renderRows(state))
	content.WriteString(r.renderFooter(state))

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("bookdesk")
	if state.FilterQuery == "" || state.Width == 0 {
		return logo
	}

	filterText := r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery))
	// Main style pads 2 columns on each side
	padding := state.Width - 4 - lipgloss.Width(logo) - lipgloss.Width(filterText)
	if padding < 1 {
		padding = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, strings.Repeat(" ", padding), filterText)
}

// renderHeader shows the tri-state box for the visible rows
func (r *Renderer) renderHeader(state ViewState) string {
	box := Checkbox(state.Aggregate.State())
	summary := fmt.Sprintf("%s %d selected (%d visible of %d)",
		box, state.Selected.Len(), len(state.Visible), len(state.Bookings))
	return r.styles.Header.Render(summary)
}

func (r *Renderer) renderRows(state ViewState) string {
	if len(state.Visible) == 0 {
		if len(state.Bookings) == 0 {
			return r.styles.Dim.Render("No bookings loaded") + "\n"
		}
		return r.styles.Dim.Render("No bookings match the filter") + "\n"
	}

	height := state.ViewportHeight
	if height < 1 {
		height = len(state.Visible)
	}
	start := state.ViewportOffset
	if start < 0 || start >= len(state.Visible) {
		start = 0
	}
	end := start + height
	if end > len(state.Visible) {
		end = len(state.Visible)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		id := state.Visible[i]
		booking := state.Bookings[id]
		b.WriteString(r.bookingRender.RenderBooking(booking, i == state.Cursor, state.Selected.Has(id), state.Countdowns[id], state.FilterQuery))
		b.WriteString("\n")
	}
	if end < len(state.Visible) {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Visible)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderFooter(state ViewState) string {
	var b strings.Builder

	switch state.InputMode {
	case "filter":
		b.WriteString(r.styles.Filter.Render(state.TextPrompt))
		b.WriteString(state.TextInput)
		b.WriteString("\n")
	case "confirm-cancel":
		b.WriteString(r.styles.Confirm.Render(fmt.Sprintf("Cancel %d booking(s)? (y/n)", state.ConfirmCount)))
		b.WriteString("\n")
	}

	if state.StatusMessage != "" {
		b.WriteString(r.styles.Status.Render(state.StatusMessage))
		b.WriteString("\n")
	}

	if state.KeyMap != nil {
		b.WriteString(r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}
	return b.String()
}
