package views

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"bookdesk/internal/countdown"
	"bookdesk/internal/domain"
	"bookdesk/internal/selection"
)

// lowHoldSeconds is when a countdown turns red
const lowHoldSeconds = 120

// Checkbox renders the tri-state header box
func Checkbox(state selection.State) string {
	switch state {
	case selection.All:
		return "[x]"
	case selection.Partial:
		return "[-]"
	default:
		return "[ ]"
	}
}

// BookingRenderer handles rendering of booking rows
type BookingRenderer struct {
	styles      *Styles
	showAmounts bool
}

// NewBookingRenderer creates a new booking renderer
func NewBookingRenderer(styles *Styles, showAmounts bool) *BookingRenderer {
	return &BookingRenderer{
		styles:      styles,
		showAmounts: showAmounts,
	}
}

// RenderBooking renders one row. cd is nil unless the booking is awaiting payment.
func (r *BookingRenderer) RenderBooking(b *domain.Booking, isCursor, isSelected bool, cd *countdown.Countdown, filterQuery string) string {
	if b == nil {
		return ""
	}

	bg := lipgloss.NewStyle()
	if isCursor {
		bg = r.styles.SelectionBg
	}

	box := Checkbox(selection.None)
	if isSelected {
		box = Checkbox(selection.All)
	}

	guest := fmt.Sprintf("%-20s", truncate(b.Guest, 20))
	if filterQuery != "" && !strings.HasPrefix(strings.ToLower(filterQuery), "status:") {
		guest = r.highlightMatch(guest, filterQuery, bg.Copy().Inherit(r.styles.Highlight), bg)
	} else {
		guest = bg.Render(guest)
	}

	statusStyle := bg.Copy().Foreground(lipgloss.Color(GetStatusColor(b.Status)))

	parts := []string{
		bg.Render(box + " "),
		guest,
		bg.Render(fmt.Sprintf(" %-6s ", truncate(b.Room, 6))),
	}
	if r.showAmounts {
		parts = append(parts, bg.Render(fmt.Sprintf("%14s ", b.Amount())))
	}
	parts = append(parts, statusStyle.Render(fmt.Sprintf("%-16s", b.Status)))

	if b.Status == domain.StatusAwaitingPayment {
		parts = append(parts, bg.Render(" "), r.renderCountdown(b.ID, cd, bg))
	}

	return strings.Join(parts, "")
}

func (r *BookingRenderer) renderCountdown(id string, cd *countdown.Countdown, bg lipgloss.Style) string {
	text, err := countdown.Format(cd)
	if err != nil {
		log.Printf("Countdown for booking %s: %v", id, err)
		return bg.Copy().Inherit(r.styles.Dim).Render(countdown.Placeholder)
	}

	style := r.styles.CountdownOK
	if cd != nil && cd.TotalSeconds < lowHoldSeconds {
		style = r.styles.CountdownLow
	}
	return bg.Copy().Inherit(style).Render(text)
}

// highlightMatch highlights the first case-insensitive occurrence of query
func (r *BookingRenderer) highlightMatch(text, query string, highlight, normal lipgloss.Style) string {
	start, end := foldIndex(text, query)
	if start < 0 {
		return normal.Render(text)
	}
	return normal.Render(text[:start]) + highlight.Render(text[start:end]) + normal.Render(text[end:])
}

// foldIndex returns the byte range in text of the first rune window equal to
// query under case folding, or -1, -1.
func foldIndex(text, query string) (int, int) {
	n := utf8.RuneCountInString(query)
	if n == 0 {
		return -1, -1
	}
	var offsets []int
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	for i := 0; i+n < len(offsets); i++ {
		if strings.EqualFold(text[offsets[i]:offsets[i+n]], query) {
			return offsets[i], offsets[i+n]
		}
	}
	return -1, -1
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
