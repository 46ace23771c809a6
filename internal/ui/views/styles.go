package views

import (
	"github.com/charmbracelet/lipgloss"

	"bookdesk/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Help          lipgloss.Style
	HelpBox       lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	Header        lipgloss.Style
	CountdownOK   lipgloss.Style
	CountdownLow  lipgloss.Style
	SelectionBg   lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		CountdownOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		CountdownLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}

// GetStatusColor returns the color for a booking status
func GetStatusColor(status domain.BookingStatus) string {
	switch status {
	case domain.StatusPaid:
		return "78" // green
	case domain.StatusAwaitingPayment:
		return "214" // yellow
	case domain.StatusPending:
		return "33" // blue
	default:
		return "241" // gray for cancelled and expired
	}
}
