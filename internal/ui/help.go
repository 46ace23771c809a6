package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"bookdesk/internal/countdown"
	"bookdesk/internal/domain"
)

// renderHelpContent renders the help popup
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	line := func(k, desc string) string {
		return fmt.Sprintf("  %-12s %s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("bookdesk Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, j/k", "Move up/down"))
	help.WriteString(line("PgUp/PgDn", "Page up/down"))
	help.WriteString(line("g/G", "Go to top/bottom"))
	help.WriteString(line("Enter", "Open booking receipt"))

	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(line("Space", "Toggle booking"))
	help.WriteString(line("a", "Select all visible, or none if all are selected"))
	help.WriteString(line("A", "Deselect visible"))
	help.WriteString(line("V", "Select range from last toggle"))
	help.WriteString(line("Esc", "Clear filter, then selection"))

	help.WriteString(sectionStyle.Render("Bookings"))
	help.WriteString("\n")
	help.WriteString(line("p", "Take payment for selection"))
	help.WriteString(line("x", "Cancel selection"))

	help.WriteString(sectionStyle.Render("Filter"))
	help.WriteString("\n")
	help.WriteString(line("/", "Filter by guest, room or id"))
	filterStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(filterStyle.Render("  Filter examples: status:due, status:paid, status:inactive"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("?", "Toggle this help"))
	help.WriteString(line("q", "Quit"))

	return help.String()
}

// renderReceipt renders the plain text receipt shown in the pager
func renderReceipt(b *domain.Booking, now time.Time) string {
	var r strings.Builder
	fmt.Fprintf(&r, "Booking   %s\n", b.ID)
	fmt.Fprintf(&r, "Guest     %s\n", b.Guest)
	fmt.Fprintf(&r, "Room      %s\n", b.Room)
	fmt.Fprintf(&r, "Nights    %d\n", b.Nights)
	fmt.Fprintf(&r, "Amount    %s\n", b.Amount())
	fmt.Fprintf(&r, "Status    %s\n", b.Status)
	fmt.Fprintf(&r, "Created   %s\n", b.CreatedAt.Format(time.RFC3339))
	if b.Status == domain.StatusAwaitingPayment {
		fmt.Fprintf(&r, "Hold      %s left (until %s)\n",
			countdown.MustFormat(countdown.FromDeadline(now, b.HoldExpiresAt)),
			b.HoldExpiresAt.Format(time.RFC3339))
	}
	return r.String()
}

// PagerOps shows long text in ov while the TUI is suspended
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal is released while paging
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using the ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showReceipt returns a command that pages the receipt for a booking
func (p *PagerOps) showReceipt(b *domain.Booking, now time.Time) tea.Cmd {
	content := renderReceipt(b, now)
	id := b.ID
	return func() tea.Msg {
		return receiptPagerMsg{bookingID: id, err: p.ShowInPager(content)}
	}
}
