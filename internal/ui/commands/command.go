package commands

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"bookdesk/internal/domain"
	"bookdesk/internal/eventbus"
	"bookdesk/internal/logic"
	selectionsvc "bookdesk/internal/ui/services/selection"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Store     logic.BookingStore
	Selection *selectionsvc.Service
	Bus       eventbus.EventBus
}

// DoneMsg reports the outcome of a bulk command to the model
type DoneMsg struct {
	Action  string
	IDs     []string // bookings that were changed
	Skipped []string // selected bookings the action did not apply to
}

// Summary is a one-line status message for the outcome
func (m DoneMsg) Summary() string {
	s := fmt.Sprintf("%s: %d booking(s)", m.Action, len(m.IDs))
	if len(m.Skipped) > 0 {
		s += fmt.Sprintf(", %d skipped", len(m.Skipped))
	}
	return s
}

// bulkCommand applies a status change to every selected booking that allows it
type bulkCommand struct {
	ctx     *CommandContext
	action  string
	status  domain.BookingStatus
	allowed func(*domain.Booking) bool
	event   func(ids []string) domain.DomainEvent
}

// NewPayCommand marks the selected payable bookings as paid
func NewPayCommand(ctx *CommandContext) Command {
	return &bulkCommand{
		ctx:     ctx,
		action:  "paid",
		status:  domain.StatusPaid,
		allowed: (*domain.Booking).Payable,
		event:   func(ids []string) domain.DomainEvent { return domain.PaymentRequestedEvent{IDs: ids} },
	}
}

// NewCancelCommand cancels the selected active bookings
func NewCancelCommand(ctx *CommandContext) Command {
	return &bulkCommand{
		ctx:     ctx,
		action:  "cancelled",
		status:  domain.StatusCancelled,
		allowed: (*domain.Booking).Cancellable,
		event:   func(ids []string) domain.DomainEvent { return domain.BookingsCancelledEvent{IDs: ids} },
	}
}

// Execute performs the status change
func (c *bulkCommand) Execute() tea.Cmd {
	selected := c.ctx.Selection.SelectedIDs()
	if len(selected) == 0 {
		return nil
	}

	var eligible, skipped []string
	for _, id := range selected {
		b := c.ctx.Store.Get(id)
		if b == nil || !c.allowed(b) {
			skipped = append(skipped, id)
			continue
		}
		eligible = append(eligible, id)
	}

	changed := c.ctx.Store.SetStatus(eligible, c.status)
	c.ctx.Selection.Remove(changed)
	log.Printf("Bulk %s: %d changed, %d skipped", c.action, len(changed), len(skipped))

	if len(changed) > 0 && c.ctx.Bus != nil {
		c.ctx.Bus.Publish(c.event(changed))
	}

	msg := DoneMsg{Action: c.action, IDs: changed, Skipped: skipped}
	return func() tea.Msg { return msg }
}
