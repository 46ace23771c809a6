package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"bookdesk/internal/eventbus"
	"bookdesk/internal/logic"
	selectionsvc "bookdesk/internal/ui/services/selection"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(store logic.BookingStore, sel *selectionsvc.Service, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Store:     store,
			Selection: sel,
			Bus:       bus,
		},
	}
}

// ExecutePay creates and executes a pay command
func (e *Executor) ExecutePay() tea.Cmd {
	return NewPayCommand(e.ctx).Execute()
}

// ExecuteCancel creates and executes a cancel command
func (e *Executor) ExecuteCancel() tea.Cmd {
	return NewCancelCommand(e.ctx).Execute()
}
