package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"bookdesk/internal/ui/input/types"
)

// ConfirmMode asks before cancelling the selected bookings
type ConfirmMode struct {
	count int
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm-cancel"
}

// Count is the number of bookings the prompt refers to
func (m *ConfirmMode) Count() int {
	return m.count
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	m.count = ctx.SelectedCount()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.count = 0
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.CancelBookingsAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// swallow everything else while the prompt is open
	return nil, true
}
