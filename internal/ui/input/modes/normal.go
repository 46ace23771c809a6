package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"bookdesk/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if id := ctx.CurrentBookingID(); id != "" {
			return []types.Action{types.OpenReceiptAction{ID: id}}, true
		}
		return nil, false

	case tea.KeyEsc:
		// Esc drops the filter first, then the selection
		if ctx.IsFiltered() {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case " ":
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.SelectAction{Index: -1}}, true

	case "a":
		return []types.Action{types.ToggleAllAction{}}, true

	case "A":
		return []types.Action{types.DeselectAllAction{}}, true

	case "V":
		return []types.Action{types.SelectRangeAction{}}, true

	case "/", "F":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case "p":
		return []types.Action{types.PayAction{}}, true

	case "x":
		// nothing to confirm; the executor reports the empty selection
		if !ctx.HasSelection() {
			return []types.Action{types.CancelBookingsAction{}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmCancel}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
