package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type SelectAction struct {
	Index int // -1 for current
}

func (a SelectAction) Type() string { return "select" }

// ToggleAllAction selects every visible booking, or deselects them when all are selected
type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// SelectRangeAction selects from the last toggled row to the cursor
type SelectRangeAction struct{}

func (a SelectRangeAction) Type() string { return "select_range" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// Booking actions
type PayAction struct{}

func (a PayAction) Type() string { return "pay" }

type CancelBookingsAction struct{}

func (a CancelBookingsAction) Type() string { return "cancel_bookings" }

type OpenReceiptAction struct {
	ID string
}

func (a OpenReceiptAction) Type() string { return "open_receipt" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
