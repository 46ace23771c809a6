package selection

import "bookdesk/internal/selection"

// State holds selection state
type State struct {
	Selected     selection.Set
	Anchor       string // id of the last toggled booking, empty when unset
}
