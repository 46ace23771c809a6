// Package selection computes tri-state "select all" summaries over the
// visible part of a list and produces the next selection for toggle events.
//
// All functions are pure. Bulk operations only ever touch the visible ids;
// ids hidden by the current filter keep whatever state they had.
package selection

// State is the three-way summary of selection over the visible items
type State int

const (
	None State = iota
	Partial
	All
)

func (s State) String() string {
	switch s {
	case Partial:
		return "partial"
	case All:
		return "all"
	default:
		return "none"
	}
}

// Aggregate is derived on every read and never stored
type Aggregate struct {
	AllSelected       bool
	PartiallySelected bool
}

// State collapses the aggregate into a single value
func (a Aggregate) State() State {
	switch {
	case a.AllSelected:
		return All
	case a.PartiallySelected:
		return Partial
	default:
		return None
	}
}

// ComputeAggregate summarises selected over visible.
// Duplicate ids in visible are not deduplicated.
func ComputeAggregate(visible []string, selected Set) Aggregate {
	if len(visible) == 0 {
		return Aggregate{}
	}

	hits := 0
	for _, id := range visible {
		if selected.Has(id) {
			hits++
		}
	}

	all := hits == len(visible)
	return Aggregate{
		AllSelected:       all,
		PartiallySelected: !all && hits > 0,
	}
}

// ToggleAll deselects every visible id when all of them are selected,
// otherwise selects every visible id.
func ToggleAll(visible []string, selected Set) Set {
	if ComputeAggregate(visible, selected).AllSelected {
		return DeselectAll(visible, selected)
	}
	return SelectAll(visible, selected)
}

// ToggleOne flips the membership of id
func ToggleOne(id string, selected Set) Set {
	if selected.Has(id) {
		return selected.Without(id)
	}
	return selected.With(id)
}

// SelectAll adds every visible id
func SelectAll(visible []string, selected Set) Set {
	return selected.With(visible...)
}

// DeselectAll removes every visible id
func DeselectAll(visible []string, selected Set) Set {
	return selected.Without(visible...)
}

// SelectRange adds the visible ids between positions from and to, inclusive,
// in either order. Out of range positions are clamped; an empty visible list
// returns selected unchanged.
func SelectRange(visible []string, from, to int, selected Set) Set {
	if len(visible) == 0 {
		return selected
	}
	if from > to {
		from, to = to, from
	}
	from = clamp(from, 0, len(visible)-1)
	to = clamp(to, 0, len(visible)-1)
	return selected.With(visible[from : to+1]...)
}

// Prune drops ids for which known returns false
func Prune(selected Set, known func(id string) bool) Set {
	var stale []string
	for id := range selected.ids {
		if !known(id) {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		return selected
	}
	return selected.Without(stale...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
