package selection

import (
	"slices"

	"bookdesk/internal/domain"
	"bookdesk/internal/eventbus"
	"bookdesk/internal/selection"
)

// Service owns the current selection. Every operation computes a new set
// with the pure functions in the selection package and swaps it in whole.
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new selection service. bus may be nil.
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{
			Selected: selection.NewSet(),
		},
		bus: bus,
	}
}

// Toggle flips the selection of the visible id at index
func (s *Service) Toggle(visible []string, index int) {
	if index < 0 || index >= len(visible) {
		return
	}
	s.replace(selection.ToggleOne(visible[index], s.state.Selected))
	s.state.Anchor = visible[index]
}

// ToggleAll selects or deselects every visible id
func (s *Service) ToggleAll(visible []string) {
	s.replace(selection.ToggleAll(visible, s.state.Selected))
}

// DeselectVisible removes every visible id from the selection
func (s *Service) DeselectVisible(visible []string) {
	s.replace(selection.DeselectAll(visible, s.state.Selected))
}

// SelectRange selects from the last toggled booking to toIndex. Nothing
// happens when that booking is not in visible.
func (s *Service) SelectRange(visible []string, toIndex int) {
	from := slices.Index(visible, s.state.Anchor)
	if s.state.Anchor == "" || from < 0 {
		return
	}
	s.replace(selection.SelectRange(visible, from, toIndex, s.state.Selected))
}

// Remove drops ids from the selection, e.g. after acting on them
func (s *Service) Remove(ids []string) {
	s.replace(s.state.Selected.Without(ids...))
}

// Prune drops ids that known no longer recognises
func (s *Service) Prune(known func(string) bool) {
	s.replace(selection.Prune(s.state.Selected, known))
}

// Clear empties the selection
func (s *Service) Clear() {
	s.replace(selection.NewSet())
	s.state.Anchor = ""
}

// Aggregate summarises the selection over the visible ids
func (s *Service) Aggregate(visible []string) selection.Aggregate {
	return selection.ComputeAggregate(visible, s.state.Selected)
}

// Selected returns the current set. Sets are immutable so it is safe to keep.
func (s *Service) Selected() selection.Set {
	return s.state.Selected
}

func (s *Service) IsSelected(id string) bool {
	return s.state.Selected.Has(id)
}

// SelectedIDs returns the selected ids in sorted order
func (s *Service) SelectedIDs() []string {
	return s.state.Selected.IDs()
}

func (s *Service) Count() int {
	return s.state.Selected.Len()
}

func (s *Service) HasSelection() bool {
	return s.state.Selected.Len() > 0
}

func (s *Service) replace(next selection.Set) {
	prev := s.state.Selected
	s.state.Selected = next

	added, removed := next.Diff(prev)
	if len(added) == 0 && len(removed) == 0 {
		return
	}
	if s.bus != nil {
		s.bus.Publish(domain.SelectionChangedEvent{
			Added:   added,
			Removed: removed,
			Total:   next.Len(),
		})
	}
}
