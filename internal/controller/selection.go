package controller

import "sort"

// Selection tracks which entity ids are checked for bulk operations. It
// must stay a subset of the ids present in the owning list; callers prune
// it whenever the list changes.
type Selection struct {
	ids map[int]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[int]struct{})}
}

// Toggle flips membership of id.
func (s *Selection) Toggle(id int) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// ToggleAll implements the header checkbox: if everything is already
// selected (and there is something to select), clear; otherwise select
// exactly allIDs.
func (s *Selection) ToggleAll(allIDs []int) {
	if len(s.ids) == len(allIDs) && len(s.ids) > 0 {
		s.Clear()
		return
	}

	s.ids = make(map[int]struct{}, len(allIDs))
	for _, id := range allIDs {
		s.ids[id] = struct{}{}
	}
}

// Prune drops every selected id not present in validIDs. Called after
// deletes and refetches to keep the selection causally consistent with
// the list.
func (s *Selection) Prune(validIDs []int) {
	valid := make(map[int]struct{}, len(validIDs))
	for _, id := range validIDs {
		valid[id] = struct{}{}
	}

	for id := range s.ids {
		if _, ok := valid[id]; !ok {
			delete(s.ids, id)
		}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[int]struct{})
}

// Has reports whether id is selected.
func (s *Selection) Has(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of selected ids. The bulk-action affordance is
// shown only when it is positive.
func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns the selected ids in ascending order.
func (s *Selection) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
