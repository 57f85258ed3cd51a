package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		toggles   []int
		wantIDs   []int
		wantCount int
	}{
		{
			name:      "single toggle selects",
			toggles:   []int{3},
			wantIDs:   []int{3},
			wantCount: 1,
		},
		{
			name:      "double toggle deselects",
			toggles:   []int{3, 3},
			wantIDs:   []int{},
			wantCount: 0,
		},
		{
			name:      "count equals ids toggled an odd number of times",
			toggles:   []int{1, 2, 3, 2, 1, 1, 4, 4, 4},
			wantIDs:   []int{1, 3, 4},
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			for _, id := range tt.toggles {
				s.Toggle(id)
			}
			assert.Equal(t, tt.wantCount, s.Count())
			assert.Equal(t, tt.wantIDs, s.IDs())
		})
	}
}

func TestSelection_ToggleAll(t *testing.T) {
	all := []int{1, 2, 3}

	s := NewSelection()
	s.ToggleAll(all)
	assert.Equal(t, 3, s.Count(), "first toggleAll selects everything")

	s.ToggleAll(all)
	assert.Equal(t, 0, s.Count(), "second toggleAll clears")

	s.ToggleAll(all)
	assert.Equal(t, 3, s.Count(), "consecutive calls alternate")
}

func TestSelection_ToggleAll_PartialSelection(t *testing.T) {
	s := NewSelection()
	s.Toggle(2)

	// A partial selection fills up rather than clearing.
	s.ToggleAll([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, s.IDs())
}

func TestSelection_ToggleAll_Empty(t *testing.T) {
	s := NewSelection()

	s.ToggleAll(nil)
	assert.Equal(t, 0, s.Count())

	// Idempotent only in the empty/empty case.
	s.ToggleAll(nil)
	assert.Equal(t, 0, s.Count())
}

func TestSelection_Prune(t *testing.T) {
	tests := []struct {
		name     string
		selected []int
		valid    []int
		want     []int
	}{
		{
			name:     "drops ids absent from the list",
			selected: []int{1, 2, 3},
			valid:    []int{2, 3, 4},
			want:     []int{2, 3},
		},
		{
			name:     "empty valid set clears everything",
			selected: []int{1, 2},
			valid:    nil,
			want:     []int{},
		},
		{
			name:     "no-op when all ids survive",
			selected: []int{5, 7},
			valid:    []int{5, 6, 7},
			want:     []int{5, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			for _, id := range tt.selected {
				s.Toggle(id)
			}

			s.Prune(tt.valid)
			assert.Equal(t, tt.want, s.IDs())

			// The invariant: nothing selected is outside the valid set.
			for _, id := range s.IDs() {
				assert.Contains(t, tt.valid, id)
			}
		})
	}
}
