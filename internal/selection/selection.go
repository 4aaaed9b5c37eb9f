// Package selection tracks which product ids the user has marked.
package selection

import "slices"

// Set is an insertion-ordered set of ids. The zero value is empty and
// ready to use.
type Set struct {
	ids []string
}

func (s *Set) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

func (s *Set) Len() int {
	return len(s.ids)
}

// Toggle adds id if absent and removes it if present.
func (s *Set) Toggle(id string) {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return
	}
	s.ids = append(s.ids, id)
}

// ToggleAll clears the set when it holds exactly visible, otherwise it
// replaces the set with visible.
func (s *Set) ToggleAll(visible []string) {
	if s.coversExactly(visible) {
		s.ids = nil
		return
	}
	s.ids = slices.Clone(visible)
}

func (s *Set) coversExactly(visible []string) bool {
	if len(s.ids) != len(visible) {
		return false
	}
	for _, id := range visible {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// Remove drops every id in ids.
func (s *Set) Remove(ids ...string) {
	s.ids = slices.DeleteFunc(s.ids, func(id string) bool {
		return slices.Contains(ids, id)
	})
}

// IDs returns a copy of the selected ids in selection order.
func (s *Set) IDs() []string {
	if len(s.ids) == 0 {
		return []string{}
	}
	return slices.Clone(s.ids)
}
