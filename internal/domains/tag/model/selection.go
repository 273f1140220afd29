package model

import (
	"slices"
	"sort"
)

// Selection tracks which catalog tags are toggled on. The "all" and "none"
// sentinels are mutually exclusive with every ordinary tag: selecting a
// sentinel clears the rest, and toggling an ordinary tag cancels an active
// sentinel. Every change is emitted synchronously to the onChange callback.
type Selection struct {
	catalog  []string
	selected map[string]struct{}
	onChange func(ids []string)
}

// NewSelection builds an empty selection over the given catalog ids. The
// callback may be nil; when set it fires once per change with the sorted
// selection. Callers should pass a stable callback, not a fresh closure per
// toggle.
func NewSelection(catalog []string, onChange func(ids []string)) *Selection {
	return &Selection{
		catalog:  slices.Clone(catalog),
		selected: map[string]struct{}{},
		onChange: onChange,
	}
}

// Toggle flips the membership of id and applies the sentinel rules.
func (s *Selection) Toggle(id string) {
	switch id {
	case SentinelAll:
		if s.has(SentinelAll) {
			s.clear()
		} else {
			s.clear()
			s.selected[SentinelAll] = struct{}{}

			for _, catalogID := range s.catalog {
				if catalogID == SentinelAll || catalogID == SentinelNone {
					continue
				}

				s.selected[catalogID] = struct{}{}
			}
		}
	case SentinelNone:
		if s.has(SentinelNone) {
			delete(s.selected, SentinelNone)
		} else {
			s.clear()
			s.selected[SentinelNone] = struct{}{}
		}
	default:
		delete(s.selected, SentinelNone)
		delete(s.selected, SentinelAll)

		if s.has(id) {
			delete(s.selected, id)
		} else {
			s.selected[id] = struct{}{}
		}
	}

	s.emit()
}

// IDs returns the current selection, sorted for stable output.
func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

func (s *Selection) Has(id string) bool {
	return s.has(id)
}

func (s *Selection) has(id string) bool {
	_, ok := s.selected[id]

	return ok
}

func (s *Selection) clear() {
	s.selected = map[string]struct{}{}
}

func (s *Selection) emit() {
	if s.onChange != nil {
		s.onChange(s.IDs())
	}
}
