package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const EntityName = "location"

// Candidate is a single resolvable place. Display always renders through
// Canonical so the selected value and the free text can be compared verbatim.
type Candidate struct {
	City        string `json:"city"`
	State       string `json:"state"`
	StateCode   string `json:"state_code"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Score       int    `json:"score"`
}

func (c Candidate) Canonical() string {
	return strings.Join([]string{c.City, c.State, c.Country}, ", ")
}

// Selected pairs a chosen candidate with the free text the user last typed.
// Invalidation is one-way: editing the text away from the canonical string
// drops the candidate, but typing it back does not re-select anything.
type Selected struct {
	Candidate *Candidate `json:"candidate,omitempty"`
	FreeText  string     `json:"free_text"`
}

func (s *Selected) Sync(freeText string) {
	s.FreeText = freeText

	if s.Candidate != nil && freeText != s.Candidate.Canonical() {
		s.Candidate = nil
	}
}

func (s *Selected) Valid() bool {
	return s.Candidate != nil && s.FreeText == s.Candidate.Canonical()
}

// Fold lowercases and strips combining diacritical marks so "Cancún" and
// "cancun" compare equal.
func Fold(value string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(folder, value)
	if err != nil {
		return strings.ToLower(value)
	}

	return strings.ToLower(folded)
}
