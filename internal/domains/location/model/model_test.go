package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medistay/internal/domains/location/model"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cancún", "cancun"},
		{"Bogotá", "bogota"},
		{"Córdoba", "cordoba"},
		{"LIMA", "lima"},
		{"Viña del Mar", "vina del mar"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Fold(tt.in))
		})
	}
}

func TestCandidateCanonical(t *testing.T) {
	candidate := model.Candidate{City: "Lima", State: "Lima", Country: "Peru"}

	assert.Equal(t, "Lima, Lima, Peru", candidate.Canonical())
}

func TestSelectedSync(t *testing.T) {
	candidate := &model.Candidate{City: "Cusco", State: "Cusco", Country: "Peru"}

	selected := model.Selected{Candidate: candidate, FreeText: candidate.Canonical()}
	assert.True(t, selected.Valid())

	// Editing away from the canonical string drops the candidate.
	selected.Sync("Cusco, Cusco")
	assert.Nil(t, selected.Candidate)
	assert.False(t, selected.Valid())

	// Typing the canonical string back does not re-select anything.
	selected.Sync("Cusco, Cusco, Peru")
	assert.Nil(t, selected.Candidate)
	assert.False(t, selected.Valid())
}
