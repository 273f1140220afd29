package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medistay/internal/domains/tag/model"
)

func catalog() []string {
	return []string{model.SentinelAll, model.SentinelNone, "wifi", "parking", "nurse"}
}

func TestSelection_ToggleOrdinary(t *testing.T) {
	sel := model.NewSelection(catalog(), nil)

	sel.Toggle("wifi")
	assert.Equal(t, []string{"wifi"}, sel.IDs())

	sel.Toggle("parking")
	assert.Equal(t, []string{"parking", "wifi"}, sel.IDs())

	sel.Toggle("wifi")
	assert.Equal(t, []string{"parking"}, sel.IDs())
}

func TestSelection_AllSentinel(t *testing.T) {
	sel := model.NewSelection(catalog(), nil)

	sel.Toggle(model.SentinelAll)
	assert.Equal(t, []string{model.SentinelAll, "nurse", "parking", "wifi"}, sel.IDs())

	// toggling "all" again clears everything
	sel.Toggle(model.SentinelAll)
	assert.Empty(t, sel.IDs())
}

func TestSelection_OrdinaryCancelsAll(t *testing.T) {
	sel := model.NewSelection(catalog(), nil)

	sel.Toggle(model.SentinelAll)
	sel.Toggle("wifi")

	assert.False(t, sel.Has(model.SentinelAll), "sentinel and ordinary tags are mutually exclusive")
	assert.False(t, sel.Has("wifi"), "wifi was selected via all, toggling removes it")
	assert.True(t, sel.Has("parking"))
	assert.True(t, sel.Has("nurse"))
}

func TestSelection_NoneSentinel(t *testing.T) {
	sel := model.NewSelection(catalog(), nil)

	sel.Toggle("wifi")
	sel.Toggle("parking")
	sel.Toggle(model.SentinelNone)
	assert.Equal(t, []string{model.SentinelNone}, sel.IDs())

	// an ordinary toggle while "none" is active first removes "none"
	sel.Toggle("nurse")
	assert.Equal(t, []string{"nurse"}, sel.IDs())
}

func TestSelection_EmitsOnEveryChange(t *testing.T) {
	var emitted [][]string

	sel := model.NewSelection(catalog(), func(ids []string) {
		emitted = append(emitted, ids)
	})

	sel.Toggle("wifi")
	sel.Toggle("parking")
	sel.Toggle(model.SentinelNone)

	assert.Len(t, emitted, 3)
	assert.Equal(t, []string{model.SentinelNone}, emitted[2])
}

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		name     string
		icon     string
		expected string
	}{
		{name: "known icon passes through", icon: "wifi", expected: "wifi"},
		{name: "unknown icon falls back", icon: "definitely-not-an-icon", expected: model.IconFallback},
		{name: "empty icon falls back", icon: "", expected: model.IconFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.ResolveIcon(tt.icon))
		})
	}
}
