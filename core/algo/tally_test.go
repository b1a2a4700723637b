package algo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTallyMode(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
		ok       bool
	}{
		{name: "empty", values: nil, expected: "", ok: false},
		{name: "single", values: []string{"go"}, expected: "go", ok: true},
		{name: "strict majority", values: []string{"py", "go", "go"}, expected: "go", ok: true},
		{name: "tie goes to first seen", values: []string{"py", "go"}, expected: "py", ok: true},
		{name: "tie after interleaving", values: []string{"rs", "go", "go", "rs", "md"}, expected: "rs", ok: true},
		{name: "empty string is a value", values: []string{"", "", "go"}, expected: "", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ModeOf(tt.values)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTallyCounts(t *testing.T) {
	tally := NewTally[time.Month]()
	for _, m := range []time.Month{time.March, time.March, time.July} {
		tally.Add(m)
	}

	assert.Equal(t, 2, tally.Count(time.March))
	assert.Equal(t, 1, tally.Count(time.July))
	assert.Equal(t, 0, tally.Count(time.May))
	assert.Equal(t, 2, tally.Len())
	assert.Equal(t, 3, tally.Total())

	mode, ok := tally.Mode()
	assert.True(t, ok)
	assert.Equal(t, time.March, mode)
}

func TestTallyWeekdayTie(t *testing.T) {
	tally := NewTally[time.Weekday]()
	tally.Add(time.Tuesday)
	tally.Add(time.Wednesday)
	tally.Add(time.Monday)

	mode, ok := tally.Mode()
	assert.True(t, ok)
	assert.Equal(t, time.Tuesday, mode)
}
