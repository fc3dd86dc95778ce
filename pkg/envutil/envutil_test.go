//go:build !integration

package envutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetIntFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      int
		min      int
		max      int
		expected int
	}{
		{
			name:     "unset returns default",
			value:    "",
			def:      30,
			min:      1,
			max:      600,
			expected: 30,
		},
		{
			name:     "valid value within bounds",
			value:    "120",
			def:      30,
			min:      1,
			max:      600,
			expected: 120,
		},
		{
			name:     "value at lower bound",
			value:    "1",
			def:      30,
			min:      1,
			max:      600,
			expected: 1,
		},
		{
			name:     "value at upper bound",
			value:    "600",
			def:      30,
			min:      1,
			max:      600,
			expected: 600,
		},
		{
			name:     "value below bounds returns default",
			value:    "0",
			def:      30,
			min:      1,
			max:      600,
			expected: 30,
		},
		{
			name:     "value above bounds returns default",
			value:    "601",
			def:      30,
			min:      1,
			max:      600,
			expected: 30,
		},
		{
			name:     "non-numeric returns default",
			value:    "fast",
			def:      30,
			min:      1,
			max:      600,
			expected: 30,
		},
		{
			name:     "negative value within negative bounds",
			value:    "-5",
			def:      0,
			min:      -10,
			max:      10,
			expected: -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TRIGGER_HTTP_TIMEOUT", tt.value)
			got := GetIntFromEnv("TRIGGER_HTTP_TIMEOUT", tt.def, tt.min, tt.max, nil)
			assert.Equal(t, tt.expected, got)
		})
	}
}
