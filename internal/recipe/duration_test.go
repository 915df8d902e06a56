package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT2H30M", "2h 30m"},
		{"PT150M", "150m"},
		{"PT1H", "1h"},
		{"PT45S", "45s"},
		{"PT0S", "0m"},
		{"", ""},
		{"about an hour", "about an hour"},
		{"P1DT2H", "P1DT2H"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), "input %q", tt.in)
	}
}
