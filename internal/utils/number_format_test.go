package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "80", want: "80%"},
		{in: "3.33", want: "3%"},
		{in: "19.5", want: "20%"},
		{in: "0", want: "0%"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercent(decimal.RequireFromString(tt.in)))
		})
	}
}
