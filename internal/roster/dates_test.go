package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDMY(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"iso date", "1990-03-07", "07/03/1990"},
		{"iso with time suffix", "1990-03-07T00:00:00Z", "07/03/1990"},
		{"unpadded iso parts", "1990-3-7", "07/03/1990"},
		{"already formatted passes through", "07/03/1990", "07/03/1990"},
		{"free text returned as-is", "unknown", "unknown"},
		{"partial iso returned as-is", "1990-03", "1990-03"},
		{"dangling separators returned as-is", "1990--", "1990--"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDMY(tt.in))
		})
	}
}

func TestMaskDMY(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"digits only", "07031990", "07/03/1990"},
		{"partial day", "0", "0"},
		{"slash appears with third digit", "070", "07/0"},
		{"strips letters and punctuation", "07a/03-1990x", "07/03/1990"},
		{"caps at eight digits", "070319901234", "07/03/1990"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskDMY(tt.in))
		})
	}
}

func TestValidDMY(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"07/03/1990", true},
		{"29/02/2024", true},  // leap year
		{"29/02/2023", false}, // not a leap year
		{"31/04/2024", false}, // April has 30 days
		{"00/01/2024", false},
		{"01/13/2024", false},
		{"7/3/1990", false}, // must be zero-padded
		{"1990-03-07", false},
		{"07/03/199", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidDMY(tt.in), tt.in)
	}
}
