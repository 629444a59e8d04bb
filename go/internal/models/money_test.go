package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCrore(t *testing.T) {
	tests := []struct {
		lakhs int
		want  string
	}{
		{20, "₹0.20 Cr"},
		{95, "₹0.95 Cr"},
		{240, "₹2.40 Cr"},
		{1500, "₹15.00 Cr"},
		{0, "₹0.00 Cr"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCrore(tt.lakhs))
	}
}
