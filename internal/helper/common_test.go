package helper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{"zero", "0", "₹0.00"},
		{"small", "42.5", "₹42.50"},
		{"thousands", "19900", "₹19,900.00"},
		{"millions", "1234567.5", "₹1,234,567.50"},
		{"exact grouping boundary", "1000", "₹1,000.00"},
		{"negative", "-1500.75", "-₹1,500.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.expected, FormatCurrency(amount, "₹"))
		})
	}
}

func TestValidateInput(t *testing.T) {
	type schema struct {
		Name string `validate:"required"`
	}
	assert.Error(t, ValidateInput(&schema{}))
	assert.NoError(t, ValidateInput(&schema{Name: "Alice"}))
}
