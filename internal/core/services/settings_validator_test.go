package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateSettingsUpdate(t *testing.T) {
	tests := []struct {
		name     string
		input    UpdateSettingsInput
		expected []string
	}{
		{
			name:     "empty update is valid",
			input:    UpdateSettingsInput{},
			expected: nil,
		},
		{
			name: "valid full range",
			input: UpdateSettingsInput{
				AccountantEmail: strPtr("ekonom@vetkom.cz"),
				CpdFee:          intPtr(500),
				InvoiceDueDays:  intPtr(14),
			},
			expected: nil,
		},
		{
			name:     "invalid email",
			input:    UpdateSettingsInput{AccountantEmail: strPtr("not-an-email")},
			expected: []string{"Neplatný formát emailové adresy účetní"},
		},
		{
			name:     "email with display name rejected",
			input:    UpdateSettingsInput{AccountantEmail: strPtr("Ekonom <ekonom@vetkom.cz>")},
			expected: []string{"Neplatný formát emailové adresy účetní"},
		},
		{
			name:     "zero fee rejected",
			input:    UpdateSettingsInput{CpdFee: intPtr(0)},
			expected: []string{"Poplatek za CPD musí být kladné číslo v Kč"},
		},
		{
			name:     "due days out of range",
			input:    UpdateSettingsInput{InvoiceDueDays: intPtr(366)},
			expected: []string{"Splatnost faktur musí být mezi 1 a 365 dny"},
		},
		{
			name:     "notification days allow zero",
			input:    UpdateSettingsInput{ActionNotificationDays: intPtr(0)},
			expected: nil,
		},
		{
			name:     "discount over 100 rejected",
			input:    UpdateSettingsInput{DefaultStudentDiscount: intPtr(150)},
			expected: []string{"Výchozí sleva pro studenty musí být mezi 0% a 100%"},
		},
		{
			name: "every violation reported at once",
			input: UpdateSettingsInput{
				CpdFee:                 intPtr(-5),
				DefaultStudentDiscount: intPtr(150),
			},
			expected: []string{
				"Poplatek za CPD musí být kladné číslo v Kč",
				"Výchozí sleva pro studenty musí být mezi 0% a 100%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSettingsUpdate(&tt.input))
		})
	}
}

func TestIsValidInvoiceSeries(t *testing.T) {
	tests := []struct {
		series string
		valid  bool
	}{
		{"324123", true},
		{"124456", true},
		{"224789", true},
		{"999999", true},
		{"100001", true},
		{"024123", false}, // leading zero
		{"300000", false}, // order number 000
		{"32412", false},  // too short
		{"3241234", false},
		{"32a123", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.series, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidInvoiceSeries(tt.series))
		})
	}
}
