package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuna(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{name: "Valid number", number: "79927398713", valid: true},
		{name: "Valid order number", number: "2377225624", valid: true},
		{name: "Wrong check digit", number: "79927398710", valid: false},
		{name: "Not a number", number: "invalid", valid: false},
		{name: "Empty", number: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsLuna(tt.number))
		})
	}
}

func TestIsVoucherCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{name: "Issued code", code: "123456789015", valid: true},
		{name: "Leading zeros", code: "000000000018", valid: true},
		{name: "Wrong check digit", code: "123456789012", valid: false},
		{name: "Empty", code: "", valid: false},
		{name: "Single zero", code: "0", valid: false},
		{name: "Two zeros", code: "00", valid: false},
		{name: "Luhn valid but too short", code: "79927398713", valid: false},
		{name: "Too long", code: "1234567890156", valid: false},
		{name: "Spaces inside", code: "1234 5678 90", valid: false},
		{name: "Letters", code: "12345678901a", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsVoucherCode(tt.code))
		})
	}
}

func TestNewVoucherCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := NewVoucherCode()
		assert.NotEmpty(t, code)
		assert.True(t, IsVoucherCode(code), code)
	}
}

type sample struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Cost  int64  `validate:"gt=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name     string
		input    sample
		expected map[string]string
	}{
		{
			name:  "Valid",
			input: sample{Name: "Bolsa", Email: "a@b.cd", Cost: 10},
		},
		{
			name:  "Every field broken",
			input: sample{Email: "nope"},
			expected: map[string]string{
				"Name":  "failed on 'required' rule",
				"Email": "failed on 'email' rule",
				"Cost":  "failed on 'gt' rule",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.expected, Details(err))
		})
	}
}

func TestDetailsNonValidationError(t *testing.T) {
	assert.Nil(t, Details(errors.New("boom")))
}
