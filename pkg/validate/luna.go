package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// VoucherLength is the number of digits in a voucher code, check digit included.
const VoucherLength = 12

// IsLuna reports whether s is a non-empty digit string with a valid Luhn check digit.
func IsLuna(s string) bool {
	if s == "" {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}

// IsVoucherCode reports whether s has the shape of a code from NewVoucherCode.
func IsVoucherCode(s string) bool {
	if len(s) != VoucherLength {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return IsLuna(s)
}

// NewVoucherCode returns a random numeric code whose last digit is a Luhn check digit.
func NewVoucherCode() string {
	return goluhn.Generate(VoucherLength)
}
