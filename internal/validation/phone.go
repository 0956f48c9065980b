package validation

import "regexp"

var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// IsValidPhone checks for a 10-digit Indian mobile number.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

var upiPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)

// IsValidUpiID checks the handle@provider address shape.
func IsValidUpiID(s string) bool {
	return upiPattern.MatchString(s)
}
