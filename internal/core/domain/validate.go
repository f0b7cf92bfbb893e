package domain

import "regexp"

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,50}$`)
	// Sri Lankan NIC: old format 9 digits + V/X, new format 12 digits.
	nicRe   = regexp.MustCompile(`^([0-9]{9}[VvXx]|[0-9]{12})$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-() ]+$`)
)

// ValidUsername reports whether the username is 3-50 chars of
// letters, digits and underscores.
func ValidUsername(s string) bool {
	return usernameRe.MatchString(s)
}

// ValidNIC reports whether the national identity card number is well formed.
func ValidNIC(s string) bool {
	return nicRe.MatchString(s)
}

// ValidPhone reports whether the telephone number contains only digits and
// the usual separators. Empty is allowed; the field is optional.
func ValidPhone(s string) bool {
	if s == "" {
		return true
	}
	return phoneRe.MatchString(s)
}

// MinPasswordLength is the weakest password the system accepts.
const MinPasswordLength = 6

// ValidPassword reports whether a password meets the minimum length.
func ValidPassword(s string) bool {
	return len(s) >= MinPasswordLength
}
