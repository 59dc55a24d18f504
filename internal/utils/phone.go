package utils

import (
	"net/mail"
	"regexp"
)

// E.164: plus sign, first digit non-zero, 2-15 digits total
var phoneRegexp = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

// IsValidPhoneNumber reports whether s is a well-formed E.164 phone number
func IsValidPhoneNumber(s string) bool {
	return phoneRegexp.MatchString(s)
}

// IsValidEmail reports whether s parses as an RFC 5322 address
func IsValidEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}
