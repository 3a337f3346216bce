package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrInvalidLength indicates the mobile number length is not 10 digits
	ErrInvalidLength = errors.New("mobile number must be exactly 10 digits")

	// ErrInvalidFormat indicates the mobile number contains invalid characters
	ErrInvalidFormat = errors.New("mobile number can only contain digits")

	// ErrEmptyMobile indicates the mobile number is empty
	ErrEmptyMobile = errors.New("mobile number cannot be empty")

	// ErrInvalidEmail indicates the email address is malformed
	ErrInvalidEmail = errors.New("invalid email address")
)

// mobileRegex matches digits only
var mobileRegex = regexp.MustCompile(`^\d+$`)

// emailRegex is a shape check, not full RFC 5322 validation
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MobileValidator handles contact mobile number validation
type MobileValidator struct{}

// NewMobileValidator creates a new mobile validator instance
func NewMobileValidator() *MobileValidator {
	return &MobileValidator{}
}

// Validate validates a 10-digit mobile number.
// Accepts format: 9876543210 or 98765 43210 or 98765-43210
// Returns sanitized number (digits only) and error if invalid
func (v *MobileValidator) Validate(mobile string) (string, error) {
	if mobile == "" {
		return "", ErrEmptyMobile
	}

	sanitized := v.Sanitize(mobile)

	if !mobileRegex.MatchString(sanitized) {
		return "", ErrInvalidFormat
	}

	if len(sanitized) != 10 {
		return "", ErrInvalidLength
	}

	return sanitized, nil
}

// Sanitize removes common separators and a leading country code
func (v *MobileValidator) Sanitize(mobile string) string {
	mobile = strings.ReplaceAll(mobile, " ", "")
	mobile = strings.ReplaceAll(mobile, "-", "")
	mobile = strings.ReplaceAll(mobile, "(", "")
	mobile = strings.ReplaceAll(mobile, ")", "")
	mobile = strings.ReplaceAll(mobile, "+", "")
	mobile = strings.ReplaceAll(mobile, ".", "")

	// Strip country code 91 if present
	if strings.HasPrefix(mobile, "91") && len(mobile) == 12 {
		mobile = mobile[2:]
	}

	return mobile
}

// IsValid is a convenience method that returns true if mobile is valid
func (v *MobileValidator) IsValid(mobile string) bool {
	_, err := v.Validate(mobile)
	return err == nil
}

// ValidateEmail checks the basic shape of an email address
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
