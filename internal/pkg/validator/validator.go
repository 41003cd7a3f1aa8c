package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TIN validation: 9 digits for the base number, 12 with the branch code.
// Separators are ignored, so "123-456-789-000" and "123456789000" both pass.
func IsValidTIN(tin string) bool {
	d := digits(tin)
	return len(d) == 9 || len(d) == 12
}

// SSS number validation: 10 digits, separators ignored.
func IsValidSSSNumber(sss string) bool {
	return len(digits(sss)) == 10
}

// PhilHealth identification number validation: 12 digits, separators ignored.
func IsValidPhilHealthNumber(pin string) bool {
	return len(digits(pin)) == 12
}

// Pag-IBIG MID validation: 12 digits, separators ignored.
func IsValidPagIBIGNumber(mid string) bool {
	return len(digits(mid)) == 12
}
