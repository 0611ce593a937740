package form

import (
	"errors"
	"strconv"
	"strings"
)

const (
	MinLength = 4
	MaxLength = 16
)

// Validation errors carry the inline messages shown next to the length field.
var (
	ErrLengthRequired  = errors.New("Length of password cannot be empty")
	ErrLengthNotNumber = errors.New("Length of password must be a number")
	ErrLengthTooShort  = errors.New("Password should have min of 4 characters")
	ErrLengthTooLong   = errors.New("Password can have max of 16 characters")
)

// IsValidationError reports whether err is one of the length field errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthRequired) ||
		errors.Is(err, ErrLengthNotNumber) ||
		errors.Is(err, ErrLengthTooShort) ||
		errors.Is(err, ErrLengthTooLong)
}

// ParseLength converts the raw length field into a password length.
// Surrounding whitespace is ignored; fractional values are rejected.
func ParseLength(field string) (int, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, ErrLengthRequired
	}

	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, ErrLengthNotNumber
	}
	if err := CheckLength(n); err != nil {
		return 0, err
	}
	return n, nil
}

// CheckLength enforces the [MinLength, MaxLength] range.
func CheckLength(n int) error {
	switch {
	case n < MinLength:
		return ErrLengthTooShort
	case n > MaxLength:
		return ErrLengthTooLong
	}
	return nil
}
