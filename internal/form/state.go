// Package form holds the password form's state as an explicit value.
//
// A State is never mutated in place: every operation returns a new State, so
// callers own exactly one current value and can swap it atomically.
package form

import (
	"errors"
	"fmt"

	"github.com/passform/passform-go/internal/crypto"
)

// Class names one of the four character class toggles.
type Class string

const (
	ClassLowercase Class = "lowercase"
	ClassUppercase Class = "uppercase"
	ClassDigits    Class = "digits"
	ClassSymbols   Class = "symbols"
)

var ErrUnknownClass = errors.New("unknown character class")

// ParseClass maps a toggle name to a Class.
func ParseClass(s string) (Class, error) {
	switch c := Class(s); c {
	case ClassLowercase, ClassUppercase, ClassDigits, ClassSymbols:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClass, s)
}

// State is the form's configuration plus the last generated result.
type State struct {
	LengthField string
	Lowercase   bool
	Uppercase   bool
	Digits      bool
	Symbols     bool
	Password    string
	Generated   bool
}

// New returns the default form: lowercase on, everything else off,
// empty length field, no result.
func New() State {
	return State{Lowercase: true}
}

// SetLength replaces the raw length field.
func (s State) SetLength(field string) State {
	s.LengthField = field
	return s
}

// Set turns class c on or off.
func (s State) Set(c Class, on bool) State {
	switch c {
	case ClassLowercase:
		s.Lowercase = on
	case ClassUppercase:
		s.Uppercase = on
	case ClassDigits:
		s.Digits = on
	case ClassSymbols:
		s.Symbols = on
	}
	return s
}

// Enabled reports whether class c is on.
func (s State) Enabled(c Class) bool {
	switch c {
	case ClassLowercase:
		return s.Lowercase
	case ClassUppercase:
		return s.Uppercase
	case ClassDigits:
		return s.Digits
	case ClassSymbols:
		return s.Symbols
	}
	return false
}

// Toggle flips class c.
func (s State) Toggle(c Class) State {
	return s.Set(c, !s.Enabled(c))
}

func (s State) Classes() crypto.CharClasses {
	return crypto.CharClasses{
		Lowercase: s.Lowercase,
		Uppercase: s.Uppercase,
		Digits:    s.Digits,
		Symbols:   s.Symbols,
	}
}

// Submit validates the length field and generates a password. On a
// validation error the returned State equals s.
func (s State) Submit(g *crypto.Generator) (State, error) {
	length, err := ParseLength(s.LengthField)
	if err != nil {
		return s, err
	}

	s.Password = g.Generate(length, s.Classes())
	s.Generated = true
	return s, nil
}

// Reset discards the result and restores every field to its default.
func (s State) Reset() State {
	return New()
}
