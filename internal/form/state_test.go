package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/passform/passform-go/internal/crypto"
)

type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

func TestNewDefaults(t *testing.T) {
	want := State{Lowercase: true}
	if got := New(); got != want {
		t.Errorf("New() = %+v, want %+v", got, want)
	}
}

func TestToggle(t *testing.T) {
	s := New()
	for _, c := range []Class{ClassLowercase, ClassUppercase, ClassDigits, ClassSymbols} {
		before := s.Enabled(c)
		s = s.Toggle(c)
		if s.Enabled(c) == before {
			t.Errorf("Toggle(%s) did not flip", c)
		}
	}
	want := State{Uppercase: true, Digits: true, Symbols: true}
	if s != want {
		t.Errorf("after toggling all: %+v, want %+v", s, want)
	}
}

func TestToggleDoesNotMutateReceiver(t *testing.T) {
	s := New()
	_ = s.Toggle(ClassSymbols)
	if s.Symbols {
		t.Error("Toggle mutated the original state")
	}
}

func TestParseClass(t *testing.T) {
	if c, err := ParseClass("digits"); err != nil || c != ClassDigits {
		t.Errorf("ParseClass(digits) = %q, %v", c, err)
	}
	if _, err := ParseClass("emoji"); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("ParseClass(emoji) error = %v, want ErrUnknownClass", err)
	}
}

func TestSubmit(t *testing.T) {
	gen := crypto.NewGenerator(nil)
	s := New().SetLength("10").Set(ClassDigits, true)

	got, err := s.Submit(gen)
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}
	if !got.Generated {
		t.Error("Generated = false after submit")
	}
	if len(got.Password) != 10 {
		t.Errorf("password length = %d, want 10", len(got.Password))
	}
	alphabet := crypto.LowercaseChars + crypto.DigitChars
	for _, ch := range got.Password {
		if !strings.ContainsRune(alphabet, ch) {
			t.Errorf("unexpected character %q", ch)
		}
	}
}

func TestSubmitGolden(t *testing.T) {
	s := New().SetLength("4").Set(ClassLowercase, false).Set(ClassSymbols, true)
	got, err := s.Submit(crypto.NewGenerator(firstSource{}))
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}
	if got.Password != "!!!!" {
		t.Errorf("Password = %q, want %q", got.Password, "!!!!")
	}
}

func TestSubmitInvalidLengthKeepsState(t *testing.T) {
	prev := State{LengthField: "20", Lowercase: true, Password: "oldpass1", Generated: true}

	got, err := prev.Submit(crypto.NewGenerator(nil))
	if !errors.Is(err, ErrLengthTooLong) {
		t.Fatalf("Submit() error = %v, want ErrLengthTooLong", err)
	}
	if got != prev {
		t.Errorf("state changed on invalid submit: %+v", got)
	}
}

func TestSubmitNoClassesYieldsEmptyPassword(t *testing.T) {
	s := New().SetLength("8").Set(ClassLowercase, false)
	got, err := s.Submit(crypto.NewGenerator(nil))
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}
	if got.Password != "" || !got.Generated {
		t.Errorf("got %+v, want empty password marked generated", got)
	}
}

func TestReset(t *testing.T) {
	s := State{LengthField: "12", Lowercase: false, Uppercase: true, Digits: true, Symbols: true, Password: "x", Generated: true}
	got := s.Reset()
	want := State{Lowercase: true}
	if got != want {
		t.Errorf("Reset() = %+v, want %+v", got, want)
	}
}
