package crypto

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+"
)

// CharClasses selects which character classes feed the alphabet.
type CharClasses struct {
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// Any reports whether at least one class is enabled.
func (c CharClasses) Any() bool {
	return c.Lowercase || c.Uppercase || c.Digits || c.Symbols
}

// Alphabet concatenates the enabled classes in fixed order:
// uppercase, lowercase, digits, symbols. No enabled class yields "".
func Alphabet(c CharClasses) string {
	var alphabet string
	if c.Uppercase {
		alphabet += UppercaseChars
	}
	if c.Lowercase {
		alphabet += LowercaseChars
	}
	if c.Digits {
		alphabet += DigitChars
	}
	if c.Symbols {
		alphabet += SymbolChars
	}
	return alphabet
}

// Generator draws passwords from an alphabet using an injectable Source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator. A nil src falls back to NewSource().
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewSource()
	}
	return &Generator{src: src}
}

// Generate returns length characters sampled independently, with replacement,
// from the alphabet built from classes. Each index is uniform over
// [0, len(alphabet)-1].
//
// Length is not validated here. A non-positive length or an empty alphabet
// returns the empty string.
func (g *Generator) Generate(length int, classes CharClasses) string {
	alphabet := Alphabet(classes)
	if length <= 0 || alphabet == "" {
		return ""
	}

	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[g.src.IntN(len(alphabet))]
	}
	return string(result)
}
