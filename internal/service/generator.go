package service

import (
	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/form"
	"github.com/passform/passform-go/internal/model"
)

// GeneratorService handles one-shot password generation.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *crypto.Generator) *GeneratorService {
	return &GeneratorService{gen: gen}
}

// Generate validates the length and produces a password. Omitted class flags
// take the same defaults as a fresh form.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if req.Length == nil {
		return model.GenerateResponse{}, form.ErrLengthRequired
	}
	if err := form.CheckLength(*req.Length); err != nil {
		return model.GenerateResponse{}, err
	}

	defaults := form.New()
	classes := crypto.CharClasses{
		Lowercase: boolOrDefault(req.Lowercase, defaults.Lowercase),
		Uppercase: boolOrDefault(req.Uppercase, defaults.Uppercase),
		Digits:    boolOrDefault(req.Digits, defaults.Digits),
		Symbols:   boolOrDefault(req.Symbols, defaults.Symbols),
	}

	password := s.gen.Generate(*req.Length, classes)
	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
