package service

import (
	"context"
	"errors"

	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/form"
	"github.com/passform/passform-go/internal/model"
	"github.com/passform/passform-go/internal/repository"
)

const maxPresetIDLength = 36

var (
	ErrPresetIDRequired = errors.New("preset_id is required")
	ErrPresetIDTooLong  = errors.New("preset_id must be at most 36 characters")
	ErrPresetNameEmpty  = errors.New("name is required")
	ErrPresetNoClasses  = errors.New("at least one character class must be enabled")
	ErrPresetNotFound   = errors.New("preset not found")
	ErrPresetExists     = errors.New("preset already exists")
)

// PresetStore is the persistence PresetService needs.
type PresetStore interface {
	Create(ctx context.Context, p *model.Preset) error
	Update(ctx context.Context, p *model.Preset) error
	Get(ctx context.Context, userID int64, presetID string) (*model.Preset, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Preset, error)
	SoftDelete(ctx context.Context, userID int64, presetID string) error
}

// PresetService manages saved generation configurations.
type PresetService struct {
	store PresetStore
	gen   *crypto.Generator
}

// NewPresetService creates a new PresetService.
func NewPresetService(store PresetStore, gen *crypto.Generator) *PresetService {
	return &PresetService{store: store, gen: gen}
}

// CreatePreset saves a new configuration for userID.
func (s *PresetService) CreatePreset(ctx context.Context, userID int64, req model.PresetRequest) (model.PresetResponse, error) {
	if err := validatePresetID(req.PresetID); err != nil {
		return model.PresetResponse{}, err
	}
	p := presetFromRequest(userID, req.PresetID, req)
	if err := validatePreset(p); err != nil {
		return model.PresetResponse{}, err
	}

	if err := s.store.Create(ctx, &p); err != nil {
		if errors.Is(err, repository.ErrDuplicatePreset) {
			return model.PresetResponse{}, ErrPresetExists
		}
		return model.PresetResponse{}, err
	}
	return s.fetch(ctx, userID, req.PresetID)
}

// UpdatePreset replaces a configuration; presetID in the path wins over the body.
func (s *PresetService) UpdatePreset(ctx context.Context, userID int64, presetID string, req model.PresetRequest) (model.PresetResponse, error) {
	if err := validatePresetID(presetID); err != nil {
		return model.PresetResponse{}, err
	}
	p := presetFromRequest(userID, presetID, req)
	if err := validatePreset(p); err != nil {
		return model.PresetResponse{}, err
	}

	if err := s.store.Update(ctx, &p); err != nil {
		return model.PresetResponse{}, mapPresetErr(err)
	}
	return s.fetch(ctx, userID, presetID)
}

// DeletePreset soft-deletes a configuration.
func (s *PresetService) DeletePreset(ctx context.Context, userID int64, presetID string) error {
	return mapPresetErr(s.store.SoftDelete(ctx, userID, presetID))
}

// ListPresets returns the user's live presets.
func (s *PresetService) ListPresets(ctx context.Context, userID int64) ([]model.PresetResponse, error) {
	presets, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]model.PresetResponse, len(presets))
	for i := range presets {
		result[i] = presetToResponse(&presets[i])
	}
	return result, nil
}

// GenerateFromPreset produces a password using a saved configuration.
func (s *PresetService) GenerateFromPreset(ctx context.Context, userID int64, presetID string) (model.GenerateResponse, error) {
	p, err := s.store.Get(ctx, userID, presetID)
	if err != nil {
		return model.GenerateResponse{}, mapPresetErr(err)
	}

	password := s.gen.Generate(p.Length, presetClasses(p))
	return model.GenerateResponse{Password: password, Length: len(password)}, nil
}

func (s *PresetService) fetch(ctx context.Context, userID int64, presetID string) (model.PresetResponse, error) {
	p, err := s.store.Get(ctx, userID, presetID)
	if err != nil {
		return model.PresetResponse{}, mapPresetErr(err)
	}
	return presetToResponse(p), nil
}

// IsPresetValidationError reports whether err should be shown to the client as a 400.
func IsPresetValidationError(err error) bool {
	return errors.Is(err, ErrPresetIDRequired) ||
		errors.Is(err, ErrPresetIDTooLong) ||
		errors.Is(err, ErrPresetNameEmpty) ||
		errors.Is(err, ErrPresetNoClasses) ||
		form.IsValidationError(err)
}

func validatePresetID(id string) error {
	switch {
	case id == "":
		return ErrPresetIDRequired
	case len(id) > maxPresetIDLength:
		return ErrPresetIDTooLong
	}
	return nil
}

func validatePreset(p model.Preset) error {
	if p.Name == "" {
		return ErrPresetNameEmpty
	}
	if err := form.CheckLength(p.Length); err != nil {
		return err
	}
	if !presetClasses(&p).Any() {
		return ErrPresetNoClasses
	}
	return nil
}

func mapPresetErr(err error) error {
	if errors.Is(err, repository.ErrPresetNotFound) {
		return ErrPresetNotFound
	}
	return err
}

func presetFromRequest(userID int64, presetID string, req model.PresetRequest) model.Preset {
	return model.Preset{
		UserID:    userID,
		PresetID:  presetID,
		Name:      req.Name,
		Length:    req.Length,
		Lowercase: req.Lowercase,
		Uppercase: req.Uppercase,
		Digits:    req.Digits,
		Symbols:   req.Symbols,
	}
}

func presetClasses(p *model.Preset) crypto.CharClasses {
	return crypto.CharClasses{
		Lowercase: p.Lowercase,
		Uppercase: p.Uppercase,
		Digits:    p.Digits,
		Symbols:   p.Symbols,
	}
}

func presetToResponse(p *model.Preset) model.PresetResponse {
	return model.PresetResponse{
		PresetID:  p.PresetID,
		Name:      p.Name,
		Length:    p.Length,
		Lowercase: p.Lowercase,
		Uppercase: p.Uppercase,
		Digits:    p.Digits,
		Symbols:   p.Symbols,
		Version:   p.Version,
		UpdatedAt: p.UpdatedAt,
	}
}
