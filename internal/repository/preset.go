package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passform/passform-go/internal/model"
)

var (
	ErrPresetNotFound  = errors.New("preset not found")
	ErrDuplicatePreset = errors.New("preset already exists")
)

// PresetRepository persists saved generation configurations.
type PresetRepository struct {
	db *sql.DB
}

// NewPresetRepository creates a new PresetRepository.
func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

const presetColumns = `id, user_id, preset_id, name, length, lowercase, uppercase, digits, symbols,
	version, created_at, updated_at, deleted`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner, p *model.Preset) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.PresetID, &p.Name, &p.Length,
		&p.Lowercase, &p.Uppercase, &p.Digits, &p.Symbols,
		&p.Version, &p.CreatedAt, &p.UpdatedAt, &p.Deleted,
	)
}

// Create inserts a new preset at version 1. A soft-deleted preset with the
// same ID is revived in place.
func (r *PresetRepository) Create(ctx context.Context, p *model.Preset) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO presets (user_id, preset_id, name, length, lowercase, uppercase, digits, symbols, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1)
		ON DUPLICATE KEY UPDATE
			name      = IF(deleted, VALUES(name), name),
			length    = IF(deleted, VALUES(length), length),
			lowercase = IF(deleted, VALUES(lowercase), lowercase),
			uppercase = IF(deleted, VALUES(uppercase), uppercase),
			digits    = IF(deleted, VALUES(digits), digits),
			symbols   = IF(deleted, VALUES(symbols), symbols),
			version   = IF(deleted, version + 1, version),
			deleted   = FALSE`,
		p.UserID, p.PresetID, p.Name, p.Length, p.Lowercase, p.Uppercase, p.Digits, p.Symbols,
	)
	if err != nil {
		return err
	}

	// MySQL reports 0 affected rows when the duplicate branch changed nothing,
	// meaning a live preset already holds this ID.
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDuplicatePreset
	}
	return nil
}

// Update replaces a live preset's configuration and bumps its version.
func (r *PresetRepository) Update(ctx context.Context, p *model.Preset) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE presets
		SET name = ?, length = ?, lowercase = ?, uppercase = ?, digits = ?, symbols = ?, version = version + 1
		WHERE user_id = ? AND preset_id = ? AND deleted = FALSE`,
		p.Name, p.Length, p.Lowercase, p.Uppercase, p.Digits, p.Symbols, p.UserID, p.PresetID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// Get retrieves a live preset by owner and client-generated ID.
func (r *PresetRepository) Get(ctx context.Context, userID int64, presetID string) (*model.Preset, error) {
	p := &model.Preset{}
	row := r.db.QueryRowContext(ctx,
		`SELECT `+presetColumns+` FROM presets WHERE user_id = ? AND preset_id = ? AND deleted = FALSE`,
		userID, presetID,
	)
	if err := scanPreset(row, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListByUser returns live presets, most recently updated first.
func (r *PresetRepository) ListByUser(ctx context.Context, userID int64) ([]model.Preset, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+presetColumns+` FROM presets WHERE user_id = ? AND deleted = FALSE ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []model.Preset
	for rows.Next() {
		var p model.Preset
		if err := scanPreset(rows, &p); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

// SoftDelete marks a preset deleted and bumps its version.
func (r *PresetRepository) SoftDelete(ctx context.Context, userID int64, presetID string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE presets SET deleted = TRUE, version = version + 1
		WHERE user_id = ? AND preset_id = ? AND deleted = FALSE`,
		userID, presetID,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPresetNotFound
	}
	return nil
}
