package model

import "time"

// Preset is a saved generation configuration owned by a user.
// It never holds a generated password.
type Preset struct {
	ID        int64
	UserID    int64
	PresetID  string
	Name      string
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}

// PresetRequest creates or replaces a preset.
type PresetRequest struct {
	PresetID  string `json:"preset_id"`
	Name      string `json:"name"`
	Length    int    `json:"length"`
	Lowercase bool   `json:"lowercase"`
	Uppercase bool   `json:"uppercase"`
	Digits    bool   `json:"digits"`
	Symbols   bool   `json:"symbols"`
}

// PresetResponse is the API view of a preset.
type PresetResponse struct {
	PresetID  string    `json:"preset_id"`
	Name      string    `json:"name"`
	Length    int       `json:"length"`
	Lowercase bool      `json:"lowercase"`
	Uppercase bool      `json:"uppercase"`
	Digits    bool      `json:"digits"`
	Symbols   bool      `json:"symbols"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}
