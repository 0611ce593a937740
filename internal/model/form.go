package model

import "time"

// FormResponse is the JSON view of a form session.
type FormResponse struct {
	ID             string    `json:"id"`
	PasswordLength string    `json:"password_length"`
	Lowercase      bool      `json:"lowercase"`
	Uppercase      bool      `json:"uppercase"`
	Digits         bool      `json:"digits"`
	Symbols        bool      `json:"symbols"`
	Password       string    `json:"password"`
	Generated      bool      `json:"generated"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UpdateFormRequest is a partial form update; nil fields are left alone.
type UpdateFormRequest struct {
	PasswordLength *string `json:"password_length"`
	Lowercase      *bool   `json:"lowercase"`
	Uppercase      *bool   `json:"uppercase"`
	Digits         *bool   `json:"digits"`
	Symbols        *bool   `json:"symbols"`
}
