package model

// GenerateRequest represents a one-shot password generation request.
// Nil flags take the form defaults: lowercase on, the rest off.
type GenerateRequest struct {
	Length    *int  `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
