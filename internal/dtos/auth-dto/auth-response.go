package auth_dto

import "github.com/Warzoness/foodshare-manager/internal/entity"

// LoginData ist der "data"-Teil der Login-Antwort des Backends.
type LoginData struct {
	AccessToken  string                   `json:"accessToken"`
	RefreshToken string                   `json:"refreshToken,omitempty"`
	User         entity.AuthenticatedUser `json:"user"`
}

// LoginResponse ist die Login-Antwort des Backends. Nur die Felder, die die Sitzung braucht.
type LoginResponse struct {
	Success bool      `json:"success"`
	Data    LoginData `json:"data"`
}

// SessionResponse beschreibt den Zustand der Dashboard-Sitzung.
type SessionResponse struct {
	User    *entity.AuthenticatedUser `json:"user"`
	Loading bool                      `json:"loading"`
}
