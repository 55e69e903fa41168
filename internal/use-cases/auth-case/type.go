package auth_case

import "github.com/Warzoness/foodshare-manager/internal/entity"

// SessionState ist eine Momentaufnahme des Sitzungscontainers.
type SessionState struct {
	User    *entity.AuthenticatedUser
	Loading bool
}
