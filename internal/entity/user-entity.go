package entity

import (
	"strings"
	"time"
)

// UserRole ist die Rolle eines Back-Office-Benutzers.
type UserRole string

const (
	ADMIN  UserRole = "ADMIN"
	SELLER UserRole = "SELLER"
)

func (u UserRole) IsValid() bool {
	switch u {
	case ADMIN, SELLER:
		return true
	}

	return false
}

// ParseUserRole akzeptiert Groß- und Kleinschreibung ("admin", "SELLER").
func ParseUserRole(s string) (UserRole, bool) {
	r := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// Dashboard liefert den Pfad des eigenen Dashboards der Rolle.
func (u UserRole) Dashboard() string {
	if u == ADMIN {
		return "/admin/dashboard"
	}
	return "/seller/dashboard"
}

// AuthenticatedUser ist der angemeldete Benutzer einer Dashboard-Sitzung.
// Er entsteht beim Login und wird nur durch Login/Logout verändert.
type AuthenticatedUser struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserInactive UserStatus = "INACTIVE"
	UserBlocked  UserStatus = "BLOCKED"
)

// User ist ein Eintrag der Benutzerliste.
type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}
