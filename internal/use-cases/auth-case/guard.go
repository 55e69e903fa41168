package auth_case

import "github.com/Warzoness/foodshare-manager/internal/entity"

// RequiredRole ist die Rolle, die eine Dashboard-Route verlangt.
type RequiredRole string

const (
	RequireAdmin  RequiredRole = "admin"
	RequireSeller RequiredRole = "seller"
)

const LoginPath = "/login"

// Decision ist das Ergebnis des Route-Guards.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Guard entscheidet über eine Navigation. ADMIN erfüllt auch "seller", nicht umgekehrt.
func Guard(user *entity.AuthenticatedUser, required RequiredRole) Decision {
	if user == nil {
		return Decision{Redirect: LoginPath}
	}

	if satisfies(user.Role, required) {
		return Decision{Allowed: true}
	}

	if !user.Role.IsValid() {
		return Decision{Redirect: LoginPath}
	}
	return Decision{Redirect: user.Role.Dashboard()}
}

func satisfies(role entity.UserRole, required RequiredRole) bool {
	switch required {
	case RequireAdmin:
		return role == entity.ADMIN
	case RequireSeller:
		return role == entity.SELLER || role == entity.ADMIN
	}
	return false
}
