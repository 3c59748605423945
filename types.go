package authshell

import "strings"

// Role is the access level attached to a [Session]. Exactly two values are
// valid; anything else is rejected at the store boundary.
type Role string

const (
	// RoleManager unlocks manager-only navigation and actions.
	RoleManager Role = "manager"
	// RoleMember is the default, restricted access level.
	RoleMember Role = "member"
)

// Valid reports whether r is one of the two recognized roles.
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleMember
}

// ParseRole converts a raw string into a [Role], case-insensitively.
// It returns ErrRoleInvalid for anything outside the two-value set.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleManager:
		return RoleManager, nil
	case RoleMember:
		return RoleMember, nil
	default:
		return "", ErrRoleInvalid
	}
}

// State is the session store's lifecycle position.
type State uint8

const (
	// StateAnonymous means no Session is active.
	StateAnonymous State = iota
	// StateAuthenticating means a Login or Signup call is in flight.
	StateAuthenticating
	// StateAuthenticated means a Session is active.
	StateAuthenticated
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the record representing the currently signed-in identity.
//
// Session instances are immutable once created; the store replaces the whole
// value on login/signup and clears it on logout. There is no partial update.
type Session struct {
	ID     string
	Email  string
	Name   string
	Role   Role
	Avatar string
}

// IsManager reports whether the session carries the manager role.
func (s Session) IsManager() bool {
	return s.Role == RoleManager
}

// Credentials is the input to [Authenticator.Authenticate].
//
// Name is empty for login (the authenticator derives it from the email local
// part) and set verbatim for signup.
type Credentials struct {
	Email    string
	Password string
	Name     string
	Role     Role
}

// NameLocalPart derives a display name from an email address: the substring
// before the first '@', or the whole address when no '@' is present.
func NameLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
