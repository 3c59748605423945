package authshell

import "errors"

var (
	// ErrRoleInvalid is returned when a role outside {manager, member}
	// reaches the store boundary.
	ErrRoleInvalid = errors.New("invalid role")
	// ErrAuthInFlight is returned when Login or Signup is called while
	// another authentication attempt is still in flight.
	ErrAuthInFlight = errors.New("authentication already in flight")
	// ErrInvalidCredentials is returned by credential-verifying
	// authenticators. The default passthrough authenticator never emits it.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPersistFailed wraps persistence-backend write failures during a
	// transition into the authenticated state.
	ErrPersistFailed = errors.New("session persistence failed")
	// ErrStoreClosed is returned by operations on a disposed store.
	ErrStoreClosed = errors.New("session store closed")

	// ErrEmailRequired is a caller-side validation failure for an empty email.
	ErrEmailRequired = errors.New("email required")
	// ErrPasswordRequired is a caller-side validation failure for an empty password.
	ErrPasswordRequired = errors.New("password required")
	// ErrNameRequired is a caller-side validation failure for an empty signup name.
	ErrNameRequired = errors.New("name required")
	// ErrPasswordTooShort is a caller-side validation failure for a signup
	// password below the configured minimum length.
	ErrPasswordTooShort = errors.New("password too short")
)

// ValidateLoginInput performs the view-side checks the store deliberately does
// not repeat: email and password must be non-empty. Role validity is checked
// by the store itself.
func ValidateLoginInput(email, password string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateSignupInput performs the view-side signup checks: non-empty fields
// and the minimum password length. minPasswordLength values below 1 fall back
// to the default of 8.
func ValidateSignupInput(email, password, name string, minPasswordLength int) error {
	if err := ValidateLoginInput(email, password); err != nil {
		return err
	}
	if name == "" {
		return ErrNameRequired
	}
	if minPasswordLength < 1 {
		minPasswordLength = defaultMinPasswordLength
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
