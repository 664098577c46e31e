package types

import "time"

// User represents a registered account in the system.
type User struct {
	// ID is the unique identifier of the user.
	ID string `json:"id"`

	// Username is the unique login name chosen by the user.
	Username string `json:"username"`

	// Email is the user's contact address.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-"`

	// IsBanned blocks the account from logging in when set.
	IsBanned bool `json:"is_banned"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// AdminSettings is the static operator credential set gating the
// administration surface. It is configuration, not a dynamic entity; the
// server mirrors it into the settings relation at boot so the operator panel
// can read it back.
type AdminSettings struct {
	AdminUser        string `json:"admin_user"`
	PrimaryPin       string `json:"primary_pin"`
	SecurityPin      string `json:"security_pin"`
	SecurityQuestion string `json:"security_question"`
	SecurityAnswer   string `json:"security_answer"`
}
