package models

// Credentials carries the admin sign-in form fields.
// The password is sent once over the login endpoint and never stored.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthStatus is the backend's answer to a session check or a successful
// login: who the session belongs to and what it may do.
type AuthStatus struct {
	// Authenticated reports whether the current session cookie maps to a
	// signed-in admin user.
	Authenticated bool `json:"authenticated"`

	// Username is the signed-in user's login name; empty when
	// unauthenticated.
	Username string `json:"username,omitempty"`

	// Role is the signed-in user's access level label.
	Role string `json:"role,omitempty"`
}
