package models

// SignupResponse represents the response after successful signup.
// It echoes the email back; LoginResponse does not. The asymmetry is
// part of the public contract.
type SignupResponse struct {
	Email       string  `json:"email"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	AccessToken string  `json:"access_token"` // JWT token
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	AccessToken string  `json:"access_token"` // JWT token
}

// Identity is the sanitized view of an authenticated user, as returned
// by GET /me and carried in the request context by the auth middleware.
// It never includes the password hash.
type Identity struct {
	ID        string  `json:"id"` // UUID
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}
