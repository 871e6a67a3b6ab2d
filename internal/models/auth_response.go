package models

// RegisterResponse is returned after a successful registration.
// Deliberately excludes the password hash and internal ID.
type RegisterResponse struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// LoginResponse carries the bearer token issued on login.
type LoginResponse struct {
	Token string `json:"token"`
}
