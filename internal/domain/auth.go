package domain

// Credentials are forwarded as-is to the API's login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of a sign-up request.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the opaque token issued by the API.
type LoginResult struct {
	Token string `json:"token"`
}
