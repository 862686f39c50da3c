package dto

// LoginRequest entrada para POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con el token JWT (claims: subject, username, role).
type LoginResponse struct {
	Token string `json:"token"`
}
