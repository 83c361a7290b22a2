package types

// AdminLoginRequest represents the admin login request.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminUser is the authenticated admin identity returned to the dashboard.
type AdminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminLoginResponse represents the login response with the bearer token.
type AdminLoginResponse struct {
	Success bool       `json:"success"`
	User    *AdminUser `json:"user,omitempty"`
	Token   string     `json:"token,omitempty"`
	Error   string     `json:"error,omitempty"`
}
