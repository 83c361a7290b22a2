// Package server provides the HTTP REST API for the application system.
package server

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/craigouma/Adaptive-AI-Job-Application/internal/config"
	"github.com/craigouma/Adaptive-AI-Job-Application/internal/types"
)

// AuthHandler handles admin authentication requests.
type AuthHandler struct {
	admin      *config.AdminConfig
	passwords  *config.PasswordConfig
	jwtService *JWTService
	validator  *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(admin *config.AdminConfig, passwords *config.PasswordConfig, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		admin:      admin,
		passwords:  passwords,
		jwtService: jwtService,
		validator:  validator.New(),
	}
}

// Login authenticates the configured admin account and issues a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLoginError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeLoginError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	// Email comparison is constant-time; the password check already is via bcrypt.
	emailMatch := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.admin.Email)) == 1
	if !emailMatch || !h.passwords.VerifyPassword(req.Password, h.admin.PasswordHash) {
		writeLoginError(w, HTTPStatus(&ErrInvalidCredentials{}), "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(h.admin.Email)
	if err != nil {
		writeLoginError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	response := types.AdminLoginResponse{
		Success: true,
		User: &types.AdminUser{
			ID:    "admin-001",
			Email: h.admin.Email,
			Role:  "admin",
		},
		Token: token,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error but response already sent
		return
	}
}

// writeLoginError writes a failed login response in the shared envelope.
func writeLoginError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.AdminLoginResponse{
		Success: false,
		Error:   message,
	})
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}

// handleAdminLogin handles admin login requests.
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Login(w, r)
}
