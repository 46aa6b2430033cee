package handlers

import (
	"errors"
	"strings"

	"arunoday-portal/internal/core/domain"
	"arunoday-portal/internal/core/services"
	"arunoday-portal/internal/pkg/response"
	"arunoday-portal/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles admin and student login
// @Summary Login
// @Description Authenticate an admin or a student and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} services.LoginResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid credentials")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	return response.JSON(c, result)
}
