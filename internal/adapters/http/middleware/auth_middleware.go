package middleware

import (
	"errors"
	"log"
	"strings"

	"arunoday-portal/internal/core/domain"
	"arunoday-portal/internal/pkg/jwt"
	"arunoday-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Context keys set by AuthMiddleware
const (
	LocalUserID = "userID"
	LocalRole   = "role"
)

// AuthMiddleware verifies the bearer token and stores the caller's id and role
func AuthMiddleware(tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Read Authorization header
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Not authenticated")
		}
		accessToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if accessToken == "" {
			return response.Unauthorized(c, "Not authenticated")
		}

		// 2. Validate token
		claims, err := tokens.ValidateAccessToken(accessToken)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Printf("⚠️ Rejected expired token from %s", c.IP())
				return response.Unauthorized(c, "Token expired")
			}
			log.Printf("⚠️ Rejected invalid token from %s: %v", c.IP(), err)
			return response.Unauthorized(c, "Invalid token")
		}

		// 3. Set user info in context
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.UserType)

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(message string, allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok {
			return response.Unauthorized(c, "Not authenticated")
		}

		// Check if user's role is in allowed roles
		for _, allowedRole := range allowedRoles {
			if role == string(allowedRole) {
				return c.Next()
			}
		}

		return response.Forbidden(c, message)
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware("Admin access required", domain.RoleAdmin)
}

// StudentOnly middleware allows only the student role
func StudentOnly() fiber.Handler {
	return RoleMiddleware("Student access required", domain.RoleStudent)
}

// UserID returns the authenticated caller's id
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}
