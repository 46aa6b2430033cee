package services

import (
	"context"
	"log"

	"arunoday-portal/internal/core/domain"
	"arunoday-portal/internal/pkg/jwt"
)

// AuthService handles authentication business logic
type AuthService struct {
	resolver *IdentityResolver
	tokens   *jwt.Manager
}

// NewAuthService creates a new auth service
func NewAuthService(resolver *IdentityResolver, tokens *jwt.Manager) *AuthService {
	return &AuthService{
		resolver: resolver,
		tokens:   tokens,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents authentication response
type LoginResponse struct {
	Token    string                 `json:"token"`
	UserType string                 `json:"user_type"`
	User     map[string]interface{} `json:"user"`
}

// Login authenticates an admin or a student
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResponse, error) {
	// 1. Resolve principal (admin first, then student)
	principal, err := s.resolver.FindByLogin(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	// 2. Issue session token
	token, err := s.tokens.GenerateAccessToken(principal.ID, string(principal.Role))
	if err != nil {
		return nil, err
	}

	// 3. Build response
	user := map[string]interface{}{
		"id":    principal.ID,
		"email": principal.Email,
		"name":  principal.Name,
	}
	if principal.Role == domain.RoleStudent {
		user["roll_number"] = principal.RollNumber
		user["class_name"] = principal.ClassName
	}

	log.Printf("✅ %s logged in: %s", principal.Role, principal.ID)

	return &LoginResponse{
		Token:    token,
		UserType: string(principal.Role),
		User:     user,
	}, nil
}
