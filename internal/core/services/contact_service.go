package services

import (
	"context"
	"time"

	"arunoday-portal/internal/adapters/persistence/models"
	"arunoday-portal/internal/adapters/persistence/repositories"

	"github.com/google/uuid"
)

// ContactService stores public contact submissions
type ContactService struct {
	contacts repositories.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contacts repositories.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// ContactInput represents a contact form submission
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Submit stores a contact submission
func (s *ContactService) Submit(ctx context.Context, input *ContactInput) error {
	return s.contacts.Create(ctx, &models.Contact{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	})
}
