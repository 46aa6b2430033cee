package config

import (
	"context"
	"errors"
	"log"
	"time"

	"arunoday-portal/internal/adapters/persistence/models"
	"arunoday-portal/internal/adapters/persistence/repositories"
	"arunoday-portal/internal/pkg/password"

	"github.com/google/uuid"
)

// Seeder handles database seeding
type Seeder struct {
	admins repositories.AdminRepository
	admin  AdminConfig
}

// NewSeeder creates a new seeder instance
func NewSeeder(admins repositories.AdminRepository, admin AdminConfig) *Seeder {
	return &Seeder{admins: admins, admin: admin}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdmin(ctx); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdmin creates the configured admin unless one with that email exists
func (s *Seeder) seedAdmin(ctx context.Context) error {
	_, err := s.admins.GetByEmail(ctx, s.admin.Email)
	if err == nil {
		return nil // Admin already exists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	hashedPassword, err := password.Hash(s.admin.Password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		ID:           uuid.New().String(),
		Email:        s.admin.Email,
		PasswordHash: hashedPassword,
		Name:         "Admin",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil // Seeded concurrently by another instance
		}
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}
