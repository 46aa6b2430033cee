package repositories

import (
	"context"
	"errors"

	"arunoday-portal/internal/adapters/persistence/models"
)

// Store-agnostic errors returned by every repository implementation
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Fields is a partial update keyed by stored field name (bson key / column name)
type Fields map[string]interface{}

// AdminRepository defines admin repository interface
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// StudentRepository defines student repository interface
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
	FindByEmailOrRollNumber(ctx context.Context, email, rollNumber string) (*models.Student, error)
	List(ctx context.Context, offset, limit int) ([]*models.Student, int64, error)
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
}

// PaymentRepository defines fee payment repository interface
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.FeePayment) error
	List(ctx context.Context, offset, limit int) ([]*models.FeePayment, int64, error)
	ListByStudentID(ctx context.Context, studentID string, offset, limit int) ([]*models.FeePayment, int64, error)
}

// ContactRepository defines contact submission repository interface
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
}

// Store bundles the repositories of one backing database
type Store struct {
	Admins   AdminRepository
	Students StudentRepository
	Payments PaymentRepository
	Contacts ContactRepository

	// Ping reports whether the backing database is reachable
	Ping func(ctx context.Context) error
	// Close releases the database connection
	Close func(ctx context.Context) error
}
