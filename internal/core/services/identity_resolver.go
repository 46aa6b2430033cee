package services

import (
	"context"
	"errors"

	"arunoday-portal/internal/adapters/persistence/models"
	"arunoday-portal/internal/adapters/persistence/repositories"
	"arunoday-portal/internal/core/domain"
	"arunoday-portal/internal/pkg/password"
)

// LoginStrategy resolves a principal from login credentials. It returns
// domain.ErrInvalidCredentials when the email is unknown to it or the
// password does not verify, and any other error for store failures.
type LoginStrategy interface {
	Resolve(ctx context.Context, email, plain string) (*domain.Principal, error)
}

// adminLookup resolves admins
type adminLookup struct {
	admins repositories.AdminRepository
}

func (l adminLookup) Resolve(ctx context.Context, email, plain string) (*domain.Principal, error) {
	admin, err := l.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !password.Verify(plain, admin.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Principal{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
		Role:  domain.RoleAdmin,
	}, nil
}

// studentLookup resolves students
type studentLookup struct {
	students repositories.StudentRepository
}

func (l studentLookup) Resolve(ctx context.Context, email, plain string) (*domain.Principal, error) {
	student, err := l.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !password.Verify(plain, student.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Principal{
		ID:         student.ID,
		Email:      student.Email,
		Name:       student.Name,
		Role:       domain.RoleStudent,
		RollNumber: student.RollNumber,
		ClassName:  student.ClassName,
	}, nil
}

// IdentityResolver looks principals up for login and students up by id
type IdentityResolver struct {
	strategies []LoginStrategy
	students   repositories.StudentRepository
}

// NewIdentityResolver creates a resolver that tries admins first, then students
func NewIdentityResolver(admins repositories.AdminRepository, students repositories.StudentRepository) *IdentityResolver {
	return &IdentityResolver{
		strategies: []LoginStrategy{
			adminLookup{admins: admins},
			studentLookup{students: students},
		},
		students: students,
	}
}

// FindByLogin walks the strategies in order and returns the first match.
// Every miss collapses into domain.ErrInvalidCredentials, whichever
// strategy saw the email.
func (r *IdentityResolver) FindByLogin(ctx context.Context, email, plain string) (*domain.Principal, error) {
	for _, strategy := range r.strategies {
		principal, err := strategy.Resolve(ctx, email, plain)
		if err == nil {
			return principal, nil
		}
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, err
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// FindStudentByID gets a student by id
func (r *IdentityResolver) FindStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, err := r.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}
