package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"arunoday-portal/internal/adapters/persistence/models"
	"arunoday-portal/internal/adapters/persistence/repositories"
	"arunoday-portal/internal/core/domain"
	"arunoday-portal/internal/pkg/password"

	"github.com/google/uuid"
)

// Student service errors
var (
	ErrStudentNotFound      = fmt.Errorf("student not found: %w", domain.ErrNotFound)
	ErrStudentAlreadyExists = fmt.Errorf("email or roll number already exists: %w", domain.ErrConflict)
	ErrOldPasswordWrong     = fmt.Errorf("incorrect old password: %w", domain.ErrInvalidInput)
)

// StudentService handles student records for admins and for students themselves
type StudentService struct {
	admins   repositories.AdminRepository
	students repositories.StudentRepository
	resolver *IdentityResolver
	now      func() time.Time
}

// NewStudentService creates a new student service
func NewStudentService(
	admins repositories.AdminRepository,
	students repositories.StudentRepository,
	resolver *IdentityResolver,
) *StudentService {
	return &StudentService{
		admins:   admins,
		students: students,
		resolver: resolver,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateStudentInput represents create student input
type CreateStudentInput struct {
	RollNumber  string  `json:"roll_number" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required"`
	ClassName   string  `json:"class_name" validate:"required"`
	Section     string  `json:"section" validate:"required"`
	Phone       string  `json:"phone" validate:"required"`
	ParentName  string  `json:"parent_name" validate:"required"`
	ParentPhone string  `json:"parent_phone" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	FeeAmount   float64 `json:"fee_amount" validate:"gte=0"`
}

// UpdateStudentInput represents a partial student update. Nil fields are left untouched.
type UpdateStudentInput struct {
	RollNumber  *string  `json:"roll_number"`
	Name        *string  `json:"name"`
	ClassName   *string  `json:"class_name"`
	Section     *string  `json:"section"`
	Phone       *string  `json:"phone"`
	ParentName  *string  `json:"parent_name"`
	ParentPhone *string  `json:"parent_phone"`
	Address     *string  `json:"address"`
	FeeAmount   *float64 `json:"fee_amount" validate:"omitempty,gte=0"`
}

// ResetPasswordInput represents an admin password reset
type ResetPasswordInput struct {
	NewPassword string `json:"new_password" validate:"required"`
}

// ChangePasswordInput represents a student's own password change
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// ListStudents lists students with pagination
func (s *StudentService) ListStudents(ctx context.Context, offset, limit int) ([]*models.StudentResponse, int64, error) {
	students, total, err := s.students.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.StudentResponse, len(students))
	for i, student := range students {
		responses[i] = student.ToResponse()
	}
	return responses, total, nil
}

// CreateStudent creates a student after checking email and roll number are free.
// The check and the insert are separate store calls.
func (s *StudentService) CreateStudent(ctx context.Context, input *CreateStudentInput) (*models.StudentResponse, error) {
	// 1. Check if email or roll number already exists
	existing, err := s.students.FindByEmailOrRollNumber(ctx, input.Email, input.RollNumber)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrStudentAlreadyExists
	}

	// 2. Emails are unique across admins too
	if _, err := s.admins.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrStudentAlreadyExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	// 3. Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 4. Create student
	now := s.now()
	student := &models.Student{
		ID:           uuid.New().String(),
		RollNumber:   input.RollNumber,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		ClassName:    input.ClassName,
		Section:      input.Section,
		Phone:        input.Phone,
		ParentName:   input.ParentName,
		ParentPhone:  input.ParentPhone,
		Address:      input.Address,
		FeeStatus:    domain.FeeStatusPending,
		FeeAmount:    input.FeeAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.students.Create(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrStudentAlreadyExists
		}
		return nil, err
	}

	log.Printf("✅ Student created: %s (roll %s)", student.ID, student.RollNumber)
	return student.ToResponse(), nil
}

// UpdateStudent applies the supplied fields and refreshes updated_at
func (s *StudentService) UpdateStudent(ctx context.Context, id string, input *UpdateStudentInput) (*models.StudentResponse, error) {
	student, err := s.resolver.FindStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := repositories.Fields{}
	setString := func(key string, value *string) {
		if value != nil {
			fields[key] = *value
		}
	}
	setString("roll_number", input.RollNumber)
	setString("name", input.Name)
	setString("class_name", input.ClassName)
	setString("section", input.Section)
	setString("phone", input.Phone)
	setString("parent_name", input.ParentName)
	setString("parent_phone", input.ParentPhone)
	setString("address", input.Address)
	if input.FeeAmount != nil {
		fields["fee_amount"] = *input.FeeAmount
	}

	if len(fields) == 0 {
		return student.ToResponse(), nil
	}

	// Roll numbers stay unique
	if input.RollNumber != nil && *input.RollNumber != student.RollNumber {
		other, err := s.students.GetByRollNumber(ctx, *input.RollNumber)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrStudentAlreadyExists
		}
	}

	fields["updated_at"] = s.now()
	if err := s.students.Update(ctx, id, fields); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrStudentNotFound
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, ErrStudentAlreadyExists
		default:
			return nil, err
		}
	}

	updated, err := s.resolver.FindStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

// DeleteStudent hard deletes a student. Their payments are left in place.
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.students.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	log.Printf("✅ Student deleted: %s", id)
	return nil
}

// ResetPassword sets a new password for a student without the old one
func (s *StudentService) ResetPassword(ctx context.Context, id string, input *ResetPasswordInput) error {
	if _, err := s.resolver.FindStudentByID(ctx, id); err != nil {
		return err
	}
	return s.setPassword(ctx, id, input.NewPassword)
}

// GetProfile gets a student's own sanitized record
func (s *StudentService) GetProfile(ctx context.Context, studentID string) (*models.StudentResponse, error) {
	student, err := s.resolver.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return student.ToResponse(), nil
}

// ChangePassword changes a student's own password after verifying the current one
func (s *StudentService) ChangePassword(ctx context.Context, studentID string, input *ChangePasswordInput) error {
	student, err := s.resolver.FindStudentByID(ctx, studentID)
	if err != nil {
		return err
	}

	// Verify old password
	if !password.Verify(input.OldPassword, student.PasswordHash) {
		return ErrOldPasswordWrong
	}

	return s.setPassword(ctx, studentID, input.NewPassword)
}

func (s *StudentService) setPassword(ctx context.Context, id, plain string) error {
	hashedPassword, err := password.Hash(plain)
	if err != nil {
		return err
	}

	err = s.students.Update(ctx, id, repositories.Fields{
		"password_hash": hashedPassword,
		"updated_at":    s.now(),
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrStudentNotFound
	}
	return err
}
