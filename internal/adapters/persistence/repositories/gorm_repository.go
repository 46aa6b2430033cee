package repositories

import (
	"context"
	"errors"

	"arunoday-portal/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// NewGormStore builds a Store backed by a relational database through GORM
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Admins:   &adminRepository{db: db},
		Students: &studentRepository{db: db},
		Payments: &paymentRepository{db: db},
		Contacts: &contactRepository{db: db},
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Close: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// translateGormError maps GORM errors onto the store-agnostic errors
func translateGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// adminRepository implements AdminRepository
type adminRepository struct {
	db *gorm.DB
}

// Create creates a new admin
func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	return translateGormError(r.db.WithContext(ctx).Create(admin).Error)
}

// GetByEmail gets an admin by email
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &admin, nil
}

// studentRepository implements StudentRepository
type studentRepository struct {
	db *gorm.DB
}

// Create creates a new student
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return translateGormError(r.db.WithContext(ctx).Create(student).Error)
}

// GetByID gets a student by ID
func (r *studentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &student, nil
}

// GetByEmail gets a student by email
func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&student).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &student, nil
}

// GetByRollNumber gets a student by roll number
func (r *studentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("roll_number = ?", rollNumber).First(&student).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &student, nil
}

// FindByEmailOrRollNumber gets the first student holding either identifier
func (r *studentRepository) FindByEmailOrRollNumber(ctx context.Context, email, rollNumber string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).
		Where("email = ? OR roll_number = ?", email, rollNumber).
		First(&student).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &student, nil
}

// List lists students with pagination
func (r *studentRepository) List(ctx context.Context, offset, limit int) ([]*models.Student, int64, error) {
	var students []*models.Student
	var total int64

	// Count total
	if err := r.db.WithContext(ctx).Model(&models.Student{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Order("created_at ASC").Offset(offset).Limit(limit).Find(&students).Error; err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Update applies a partial update to a student
func (r *studentRepository) Update(ctx context.Context, id string, fields Fields) error {
	result := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", id).
		Updates(map[string]interface{}(fields))
	if result.Error != nil {
		return translateGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		// MySQL reports zero affected rows for no-op updates, so confirm existence
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// Delete hard deletes a student
func (r *studentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Student{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// paymentRepository implements PaymentRepository
type paymentRepository struct {
	db *gorm.DB
}

// Create records a fee payment
func (r *paymentRepository) Create(ctx context.Context, payment *models.FeePayment) error {
	return translateGormError(r.db.WithContext(ctx).Create(payment).Error)
}

// List lists all payments with pagination
func (r *paymentRepository) List(ctx context.Context, offset, limit int) ([]*models.FeePayment, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&models.FeePayment{}), offset, limit)
}

// ListByStudentID lists one student's payments with pagination
func (r *paymentRepository) ListByStudentID(ctx context.Context, studentID string, offset, limit int) ([]*models.FeePayment, int64, error) {
	return r.list(r.db.WithContext(ctx).Model(&models.FeePayment{}).Where("student_id = ?", studentID), offset, limit)
}

func (r *paymentRepository) list(query *gorm.DB, offset, limit int) ([]*models.FeePayment, int64, error) {
	var payments []*models.FeePayment
	var total int64

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Session(&gorm.Session{}).Order("paid_at ASC").Offset(offset).Limit(limit).Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// contactRepository implements ContactRepository
type contactRepository struct {
	db *gorm.DB
}

// Create stores a contact submission
func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return translateGormError(r.db.WithContext(ctx).Create(contact).Error)
}
