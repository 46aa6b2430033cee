package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"arunoday-portal/internal/adapters/persistence/models"
	"arunoday-portal/internal/core/domain"
)

// memoryDB holds every collection of the in-memory store behind one lock
type memoryDB struct {
	mu       sync.RWMutex
	admins   map[string]models.Admin
	students map[string]models.Student
	payments []models.FeePayment
	contacts []models.Contact
}

// NewMemoryStore builds a Store that keeps everything in process memory.
// It enforces the same unique keys as the Mongo indexes.
func NewMemoryStore() *Store {
	db := &memoryDB{
		admins:   make(map[string]models.Admin),
		students: make(map[string]models.Student),
	}
	return &Store{
		Admins:   &memoryAdminRepository{db: db},
		Students: &memoryStudentRepository{db: db},
		Payments: &memoryPaymentRepository{db: db},
		Contacts: &memoryContactRepository{db: db},
		Ping:     func(ctx context.Context) error { return nil },
		Close:    func(ctx context.Context) error { return nil },
	}
}

func page(total, offset, limit int) (int, int) {
	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return offset, end
}

// memoryAdminRepository implements AdminRepository
type memoryAdminRepository struct {
	db *memoryDB
}

func (r *memoryAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.admins {
		if existing.ID == admin.ID || existing.Email == admin.Email {
			return ErrDuplicate
		}
	}
	r.db.admins[admin.ID] = *admin
	return nil
}

func (r *memoryAdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, admin := range r.db.admins {
		if admin.Email == email {
			found := admin
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// memoryStudentRepository implements StudentRepository
type memoryStudentRepository struct {
	db *memoryDB
}

func (r *memoryStudentRepository) Create(ctx context.Context, student *models.Student) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.students {
		if existing.ID == student.ID || existing.Email == student.Email || existing.RollNumber == student.RollNumber {
			return ErrDuplicate
		}
	}
	r.db.students[student.ID] = *student
	return nil
}

func (r *memoryStudentRepository) find(match func(models.Student) bool) (*models.Student, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, student := range r.db.students {
		if match(student) {
			found := student
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryStudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return r.find(func(s models.Student) bool { return s.ID == id })
}

func (r *memoryStudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.find(func(s models.Student) bool { return s.Email == email })
}

func (r *memoryStudentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	return r.find(func(s models.Student) bool { return s.RollNumber == rollNumber })
}

func (r *memoryStudentRepository) FindByEmailOrRollNumber(ctx context.Context, email, rollNumber string) (*models.Student, error) {
	return r.find(func(s models.Student) bool { return s.Email == email || s.RollNumber == rollNumber })
}

func (r *memoryStudentRepository) List(ctx context.Context, offset, limit int) ([]*models.Student, int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	all := make([]models.Student, 0, len(r.db.students))
	for _, student := range r.db.students {
		all = append(all, student)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	from, to := page(len(all), offset, limit)
	students := make([]*models.Student, 0, to-from)
	for i := from; i < to; i++ {
		student := all[i]
		students = append(students, &student)
	}
	return students, int64(len(all)), nil
}

func (r *memoryStudentRepository) Update(ctx context.Context, id string, fields Fields) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	student, ok := r.db.students[id]
	if !ok {
		return ErrNotFound
	}
	if err := applyStudentFields(&student, fields); err != nil {
		return err
	}
	for otherID, other := range r.db.students {
		if otherID != id && (other.Email == student.Email || other.RollNumber == student.RollNumber) {
			return ErrDuplicate
		}
	}
	r.db.students[id] = student
	return nil
}

func (r *memoryStudentRepository) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.students[id]; !ok {
		return ErrNotFound
	}
	delete(r.db.students, id)
	return nil
}

// applyStudentFields sets stored fields by their bson/column names
func applyStudentFields(s *models.Student, fields Fields) error {
	for key, value := range fields {
		var ok bool
		switch key {
		case "roll_number":
			s.RollNumber, ok = value.(string)
		case "name":
			s.Name, ok = value.(string)
		case "email":
			s.Email, ok = value.(string)
		case "password_hash":
			s.PasswordHash, ok = value.(string)
		case "class_name":
			s.ClassName, ok = value.(string)
		case "section":
			s.Section, ok = value.(string)
		case "phone":
			s.Phone, ok = value.(string)
		case "parent_name":
			s.ParentName, ok = value.(string)
		case "parent_phone":
			s.ParentPhone, ok = value.(string)
		case "address":
			s.Address, ok = value.(string)
		case "fee_status":
			s.FeeStatus, ok = value.(domain.FeeStatus)
		case "fee_amount":
			s.FeeAmount, ok = value.(float64)
		case "updated_at":
			s.UpdatedAt, ok = value.(time.Time)
		}
		if !ok {
			return fmt.Errorf("memory store: unsupported value %T for field %q", value, key)
		}
	}
	return nil
}

// memoryPaymentRepository implements PaymentRepository
type memoryPaymentRepository struct {
	db *memoryDB
}

func (r *memoryPaymentRepository) Create(ctx context.Context, payment *models.FeePayment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.payments {
		if existing.ID == payment.ID {
			return ErrDuplicate
		}
	}
	r.db.payments = append(r.db.payments, *payment)
	return nil
}

func (r *memoryPaymentRepository) list(match func(models.FeePayment) bool, offset, limit int) ([]*models.FeePayment, int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var matched []models.FeePayment
	for _, payment := range r.db.payments {
		if match(payment) {
			matched = append(matched, payment)
		}
	}

	from, to := page(len(matched), offset, limit)
	payments := make([]*models.FeePayment, 0, to-from)
	for i := from; i < to; i++ {
		payment := matched[i]
		payments = append(payments, &payment)
	}
	return payments, int64(len(matched)), nil
}

func (r *memoryPaymentRepository) List(ctx context.Context, offset, limit int) ([]*models.FeePayment, int64, error) {
	return r.list(func(models.FeePayment) bool { return true }, offset, limit)
}

func (r *memoryPaymentRepository) ListByStudentID(ctx context.Context, studentID string, offset, limit int) ([]*models.FeePayment, int64, error) {
	return r.list(func(p models.FeePayment) bool { return p.StudentID == studentID }, offset, limit)
}

// memoryContactRepository implements ContactRepository
type memoryContactRepository struct {
	db *memoryDB
}

func (r *memoryContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.contacts = append(r.db.contacts, *contact)
	return nil
}
