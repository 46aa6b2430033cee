package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"arunoday-portal/internal/adapters/persistence/models"
	"arunoday-portal/internal/core/domain"
)

func newStudent(id, email, roll string, created time.Time) *models.Student {
	return &models.Student{
		ID:         id,
		Email:      email,
		RollNumber: roll,
		Name:       "Student " + id,
		FeeStatus:  domain.FeeStatusPending,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestMemoryStudentUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Now()

	if err := store.Students.Create(ctx, newStudent("1", "a@x.com", "R1", now)); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if err := store.Students.Create(ctx, newStudent("2", "a@x.com", "R2", now)); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
	if err := store.Students.Create(ctx, newStudent("3", "b@x.com", "R1", now)); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected duplicate roll number error, got %v", err)
	}

	found, err := store.Students.FindByEmailOrRollNumber(ctx, "nobody@x.com", "R1")
	if err != nil || found.ID != "1" {
		t.Fatalf("expected lookup by roll number to find student 1, got %v / %v", found, err)
	}
	if _, err := store.Students.FindByEmailOrRollNumber(ctx, "nobody@x.com", "R9"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStudentUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Now()

	if err := store.Students.Create(ctx, newStudent("1", "a@x.com", "R1", now)); err != nil {
		t.Fatalf("create error: %v", err)
	}

	later := now.Add(time.Minute)
	err := store.Students.Update(ctx, "1", Fields{
		"name":       "Renamed",
		"fee_status": domain.FeeStatusPaid,
		"fee_amount": 1500.0,
		"updated_at": later,
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}

	got, err := store.Students.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Name != "Renamed" || got.FeeStatus != domain.FeeStatusPaid || got.FeeAmount != 1500 || !got.UpdatedAt.Equal(later) {
		t.Fatalf("unexpected student after update: %+v", got)
	}
	if got.Email != "a@x.com" || got.RollNumber != "R1" {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	if err := store.Students.Update(ctx, "missing", Fields{"name": "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := store.Students.Update(ctx, "1", Fields{"fee_amount": "not a number"}); err == nil {
		t.Fatalf("expected type error on update")
	}

	if err := store.Students.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if err := store.Students.Delete(ctx, "1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemoryListsPaginate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Now()

	for i, roll := range []string{"R1", "R2", "R3"} {
		s := newStudent(roll, roll+"@x.com", roll, base.Add(time.Duration(i)*time.Second))
		if err := store.Students.Create(ctx, s); err != nil {
			t.Fatalf("create error: %v", err)
		}
	}

	students, total, err := store.Students.List(ctx, 1, 1)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if total != 3 || len(students) != 1 || students[0].RollNumber != "R2" {
		t.Fatalf("unexpected page: total=%d students=%v", total, students)
	}

	for i, studentID := range []string{"R1", "R1", "R2"} {
		p := &models.FeePayment{ID: string(rune('a' + i)), StudentID: studentID, Amount: 10, PaidAt: base}
		if err := store.Payments.Create(ctx, p); err != nil {
			t.Fatalf("payment create error: %v", err)
		}
	}

	own, total, err := store.Payments.ListByStudentID(ctx, "R1", 0, 100)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if total != 2 || len(own) != 2 {
		t.Fatalf("expected 2 payments for R1, got %d/%d", len(own), total)
	}
	for _, p := range own {
		if p.StudentID != "R1" {
			t.Fatalf("payment of another student returned: %+v", p)
		}
	}

	all, total, err := store.Payments.List(ctx, 5, 10)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if total != 3 || len(all) != 0 {
		t.Fatalf("expected empty page past the end, got %d/%d", len(all), total)
	}
}

func TestMemoryAdminsAndContacts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	admin := &models.Admin{ID: "a1", Email: "admin@x.com", Name: "Admin"}
	if err := store.Admins.Create(ctx, admin); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if err := store.Admins.Create(ctx, &models.Admin{ID: "a2", Email: "admin@x.com"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected duplicate admin email, got %v", err)
	}
	if _, err := store.Admins.GetByEmail(ctx, "other@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Contacts.Create(ctx, &models.Contact{ID: "c1", Name: "Visitor", Message: "Hello"}); err != nil {
		t.Fatalf("contact create error: %v", err)
	}
	contacts := store.Contacts.(*memoryContactRepository)
	if len(contacts.db.contacts) != 1 {
		t.Fatalf("expected one stored contact")
	}
}
