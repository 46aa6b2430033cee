package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"arunoday-portal/internal/core/domain"
	"arunoday-portal/internal/pkg/password"
)

func TestCreateStudentUniqueness(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedAdmin(t, "admin@school.com", "admin123")

	created := env.createStudent(t, "R1", "s@x.com", "pw1")
	if created.FeeStatus != domain.FeeStatusPending {
		t.Fatalf("expected pending fee status, got %s", created.FeeStatus)
	}
	if created.ID == "" || created.CreatedAt == "" || created.CreatedAt != created.UpdatedAt {
		t.Fatalf("expected id and equal timestamps, got %+v", created)
	}

	cases := map[string]*CreateStudentInput{
		"duplicate email":  studentInput("R2", "s@x.com", "pw"),
		"duplicate roll":   studentInput("R1", "other@x.com", "pw"),
		"admin email used": studentInput("R3", "admin@school.com", "pw"),
	}
	for name, input := range cases {
		if _, err := env.students.CreateStudent(ctx, input); !errors.Is(err, domain.ErrConflict) {
			t.Fatalf("%s: expected conflict, got %v", name, err)
		}
	}

	list, total, err := env.students.ListStudents(ctx, 0, 1000)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if total != 1 || len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("expected only the first student, got %d", total)
	}

	stored, err := env.store.Students.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if stored.PasswordHash == "pw1" || !password.Verify("pw1", stored.PasswordHash) {
		t.Fatalf("expected stored password to be a hash of pw1")
	}
}

func TestUpdateStudentIsPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := env.createStudent(t, "R1", "s@x.com", "pw1")
	env.createStudent(t, "R2", "t@x.com", "pw2")

	later := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	env.students.now = func() time.Time { return later }

	updated, err := env.students.UpdateStudent(ctx, created.ID, &UpdateStudentInput{
		Name:      strPtr("Renamed"),
		FeeAmount: floatPtr(2500),
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.Name != "Renamed" || updated.FeeAmount != 2500 {
		t.Fatalf("supplied fields not applied: %+v", updated)
	}
	if updated.Section != created.Section || updated.Address != created.Address || updated.Email != created.Email {
		t.Fatalf("unsupplied fields changed: %+v", updated)
	}
	if updated.UpdatedAt != "2030-01-01T00:00:00Z" || updated.CreatedAt != created.CreatedAt {
		t.Fatalf("unexpected timestamps: created=%s updated=%s", updated.CreatedAt, updated.UpdatedAt)
	}

	if _, err := env.students.UpdateStudent(ctx, created.ID, &UpdateStudentInput{RollNumber: strPtr("R2")}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected roll number conflict, got %v", err)
	}
	if _, err := env.students.UpdateStudent(ctx, "missing", &UpdateStudentInput{Name: strPtr("x")}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	unchanged, err := env.students.UpdateStudent(ctx, created.ID, &UpdateStudentInput{})
	if err != nil {
		t.Fatalf("empty update error: %v", err)
	}
	if unchanged.UpdatedAt != updated.UpdatedAt {
		t.Fatalf("empty update must not refresh updated_at")
	}
}

func TestDeleteStudent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := env.createStudent(t, "R1", "s@x.com", "pw1")

	if _, err := env.payments.PayFee(ctx, created.ID, &PayFeeInput{Amount: 1200, TransactionID: "TXN1"}); err != nil {
		t.Fatalf("pay error: %v", err)
	}

	if err := env.students.DeleteStudent(ctx, created.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if err := env.students.DeleteStudent(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}

	payments, _, err := env.payments.ListAllPayments(ctx, 0, 1000)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(payments) != 1 || payments[0].StudentID != created.ID {
		t.Fatalf("expected orphaned payment to remain")
	}
}

func TestPasswordFlows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := env.createStudent(t, "R1", "s@x.com", "pw1")

	err := env.students.ChangePassword(ctx, created.ID, &ChangePasswordInput{OldPassword: "wrong", NewPassword: "pw2"})
	if !errors.Is(err, ErrOldPasswordWrong) || !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected old password error, got %v", err)
	}

	if err := env.students.ChangePassword(ctx, created.ID, &ChangePasswordInput{OldPassword: "pw1", NewPassword: "pw2"}); err != nil {
		t.Fatalf("change password error: %v", err)
	}
	if _, err := env.auth.Login(ctx, &LoginInput{Email: "s@x.com", Password: "pw1"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected old password to fail, got %v", err)
	}
	if _, err := env.auth.Login(ctx, &LoginInput{Email: "s@x.com", Password: "pw2"}); err != nil {
		t.Fatalf("expected new password to work, got %v", err)
	}

	if err := env.students.ResetPassword(ctx, created.ID, &ResetPasswordInput{NewPassword: "reset"}); err != nil {
		t.Fatalf("reset error: %v", err)
	}
	if _, err := env.auth.Login(ctx, &LoginInput{Email: "s@x.com", Password: "reset"}); err != nil {
		t.Fatalf("expected reset password to work, got %v", err)
	}
	if err := env.students.ResetPassword(ctx, "missing", &ResetPasswordInput{NewPassword: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := env.createStudent(t, "R1", "s@x.com", "pw1")

	profile, err := env.students.GetProfile(ctx, created.ID)
	if err != nil {
		t.Fatalf("profile error: %v", err)
	}
	if profile.ID != created.ID || profile.Email != "s@x.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	if err := env.students.DeleteStudent(ctx, created.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, err := env.students.GetProfile(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for vanished student, got %v", err)
	}
}
