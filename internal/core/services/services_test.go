package services

import (
	"context"
	"testing"
	"time"

	"arunoday-portal/internal/adapters/persistence/models"
	"arunoday-portal/internal/adapters/persistence/repositories"
	"arunoday-portal/internal/pkg/jwt"
	"arunoday-portal/internal/pkg/password"

	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	password.Cost = bcrypt.MinCost
	m.Run()
}

type testEnv struct {
	store    *repositories.Store
	tokens   *jwt.Manager
	auth     *AuthService
	students *StudentService
	payments *PaymentService
	contacts *ContactService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := repositories.NewMemoryStore()
	tokens := jwt.NewManager("test-secret", 0)
	resolver := NewIdentityResolver(store.Admins, store.Students)
	return &testEnv{
		store:    store,
		tokens:   tokens,
		auth:     NewAuthService(resolver, tokens),
		students: NewStudentService(store.Admins, store.Students, resolver),
		payments: NewPaymentService(store.Students, store.Payments, resolver),
		contacts: NewContactService(store.Contacts),
	}
}

func (e *testEnv) seedAdmin(t *testing.T, email, plain string) *models.Admin {
	t.Helper()
	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	admin := &models.Admin{ID: "admin-" + email, Email: email, PasswordHash: hash, Name: "Admin", CreatedAt: time.Now()}
	if err := e.store.Admins.Create(context.Background(), admin); err != nil {
		t.Fatalf("seed admin error: %v", err)
	}
	return admin
}

func (e *testEnv) createStudent(t *testing.T, roll, email, plain string) *models.StudentResponse {
	t.Helper()
	student, err := e.students.CreateStudent(context.Background(), studentInput(roll, email, plain))
	if err != nil {
		t.Fatalf("create student error: %v", err)
	}
	return student
}

func studentInput(roll, email, plain string) *CreateStudentInput {
	return &CreateStudentInput{
		RollNumber:  roll,
		Name:        "Student " + roll,
		Email:       email,
		Password:    plain,
		ClassName:   "5",
		Section:     "A",
		Phone:       "9999999999",
		ParentName:  "Parent " + roll,
		ParentPhone: "8888888888",
		Address:     "Village Road",
		FeeAmount:   1200,
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
