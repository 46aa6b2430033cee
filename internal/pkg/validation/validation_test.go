package validation

import (
	"strings"
	"testing"
)

type sample struct {
	RollNumber string  `validate:"required"`
	Email      string  `validate:"required,email"`
	Amount     float64 `validate:"gt=0"`
}

func TestStructValid(t *testing.T) {
	if err := Struct(sample{RollNumber: "R1", Email: "s@x.com", Amount: 10}); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}
}

func TestStructMessages(t *testing.T) {
	err := Struct(sample{Email: "not-an-email"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{
		"roll_number is required",
		"email must be a valid email address",
		"amount must be greater than 0",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}
