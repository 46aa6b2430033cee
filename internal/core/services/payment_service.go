package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"arunoday-portal/internal/adapters/persistence/models"
	"arunoday-portal/internal/adapters/persistence/repositories"
	"arunoday-portal/internal/core/domain"

	"github.com/google/uuid"
)

// ErrFeeAlreadyPaid is returned when a student pays a second time
var ErrFeeAlreadyPaid = fmt.Errorf("fee already paid: %w", domain.ErrConflict)

// PaymentService records and lists fee payments
type PaymentService struct {
	students repositories.StudentRepository
	payments repositories.PaymentRepository
	resolver *IdentityResolver
	now      func() time.Time
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	students repositories.StudentRepository,
	payments repositories.PaymentRepository,
	resolver *IdentityResolver,
) *PaymentService {
	return &PaymentService{
		students: students,
		payments: payments,
		resolver: resolver,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// PayFeeInput represents a fee payment. The transaction id is recorded as given.
type PayFeeInput struct {
	Amount        float64 `json:"amount" validate:"gt=0"`
	TransactionID string  `json:"transaction_id" validate:"required"`
}

// PayFee records a payment and flips the student's fee status to paid.
// The two writes are not atomic: if the status update fails the payment
// stays recorded and the error is returned.
func (s *PaymentService) PayFee(ctx context.Context, studentID string, input *PayFeeInput) (*models.PaymentResponse, error) {
	// 1. Load student
	student, err := s.resolver.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	// 2. Fee may move pending -> paid only once
	if student.FeeStatus == domain.FeeStatusPaid {
		return nil, ErrFeeAlreadyPaid
	}

	// 3. Record payment
	now := s.now()
	payment := &models.FeePayment{
		ID:            uuid.New().String(),
		StudentID:     studentID,
		Amount:        input.Amount,
		PaymentMethod: domain.PaymentMethodPayPoint,
		TransactionID: input.TransactionID,
		Status:        domain.PaymentStatusSuccess,
		PaidAt:        now,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	// 4. Mark fee as paid
	err = s.students.Update(ctx, studentID, repositories.Fields{
		"fee_status": domain.FeeStatusPaid,
		"updated_at": now,
	})
	if err != nil {
		log.Printf("❌ Payment %s recorded but fee status update failed for student %s: %v", payment.ID, studentID, err)
		return nil, err
	}

	log.Printf("✅ Fee paid: student %s, payment %s", studentID, payment.ID)
	return payment.ToResponse(), nil
}

// ListStudentPayments lists only the payments owned by studentID
func (s *PaymentService) ListStudentPayments(ctx context.Context, studentID string, offset, limit int) ([]*models.PaymentResponse, int64, error) {
	payments, total, err := s.payments.ListByStudentID(ctx, studentID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return toPaymentResponses(payments), total, nil
}

// ListAllPayments lists every payment
func (s *PaymentService) ListAllPayments(ctx context.Context, offset, limit int) ([]*models.PaymentResponse, int64, error) {
	payments, total, err := s.payments.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return toPaymentResponses(payments), total, nil
}

func toPaymentResponses(payments []*models.FeePayment) []*models.PaymentResponse {
	responses := make([]*models.PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = payment.ToResponse()
	}
	return responses
}
