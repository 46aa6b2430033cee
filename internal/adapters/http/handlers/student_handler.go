package handlers

import (
	"errors"

	"arunoday-portal/internal/adapters/http/middleware"
	"arunoday-portal/internal/core/domain"
	"arunoday-portal/internal/core/services"
	"arunoday-portal/internal/pkg/pagination"
	"arunoday-portal/internal/pkg/response"
	"arunoday-portal/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// StudentHandler handles a student's own profile, password and fees
type StudentHandler struct {
	studentService *services.StudentService
	paymentService *services.PaymentService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService *services.StudentService, paymentService *services.PaymentService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		paymentService: paymentService,
	}
}

// PayFeeResponse represents a successful fee payment
type PayFeeResponse struct {
	Message   string `json:"message"`
	PaymentID string `json:"payment_id"`
}

// GetProfile handles getting the caller's own record
// @Summary Get profile
// @Description Get the authenticated student's record
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StudentResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /student/profile [get]
func (h *StudentHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.studentService.GetProfile(c.UserContext(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to get profile")
	}

	return response.JSON(c, profile)
}

// ChangePassword handles changing the caller's own password
// @Summary Change password
// @Description Change the authenticated student's password after verifying the old one
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ChangePasswordInput true "Old and new password"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /student/change-password [post]
func (h *StudentHandler) ChangePassword(c *fiber.Ctx) error {
	var req services.ChangePasswordInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.studentService.ChangePassword(c.UserContext(), middleware.UserID(c), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrOldPasswordWrong):
			return response.BadRequest(c, "Incorrect old password")
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Student not found")
		default:
			return response.InternalServerError(c, "Failed to change password")
		}
	}

	return response.Message(c, "Password changed successfully")
}

// PayFee handles paying the caller's fee
// @Summary Pay fee
// @Description Record a fee payment and mark the fee as paid
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.PayFeeInput true "Payment data"
// @Success 200 {object} PayFeeResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /student/pay-fee [post]
func (h *StudentHandler) PayFee(c *fiber.Ctx) error {
	var req services.PayFeeInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	payment, err := h.paymentService.PayFee(c.UserContext(), middleware.UserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFeeAlreadyPaid):
			return response.BadRequest(c, "Fee already paid")
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Student not found")
		default:
			return response.InternalServerError(c, "Failed to process payment")
		}
	}

	return response.JSON(c, PayFeeResponse{
		Message:   "Fee payment successful",
		PaymentID: payment.ID,
	})
}

// ListPayments handles listing the caller's own payments
// @Summary List own payments
// @Description Get the authenticated student's fee payments
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(100)
// @Success 200 {array} models.PaymentResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /student/payments [get]
func (h *StudentHandler) ListPayments(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.OwnPaymentsLimit)

	payments, total, err := h.paymentService.ListStudentPayments(c.UserContext(), middleware.UserID(c), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list payments")
	}

	pagination.SetTotal(c, total)
	return response.JSON(c, payments)
}
