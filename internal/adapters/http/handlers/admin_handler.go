package handlers

import (
	"errors"
	"strings"

	"arunoday-portal/internal/core/domain"
	"arunoday-portal/internal/core/services"
	"arunoday-portal/internal/pkg/pagination"
	"arunoday-portal/internal/pkg/response"
	"arunoday-portal/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles student management and payment reporting for admins
type AdminHandler struct {
	studentService *services.StudentService
	paymentService *services.PaymentService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(studentService *services.StudentService, paymentService *services.PaymentService) *AdminHandler {
	return &AdminHandler{
		studentService: studentService,
		paymentService: paymentService,
	}
}

// ListStudents handles listing students (Admin only)
// @Summary List students
// @Description Get students without password hashes (Admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(1000)
// @Success 200 {array} models.StudentResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /admin/students [get]
func (h *AdminHandler) ListStudents(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.StudentsLimit)

	students, total, err := h.studentService.ListStudents(c.UserContext(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list students")
	}

	pagination.SetTotal(c, total)
	return response.JSON(c, students)
}

// CreateStudent handles creating a student (Admin only)
// @Summary Create student
// @Description Create a student with a pending fee status (Admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateStudentInput true "Student data"
// @Success 200 {object} models.StudentResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /admin/students [post]
func (h *AdminHandler) CreateStudent(c *fiber.Ctx) error {
	var req services.CreateStudentInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Email = strings.TrimSpace(req.Email)
	req.RollNumber = strings.TrimSpace(req.RollNumber)

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	student, err := h.studentService.CreateStudent(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrStudentAlreadyExists) {
			return response.BadRequest(c, "Email or roll number already exists")
		}
		return response.InternalServerError(c, "Failed to create student")
	}

	return response.JSON(c, student)
}

// UpdateStudent handles a partial student update (Admin only)
// @Summary Update student
// @Description Update the supplied student fields (Admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param body body services.UpdateStudentInput true "Fields to update"
// @Success 200 {object} models.StudentResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/students/{id} [put]
func (h *AdminHandler) UpdateStudent(c *fiber.Ctx) error {
	var req services.UpdateStudentInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	student, err := h.studentService.UpdateStudent(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Student not found")
		case errors.Is(err, services.ErrStudentAlreadyExists):
			return response.BadRequest(c, "Email or roll number already exists")
		default:
			return response.InternalServerError(c, "Failed to update student")
		}
	}

	return response.JSON(c, student)
}

// DeleteStudent handles deleting a student (Admin only)
// @Summary Delete student
// @Description Hard delete a student; their payments are kept (Admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/students/{id} [delete]
func (h *AdminHandler) DeleteStudent(c *fiber.Ctx) error {
	if err := h.studentService.DeleteStudent(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to delete student")
	}

	return response.Message(c, "Student deleted successfully")
}

// ResetPassword handles resetting a student's password (Admin only)
// @Summary Reset student password
// @Description Set a new password for a student without the old one (Admin only)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param body body services.ResetPasswordInput true "New password"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/students/{id}/reset-password [post]
func (h *AdminHandler) ResetPassword(c *fiber.Ctx) error {
	var req services.ResetPasswordInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.studentService.ResetPassword(c.UserContext(), c.Params("id"), &req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to reset password")
	}

	return response.Message(c, "Password reset successfully")
}

// ListPayments handles listing every payment (Admin only)
// @Summary List payments
// @Description Get all fee payments (Admin only)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(1000)
// @Success 200 {array} models.PaymentResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /admin/payments [get]
func (h *AdminHandler) ListPayments(c *fiber.Ctx) error {
	params := pagination.GetParams(c, pagination.PaymentsLimit)

	payments, total, err := h.paymentService.ListAllPayments(c.UserContext(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list payments")
	}

	pagination.SetTotal(c, total)
	return response.JSON(c, payments)
}
