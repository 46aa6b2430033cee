package handlers

import (
	"arunoday-portal/internal/core/services"
	"arunoday-portal/internal/pkg/response"
	"arunoday-portal/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles the public contact form
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles a contact form submission
// @Summary Submit contact form
// @Description Store a contact message from a site visitor
// @Tags Contact
// @Accept json
// @Produce json
// @Param body body services.ContactInput true "Contact data"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req services.ContactInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.contactService.Submit(c.UserContext(), &req); err != nil {
		return response.InternalServerError(c, "Failed to submit contact form")
	}

	return response.Message(c, "Thank you for contacting us. We will get back to you soon.")
}
