package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"helpdesk-backend/internal/models"
	"helpdesk-backend/internal/store"
	"helpdesk-backend/internal/ticket"
)

// TicketHandler translates HTTP to service calls. No business logic
// lives here.
type TicketHandler struct {
	svc *ticket.Service
}

func NewTicketHandler(svc *ticket.Service) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// CreateTicket - POST /api/tickets
func (h *TicketHandler) CreateTicket(c *fiber.Ctx) error {
	var req models.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	t, err := h.svc.Submit(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// ListTickets - GET /api/tickets?status=
func (h *TicketHandler) ListTickets(c *fiber.Ctx) error {
	tickets, err := h.svc.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tickets)
}

// GetTicket - GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *fiber.Ctx) error {
	t, err := h.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(t)
}

// UpdateStatus - PATCH /api/tickets/:id/status
func (h *TicketHandler) UpdateStatus(c *fiber.Ctx) error {
	var req models.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	t, err := h.svc.UpdateStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(t)
}

// AddMessage - POST /api/tickets/:id/messages
func (h *TicketHandler) AddMessage(c *fiber.Ctx) error {
	var req models.AddMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	m, err := h.svc.AddMessage(c.UserContext(), c.Params("id"), req.Body, req.FromAdmin)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// DeleteTicket - DELETE /api/tickets/:id
func (h *TicketHandler) DeleteTicket(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Deleted successfully",
	})
}

// respondError maps service failures onto the HTTP taxonomy:
// validation 400, unknown id 404, anything else logged and a generic
// 500 so internals never leak to the client.
func respondError(c *fiber.Ctx, err error) error {
	var verr *ticket.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Msg,
		})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	default:
		log.Println("ticket handler:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}
}
