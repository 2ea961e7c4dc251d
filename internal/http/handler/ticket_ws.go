package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"helpdesk-backend/internal/realtime"
	"helpdesk-backend/internal/ticket"
)

// TicketsWS streams ticket events to admin dashboards. On connect the
// client gets a snapshot of the current list, then every
// created/updated/deleted event as it happens.
type TicketsWS struct {
	svc *ticket.Service
	hub *realtime.TicketsHub
}

func NewTicketsWS(svc *ticket.Service, hub *realtime.TicketsHub) *TicketsWS {
	return &TicketsWS{svc: svc, hub: hub}
}

func (h *TicketsWS) Serve(c *websocket.Conn) {
	h.hub.Register <- c
	defer func() {
		h.hub.Unregister <- c
	}()

	tickets, err := h.svc.List(context.Background(), "")
	if err != nil {
		_ = c.WriteJSON(fiber.Map{
			"type":    "error",
			"message": "Failed to load tickets",
		})
		return
	}
	_ = c.WriteJSON(fiber.Map{
		"type": "snapshot",
		"data": tickets,
	})

	// listen client
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
