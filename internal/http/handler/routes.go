package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes mounts the REST surface. ws may be nil (tests run
// without the realtime feed).
func RegisterRoutes(app *fiber.App, th *TicketHandler, uh *UploadHandler, ws *TicketsWS) {
	api := app.Group("/api")

	api.Get("/health", Health)

	api.Get("/tickets", th.ListTickets)
	api.Post("/tickets", th.CreateTicket)
	api.Get("/tickets/:id", th.GetTicket)
	api.Patch("/tickets/:id/status", th.UpdateStatus)
	api.Post("/tickets/:id/messages", th.AddMessage)
	api.Delete("/tickets/:id", th.DeleteTicket)

	api.Post("/upload", uh.Upload)

	if ws != nil {
		app.Get("/ws/tickets", websocket.New(ws.Serve))
	}
}
