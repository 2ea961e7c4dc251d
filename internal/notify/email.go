// Package notify carries ticket notifications. The only implementation
// is a mock that writes the mail it would send to the log; delivery is
// best-effort and never retried.
package notify

import (
	"log"

	"helpdesk-backend/internal/models"
)

type Mailer interface {
	TicketCreated(t *models.Ticket)
	MessageAdded(t *models.Ticket, m *models.Message)
}

type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (LogMailer) TicketCreated(t *models.Ticket) {
	log.Printf("[email mock] would send: new ticket %s from %s <%s>: %s",
		t.Code, t.Name, t.Email, t.Description)
}

func (LogMailer) MessageAdded(t *models.Ticket, m *models.Message) {
	who := "submitter"
	if m.FromAdmin {
		who = "admin"
	}
	log.Printf("[email mock] would send: new %s message on ticket %s: %s",
		who, t.Code, m.Body)
}
