package store

import (
	"context"
	"errors"
	"time"

	"helpdesk-backend/internal/models"
)

// ErrNotFound is returned for every lookup or mutation on an unknown
// ticket id.
var ErrNotFound = errors.New("ticket not found")

// TicketStore persists tickets and their messages. A ticket owns its
// messages: Delete removes both.
type TicketStore interface {
	Create(ctx context.Context, t *models.Ticket) error
	// GetByID returns the ticket with its messages in chronological order.
	GetByID(ctx context.Context, id string) (*models.Ticket, error)
	// List returns tickets newest-first. An empty status means no filter.
	List(ctx context.Context, status string) ([]models.Ticket, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) (*models.Ticket, error)
	AddMessage(ctx context.Context, ticketID string, m *models.Message) error
	Delete(ctx context.Context, id string) error
}
