package ticket

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"helpdesk-backend/internal/models"
	"helpdesk-backend/internal/notify"
	"helpdesk-backend/internal/realtime"
	"helpdesk-backend/internal/store"
)

// ValidationError marks failures the client caused (missing fields,
// bad status). The HTTP layer maps it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }

// Service owns ticket semantics: validation, id/code/timestamp
// assignment, the fixed status vocabulary, and orchestration of the
// storage adapter. Mailer and hub are optional; nil disables them.
type Service struct {
	store             store.TicketStore
	seq               Sequencer
	mailer            notify.Mailer
	hub               *realtime.TicketsHub
	requireAttachment bool
}

func NewService(st store.TicketStore, seq Sequencer, mailer notify.Mailer, hub *realtime.TicketsHub, requireAttachment bool) *Service {
	return &Service{
		store:             st,
		seq:               seq,
		mailer:            mailer,
		hub:               hub,
		requireAttachment: requireAttachment,
	}
}

func (s *Service) Submit(ctx context.Context, req *models.CreateTicketRequest) (*models.Ticket, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Description) == "" {
		return nil, validationErr("Missing required fields")
	}
	if s.requireAttachment && len(req.Attachments) == 0 {
		return nil, validationErr("At least one attachment is required")
	}

	now := time.Now().UTC()
	n, err := s.seq.Next(ctx, now.Format("20060102"))
	if err != nil {
		return nil, err
	}

	t := &models.Ticket{
		ID:          uuid.NewString(),
		Code:        ticketCode(now, n),
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Description: req.Description,
		RequestType: req.RequestType,
		Priority:    req.Priority,
		Location:    req.Location,
		Room:        req.Room,
		CC:          req.CC,
		Notes:       req.Notes,
		Status:      models.StatusNew,
		Attachments: req.Attachments,
		Messages:    []models.Message{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Priority == "" {
		t.Priority = "Medium"
	}
	if t.Location == "" {
		t.Location = "NYC"
	}
	if t.Attachments == nil {
		t.Attachments = []models.Attachment{}
	}

	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		s.mailer.TicketCreated(t)
	}
	s.publish("ticket_created", t)
	return t, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Ticket, error) {
	return s.store.GetByID(ctx, id)
}

// List returns tickets newest-first. An unrecognized filter value is
// ignored rather than rejected.
func (s *Service) List(ctx context.Context, status string) ([]models.Ticket, error) {
	if !models.IsValidStatus(status) {
		status = ""
	}
	return s.store.List(ctx, status)
}

// UpdateStatus overwrites unconditionally: any status is reachable
// from any other, there is no approval workflow.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*models.Ticket, error) {
	if !models.IsValidStatus(status) {
		return nil, validationErr("Invalid status")
	}
	t, err := s.store.UpdateStatus(ctx, id, status, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	s.publish("status_updated", t)
	return t, nil
}

func (s *Service) AddMessage(ctx context.Context, ticketID, body string, fromAdmin bool) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, validationErr("Message body required")
	}

	m := &models.Message{
		ID:        uuid.NewString(),
		TicketID:  ticketID,
		Body:      body,
		FromAdmin: fromAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.AddMessage(ctx, ticketID, m); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		t, err := s.store.GetByID(ctx, ticketID)
		if err == nil {
			s.mailer.MessageAdded(t, m)
		}
	}
	s.publish("message_added", m)
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.publish("ticket_deleted", map[string]string{"id": id})
	return nil
}

func (s *Service) publish(event string, data interface{}) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"type": event,
		"data": data,
	})
	if err != nil {
		return
	}
	s.hub.Broadcast <- payload
}

func ticketCode(now time.Time, n int64) string {
	return fmt.Sprintf("T-%s-%04d", now.Format("20060102"), n)
}
