package store

import (
	"context"
	"sync"
	"time"

	"helpdesk-backend/internal/models"
)

// MemoryStore keeps tickets in a process-lifetime map. Everything is
// lost on restart. The mutex guards the map and slice structure; two
// requests mutating the same ticket id still race with last-write-wins,
// which is acceptable here.
type MemoryStore struct {
	mu      sync.RWMutex
	tickets map[string]*models.Ticket
	order   []string // insertion order; List walks it backwards
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tickets: make(map[string]*models.Ticket)}
}

func (s *MemoryStore) Create(_ context.Context, t *models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := cloneTicket(t)
	s.tickets[t.ID] = cp
	s.order = append(s.order, t.ID)
	return nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneTicket(t), nil
}

func (s *MemoryStore) List(_ context.Context, status string) ([]models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Ticket{}
	for i := len(s.order) - 1; i >= 0; i-- {
		t, ok := s.tickets[s.order[i]]
		if !ok {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, *cloneTicket(t))
	}
	return out, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id, status string, updatedAt time.Time) (*models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, ErrNotFound
	}
	t.Status = status
	t.UpdatedAt = updatedAt
	return cloneTicket(t), nil
}

func (s *MemoryStore) AddMessage(_ context.Context, ticketID string, m *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[ticketID]
	if !ok {
		return ErrNotFound
	}
	t.Messages = append(t.Messages, *m)
	return nil
}

// Delete removes the ticket and, with it, every message it owns.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tickets[id]; !ok {
		return ErrNotFound
	}
	delete(s.tickets, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// cloneTicket copies the record so callers never alias store-owned
// slices.
func cloneTicket(t *models.Ticket) *models.Ticket {
	cp := *t
	cp.Attachments = append([]models.Attachment{}, t.Attachments...)
	cp.Messages = append([]models.Message{}, t.Messages...)
	return &cp
}
