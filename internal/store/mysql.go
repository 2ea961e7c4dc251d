package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"helpdesk-backend/internal/models"
)

// MySQLStore persists tickets and messages in two tables. Messages
// carry an ON DELETE CASCADE foreign key, so deleting a ticket removes
// its thread in the same statement.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// EnsureSchema creates both tables when they do not exist yet.
func (s *MySQLStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tickets (
			id CHAR(36) PRIMARY KEY,
			code VARCHAR(32) NOT NULL DEFAULT '',
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			subject VARCHAR(255) NOT NULL DEFAULT '',
			description TEXT NOT NULL,
			request_type VARCHAR(100) NOT NULL DEFAULT '',
			priority VARCHAR(20) NOT NULL DEFAULT 'Medium',
			location VARCHAR(100) NOT NULL DEFAULT '',
			room VARCHAR(100) NOT NULL DEFAULT '',
			cc VARCHAR(255) NOT NULL DEFAULT '',
			notes TEXT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'NEW',
			attachments JSON NULL,
			created_at DATETIME(3) NOT NULL,
			updated_at DATETIME(3) NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS messages (
			id CHAR(36) PRIMARY KEY,
			ticket_id CHAR(36) NOT NULL,
			body TEXT NOT NULL,
			from_admin TINYINT(1) NOT NULL DEFAULT 0,
			created_at DATETIME(3) NOT NULL,
			CONSTRAINT fk_messages_ticket FOREIGN KEY (ticket_id)
				REFERENCES tickets(id) ON DELETE CASCADE
		)
	`)
	return err
}

const ticketColumns = `id, code, name, email, subject, description, request_type,
	priority, location, room, cc, notes, status, attachments, created_at, updated_at`

func (s *MySQLStore) Create(ctx context.Context, t *models.Ticket) error {
	attachments, err := json.Marshal(t.Attachments)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tickets (`+ticketColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID, t.Code, t.Name, t.Email, t.Subject, t.Description, t.RequestType,
		t.Priority, t.Location, t.Room, t.CC, t.Notes, t.Status, attachments,
		t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (s *MySQLStore) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = ?`, id)
	t, err := scanTicket(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ticket_id, body, from_admin, created_at
		FROM messages WHERE ticket_id = ?
		ORDER BY created_at ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.TicketID, &m.Body, &m.FromAdmin, &m.CreatedAt); err != nil {
			return nil, err
		}
		t.Messages = append(t.Messages, m)
	}
	return t, rows.Err()
}

func (s *MySQLStore) List(ctx context.Context, status string) ([]models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE 1=1`
	args := []interface{}{}

	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := []models.Ticket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, rows.Err()
}

func (s *MySQLStore) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) (*models.Ticket, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tickets SET status = ?, updated_at = ? WHERE id = ?`,
		status, updatedAt, id,
	)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// The update may also be a no-op because the status already
		// matches; distinguish via an existence check.
		var exists int
		if err := s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM tickets WHERE id = ?`, id).Scan(&exists); err != nil {
			return nil, err
		}
		if exists == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetByID(ctx, id)
}

func (s *MySQLStore) AddMessage(ctx context.Context, ticketID string, m *models.Message) error {
	var exists int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tickets WHERE id = ?`, ticketID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (id, ticket_id, body, from_admin, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, m.ID, m.TicketID, m.Body, m.FromAdmin, m.CreatedAt)
	return err
}

func (s *MySQLStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTicket(row rowScanner) (*models.Ticket, error) {
	var t models.Ticket
	var attachments sql.NullString
	err := row.Scan(
		&t.ID, &t.Code, &t.Name, &t.Email, &t.Subject, &t.Description,
		&t.RequestType, &t.Priority, &t.Location, &t.Room, &t.CC, &t.Notes,
		&t.Status, &attachments, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Attachments = []models.Attachment{}
	if attachments.Valid && attachments.String != "" {
		if err := json.Unmarshal([]byte(attachments.String), &t.Attachments); err != nil {
			return nil, err
		}
	}
	t.Messages = []models.Message{}
	return &t, nil
}
