package models

import "time"

// Ticket statuses. Any status is reachable from any other; there is no
// transition table.
const (
	StatusNew        = "NEW"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
)

func IsValidStatus(s string) bool {
	return s == StatusNew || s == StatusInProgress || s == StatusResolved
}

type Ticket struct {
	ID          string       `json:"id"`
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Subject     string       `json:"subject"`
	Description string       `json:"description"`
	RequestType string       `json:"requestType"`
	Priority    string       `json:"priority"`
	Location    string       `json:"location"`
	Room        string       `json:"room"`
	CC          string       `json:"cc"`
	Notes       string       `json:"notes"`
	Status      string       `json:"status"`
	Attachments []Attachment `json:"attachments"`
	Messages    []Message    `json:"messages"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Attachment references uploaded media: either a URL returned by the
// upload endpoint, or inline base64 data sent by a client directly.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
	Data string `json:"data,omitempty"`
}

type Message struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticketId"`
	Body      string    `json:"body"`
	FromAdmin bool      `json:"fromAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// UploadedFile describes one stored upload in the /upload response.
type UploadedFile struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

type CreateTicketRequest struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Subject     string       `json:"subject"`
	Description string       `json:"description"`
	RequestType string       `json:"requestType"`
	Priority    string       `json:"priority"`
	Location    string       `json:"location"`
	Room        string       `json:"room"`
	CC          string       `json:"cc"`
	Notes       string       `json:"notes"`
	Attachments []Attachment `json:"attachments"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AddMessageRequest struct {
	Body      string `json:"body"`
	FromAdmin bool   `json:"fromAdmin"`
}
