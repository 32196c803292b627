package models

import "time"

// Ticket statuses. The portal does not constrain transitions: any status may
// be set at any time (recorded decision, see DESIGN.md).
const (
	TicketStatusOpen       = "Open"
	TicketStatusInProgress = "In Progress"
	TicketStatusScheduled  = "Scheduled"
	TicketStatusResolved   = "Resolved"
)

// Ticket priorities.
const (
	TicketPriorityLow    = "Low"
	TicketPriorityMedium = "Medium"
	TicketPriorityHigh   = "High"
)

// TicketStatuses lists the valid statuses for input validation.
var TicketStatuses = []string{TicketStatusOpen, TicketStatusInProgress, TicketStatusScheduled, TicketStatusResolved}

// TicketPriorities lists the valid priorities for input validation.
var TicketPriorities = []string{TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh}

// Ticket is a facilities/IT request raised by clinic staff.
type Ticket struct {
	ID           string         `json:"id" db:"id"`
	CompanyID    string         `json:"company_id" db:"company_id"`
	Subject      string         `json:"subject" db:"subject"`
	Requester    string         `json:"requester" db:"requester"`
	Location     string         `json:"location" db:"location"`
	Channel      string         `json:"channel" db:"channel"`
	Category     string         `json:"category" db:"category"`
	Description  string         `json:"description" db:"description"`
	Status       string         `json:"status" db:"status"`
	Priority     string         `json:"priority" db:"priority"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	DueDate      *time.Time     `json:"due_date,omitempty" db:"due_date"`
	Satisfaction *int           `json:"satisfaction,omitempty" db:"satisfaction"`
	Updates      []TicketUpdate `json:"updates"`
}

// TicketUpdate is one entry of a ticket's append-only activity log, kept in
// chronological order.
type TicketUpdate struct {
	ID        string    `json:"id" db:"id"`
	TicketID  string    `json:"-" db:"ticket_id"`
	Timestamp time.Time `json:"timestamp" db:"ts"`
	Message   string    `json:"message" db:"message"`
	User      string    `json:"user" db:"user_name"`
}

// ValidTicketStatus reports whether s is a known status.
func ValidTicketStatus(s string) bool {
	for _, v := range TicketStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidTicketPriority reports whether p is a known priority.
func ValidTicketPriority(p string) bool {
	for _, v := range TicketPriorities {
		if v == p {
			return true
		}
	}
	return false
}
