package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/utils"
)

// TicketService manages facilities/IT tickets and their activity logs.
// Update messages accept markdown; everything is sanitized before storage.
type TicketService struct {
	tickets   repository.TicketRepository
	sanitizer *utils.HTMLSanitizer
}

func NewTicketService(tickets repository.TicketRepository, sanitizer *utils.HTMLSanitizer) *TicketService {
	return &TicketService{tickets: tickets, sanitizer: sanitizer}
}

// CreateTicketInput carries a new ticket. Empty status and priority default
// to Open and Medium.
type CreateTicketInput struct {
	CompanyID   string
	Subject     string
	Requester   string
	Location    string
	Channel     string
	Category    string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
}

func (s *TicketService) Create(ctx context.Context, input CreateTicketInput) (*models.Ticket, error) {
	if input.Subject == "" {
		return nil, models.NewValidationError("subject", "is required")
	}
	if input.Status == "" {
		input.Status = models.TicketStatusOpen
	}
	if input.Priority == "" {
		input.Priority = models.TicketPriorityMedium
	}
	if !models.ValidTicketStatus(input.Status) {
		return nil, models.NewValidationError("status", "unknown status")
	}
	if !models.ValidTicketPriority(input.Priority) {
		return nil, models.NewValidationError("priority", "unknown priority")
	}

	ticket := &models.Ticket{
		ID:          uuid.NewString(),
		CompanyID:   input.CompanyID,
		Subject:     input.Subject,
		Requester:   input.Requester,
		Location:    input.Location,
		Channel:     input.Channel,
		Category:    input.Category,
		Description: s.sanitizer.Sanitize(utils.MarkdownToHTML(input.Description)),
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedAt:   time.Now(),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) Get(ctx context.Context, id string) (*models.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

func (s *TicketService) List(ctx context.Context, companyID string) ([]*models.Ticket, error) {
	return s.tickets.List(ctx, companyID)
}

// UpdateTicketInput carries mutable ticket fields. Nil pointers leave the
// stored value untouched. Status changes are unconstrained.
type UpdateTicketInput struct {
	Subject      *string
	Location     *string
	Category     *string
	Description  *string
	Status       *string
	Priority     *string
	DueDate      *time.Time
	Satisfaction *int
}

func (s *TicketService) Update(ctx context.Context, id string, input UpdateTicketInput) (*models.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Subject != nil {
		ticket.Subject = *input.Subject
	}
	if input.Location != nil {
		ticket.Location = *input.Location
	}
	if input.Category != nil {
		ticket.Category = *input.Category
	}
	if input.Description != nil {
		ticket.Description = s.sanitizer.Sanitize(utils.MarkdownToHTML(*input.Description))
	}
	if input.Status != nil {
		if !models.ValidTicketStatus(*input.Status) {
			return nil, models.NewValidationError("status", "unknown status")
		}
		ticket.Status = *input.Status
	}
	if input.Priority != nil {
		if !models.ValidTicketPriority(*input.Priority) {
			return nil, models.NewValidationError("priority", "unknown priority")
		}
		ticket.Priority = *input.Priority
	}
	if input.DueDate != nil {
		ticket.DueDate = input.DueDate
	}
	if input.Satisfaction != nil {
		if *input.Satisfaction < 1 || *input.Satisfaction > 5 {
			return nil, models.NewValidationError("satisfaction", "must be between 1 and 5")
		}
		ticket.Satisfaction = input.Satisfaction
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return s.tickets.GetByID(ctx, id)
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	return s.tickets.Delete(ctx, id)
}

// AddUpdate appends one entry to a ticket's activity log. The log is
// append-only; entries are never edited or removed.
func (s *TicketService) AddUpdate(ctx context.Context, ticketID, message, user string) (*models.TicketUpdate, error) {
	if message == "" {
		return nil, models.NewValidationError("message", "is required")
	}

	update := &models.TicketUpdate{
		ID:        uuid.NewString(),
		TicketID:  ticketID,
		Timestamp: time.Now(),
		Message:   s.sanitizer.Sanitize(utils.MarkdownToHTML(message)),
		User:      user,
	}
	if err := s.tickets.AppendUpdate(ctx, update); err != nil {
		return nil, err
	}
	return update, nil
}
