package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// MemoryTicketRepository is an in-memory implementation for testing.
type MemoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]*models.Ticket
}

func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{tickets: make(map[string]*models.Ticket)}
}

func cloneTicket(t *models.Ticket) *models.Ticket {
	ticketCopy := *t
	ticketCopy.Updates = append([]models.TicketUpdate(nil), t.Updates...)
	return &ticketCopy
}

func (r *MemoryTicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[ticket.ID] = cloneTicket(ticket)
	return nil
}

func (r *MemoryTicketRepository) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, models.NewNotFoundError("ticket", id)
	}
	return cloneTicket(ticket), nil
}

func (r *MemoryTicketRepository) List(ctx context.Context, companyID string) ([]*models.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Ticket
	for _, ticket := range r.tickets {
		if ticket.CompanyID == companyID {
			out = append(out, cloneTicket(ticket))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryTicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tickets[ticket.ID]
	if !ok {
		return models.NewNotFoundError("ticket", ticket.ID)
	}
	updated := cloneTicket(ticket)
	// The update log is append-only; keep whatever is already recorded.
	updated.Updates = existing.Updates
	r.tickets[ticket.ID] = updated
	return nil
}

func (r *MemoryTicketRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[id]; !ok {
		return models.NewNotFoundError("ticket", id)
	}
	delete(r.tickets, id)
	return nil
}

func (r *MemoryTicketRepository) AppendUpdate(ctx context.Context, update *models.TicketUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[update.TicketID]
	if !ok {
		return models.NewNotFoundError("ticket", update.TicketID)
	}
	ticket.Updates = append(ticket.Updates, *update)
	return nil
}
