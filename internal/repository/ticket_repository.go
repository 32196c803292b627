package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

const ticketColumns = `id, company_id, subject, requester, location, channel,
	category, description, status, priority, created_at, due_date, satisfaction`

// SQLTicketRepository stores tickets plus their append-only update log.
type SQLTicketRepository struct {
	db *sqlx.DB
}

func NewSQLTicketRepository(db *sqlx.DB) *SQLTicketRepository {
	return &SQLTicketRepository{db: db}
}

func (r *SQLTicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tickets (`+ticketColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ticket.ID, ticket.CompanyID, ticket.Subject, ticket.Requester,
		ticket.Location, ticket.Channel, ticket.Category, ticket.Description,
		ticket.Status, ticket.Priority, ticket.CreatedAt, ticket.DueDate,
		ticket.Satisfaction)
	if err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}
	for i := range ticket.Updates {
		if err := r.AppendUpdate(ctx, &ticket.Updates[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLTicketRepository) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.GetContext(ctx, &ticket,
		`SELECT `+ticketColumns+` FROM tickets WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("ticket", id)
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadUpdates(ctx, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *SQLTicketRepository) List(ctx context.Context, companyID string) ([]*models.Ticket, error) {
	var out []*models.Ticket
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+ticketColumns+` FROM tickets
		 WHERE company_id = ? ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, err
	}
	for _, ticket := range out {
		if err := r.loadUpdates(ctx, ticket); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SQLTicketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tickets
		 SET subject = ?, requester = ?, location = ?, channel = ?, category = ?,
		     description = ?, status = ?, priority = ?, due_date = ?, satisfaction = ?
		 WHERE id = ?`,
		ticket.Subject, ticket.Requester, ticket.Location, ticket.Channel,
		ticket.Category, ticket.Description, ticket.Status, ticket.Priority,
		ticket.DueDate, ticket.Satisfaction, ticket.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, gerr := r.GetByID(ctx, ticket.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

func (r *SQLTicketRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ticket_updates WHERE ticket_id = ?`, id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.NewNotFoundError("ticket", id)
	}
	return nil
}

// AppendUpdate adds one entry to the activity log. Updates are never edited
// or removed.
func (r *SQLTicketRepository) AppendUpdate(ctx context.Context, update *models.TicketUpdate) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ticket_updates (id, ticket_id, ts, message, user_name)
		 VALUES (?, ?, ?, ?, ?)`,
		update.ID, update.TicketID, update.Timestamp, update.Message, update.User)
	return err
}

func (r *SQLTicketRepository) loadUpdates(ctx context.Context, ticket *models.Ticket) error {
	var updates []models.TicketUpdate
	err := r.db.SelectContext(ctx, &updates,
		`SELECT id, ticket_id, ts, message, user_name
		 FROM ticket_updates WHERE ticket_id = ? ORDER BY ts`, ticket.ID)
	if err != nil {
		return err
	}
	ticket.Updates = updates
	return nil
}
