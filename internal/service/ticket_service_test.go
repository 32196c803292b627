package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/utils"
)

func newTicketService() *TicketService {
	return NewTicketService(repository.NewMemoryTicketRepository(), utils.NewHTMLSanitizer())
}

func TestTicketServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status and priority", func(t *testing.T) {
		svc := newTicketService()

		ticket, err := svc.Create(ctx, CreateTicketInput{
			CompanyID: "c1",
			Subject:   "Autoclave door jammed",
			Requester: "Dana Reyes",
		})
		require.NoError(t, err)
		assert.Equal(t, models.TicketStatusOpen, ticket.Status)
		assert.Equal(t, models.TicketPriorityMedium, ticket.Priority)
	})

	t.Run("requires a subject", func(t *testing.T) {
		svc := newTicketService()

		_, err := svc.Create(ctx, CreateTicketInput{CompanyID: "c1"})
		assert.True(t, models.IsValidation(err))
	})

	t.Run("renders markdown and strips script tags", func(t *testing.T) {
		svc := newTicketService()

		ticket, err := svc.Create(ctx, CreateTicketInput{
			CompanyID:   "c1",
			Subject:     "Monitor flicker",
			Description: "**urgent** <script>alert(1)</script>",
		})
		require.NoError(t, err)
		assert.Contains(t, ticket.Description, "<strong>urgent</strong>")
		assert.NotContains(t, ticket.Description, "<script>")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc := newTicketService()

		_, err := svc.Create(ctx, CreateTicketInput{
			CompanyID: "c1",
			Subject:   "Chair hydraulics",
			Status:    "Paused",
		})
		assert.True(t, models.IsValidation(err))
	})
}

func TestTicketServiceUpdate(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc *TicketService) *models.Ticket {
		t.Helper()
		ticket, err := svc.Create(ctx, CreateTicketInput{
			CompanyID: "c1",
			Subject:   "Compressor noise",
			Priority:  models.TicketPriorityLow,
		})
		require.NoError(t, err)
		return ticket
	}

	t.Run("any status may follow any other", func(t *testing.T) {
		svc := newTicketService()
		ticket := create(t, svc)

		for _, status := range []string{
			models.TicketStatusResolved,
			models.TicketStatusOpen,
			models.TicketStatusScheduled,
			models.TicketStatusInProgress,
		} {
			updated, err := svc.Update(ctx, ticket.ID, UpdateTicketInput{Status: &status})
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		}
	})

	t.Run("satisfaction must be a 1 to 5 rating", func(t *testing.T) {
		svc := newTicketService()
		ticket := create(t, svc)

		bad := 6
		_, err := svc.Update(ctx, ticket.ID, UpdateTicketInput{Satisfaction: &bad})
		assert.True(t, models.IsValidation(err))

		good := 4
		updated, err := svc.Update(ctx, ticket.ID, UpdateTicketInput{Satisfaction: &good})
		require.NoError(t, err)
		assert.Equal(t, 4, *updated.Satisfaction)
	})

	t.Run("unknown ticket is not found", func(t *testing.T) {
		svc := newTicketService()

		status := models.TicketStatusResolved
		_, err := svc.Update(ctx, "missing", UpdateTicketInput{Status: &status})
		assert.True(t, models.IsNotFound(err))
	})
}

func TestTicketServiceUpdates(t *testing.T) {
	ctx := context.Background()

	t.Run("updates accumulate in order", func(t *testing.T) {
		svc := newTicketService()
		ticket, err := svc.Create(ctx, CreateTicketInput{CompanyID: "c1", Subject: "Leaky faucet"})
		require.NoError(t, err)

		_, err = svc.AddUpdate(ctx, ticket.ID, "Called the plumber", "Dana Reyes")
		require.NoError(t, err)
		_, err = svc.AddUpdate(ctx, ticket.ID, "Scheduled for Thursday", "Dana Reyes")
		require.NoError(t, err)

		stored, err := svc.Get(ctx, ticket.ID)
		require.NoError(t, err)
		require.Len(t, stored.Updates, 2)
		assert.Contains(t, stored.Updates[0].Message, "plumber")
		assert.Contains(t, stored.Updates[1].Message, "Thursday")
	})

	t.Run("editing a ticket preserves its log", func(t *testing.T) {
		svc := newTicketService()
		ticket, err := svc.Create(ctx, CreateTicketInput{CompanyID: "c1", Subject: "Leaky faucet"})
		require.NoError(t, err)
		_, err = svc.AddUpdate(ctx, ticket.ID, "Called the plumber", "Dana Reyes")
		require.NoError(t, err)

		status := models.TicketStatusInProgress
		updated, err := svc.Update(ctx, ticket.ID, UpdateTicketInput{Status: &status})
		require.NoError(t, err)
		assert.Len(t, updated.Updates, 1)
	})

	t.Run("empty messages are rejected", func(t *testing.T) {
		svc := newTicketService()
		ticket, err := svc.Create(ctx, CreateTicketInput{CompanyID: "c1", Subject: "Leaky faucet"})
		require.NoError(t, err)

		_, err = svc.AddUpdate(ctx, ticket.ID, "", "Dana Reyes")
		assert.True(t, models.IsValidation(err))
	})
}
