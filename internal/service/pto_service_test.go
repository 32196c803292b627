package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPTOServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending request", func(t *testing.T) {
		svc := NewPTOService(repository.NewMemoryPTORepository())

		req, err := svc.Create(ctx, CreatePTOInput{
			EmployeeID:    "e1",
			CompanyID:     "c1",
			LeaveType:     models.LeaveTypePaid,
			StartDate:     date(2026, time.March, 2),
			EndDate:       date(2026, time.March, 4),
			RequestedDays: 3,
			RequestedBy:   "e1",
		})
		require.NoError(t, err)
		assert.Equal(t, models.PTOStatusPending, req.Status)
		assert.Equal(t, 3, req.RequestedDays)
		assert.NotEmpty(t, req.ID)
		assert.Nil(t, req.ReviewedAt)
	})

	t.Run("derives business days when count is zero", func(t *testing.T) {
		svc := NewPTOService(repository.NewMemoryPTORepository())

		// Monday through next Monday spans one Sunday; Saturday counts as a
		// workday.
		req, err := svc.Create(ctx, CreatePTOInput{
			EmployeeID: "e1",
			LeaveType:  models.LeaveTypePaid,
			StartDate:  date(2026, time.March, 2),
			EndDate:    date(2026, time.March, 9),
		})
		require.NoError(t, err)
		assert.Equal(t, 7, req.RequestedDays)
	})

	t.Run("rejects negative day counts", func(t *testing.T) {
		svc := NewPTOService(repository.NewMemoryPTORepository())

		_, err := svc.Create(ctx, CreatePTOInput{
			EmployeeID:    "e1",
			LeaveType:     models.LeaveTypePaid,
			StartDate:     date(2026, time.March, 2),
			EndDate:       date(2026, time.March, 4),
			RequestedDays: -1,
		})
		assert.True(t, models.IsValidation(err))
	})

	t.Run("rejects inverted date ranges", func(t *testing.T) {
		svc := NewPTOService(repository.NewMemoryPTORepository())

		_, err := svc.Create(ctx, CreatePTOInput{
			EmployeeID: "e1",
			LeaveType:  models.LeaveTypePaid,
			StartDate:  date(2026, time.March, 4),
			EndDate:    date(2026, time.March, 2),
		})
		assert.True(t, models.IsValidation(err))
	})

	t.Run("rejects unknown leave types", func(t *testing.T) {
		svc := NewPTOService(repository.NewMemoryPTORepository())

		_, err := svc.Create(ctx, CreatePTOInput{
			EmployeeID: "e1",
			LeaveType:  "sabbatical",
			StartDate:  date(2026, time.March, 2),
			EndDate:    date(2026, time.March, 4),
		})
		assert.True(t, models.IsValidation(err))
	})
}

func TestPTOServiceReview(t *testing.T) {
	ctx := context.Background()

	newPending := func(t *testing.T, svc *PTOService, days int) *models.PTORequest {
		t.Helper()
		req, err := svc.Create(ctx, CreatePTOInput{
			EmployeeID:    "e1",
			CompanyID:     "c1",
			LeaveType:     models.LeaveTypePaid,
			StartDate:     date(2026, time.March, 2),
			EndDate:       date(2026, time.March, 6),
			RequestedDays: days,
			RequestedBy:   "e1",
		})
		require.NoError(t, err)
		return req
	}

	t.Run("approve records the reviewer", func(t *testing.T) {
		svc := NewPTOService(repository.NewMemoryPTORepository())
		req := newPending(t, svc, 5)

		reviewed, err := svc.Approve(ctx, req.ID, "mgr")
		require.NoError(t, err)
		assert.Equal(t, models.PTOStatusApproved, reviewed.Status)
		require.NotNil(t, reviewed.ReviewedBy)
		assert.Equal(t, "mgr", *reviewed.ReviewedBy)
		assert.NotNil(t, reviewed.ReviewedAt)
	})

	t.Run("terminal requests are never re-reviewed", func(t *testing.T) {
		svc := NewPTOService(repository.NewMemoryPTORepository())
		req := newPending(t, svc, 5)

		approved, err := svc.Approve(ctx, req.ID, "mgr")
		require.NoError(t, err)

		_, err = svc.Reject(ctx, req.ID, "other-mgr")
		assert.True(t, models.IsInvalidTransition(err))

		// The original review record survives the failed second decision.
		stored, err := svc.Get(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PTOStatusApproved, stored.Status)
		assert.Equal(t, "mgr", *stored.ReviewedBy)
		assert.Equal(t, approved.ReviewedAt.Unix(), stored.ReviewedAt.Unix())
	})

	t.Run("review of unknown request is not found", func(t *testing.T) {
		svc := NewPTOService(repository.NewMemoryPTORepository())

		_, err := svc.Approve(ctx, "missing", "mgr")
		assert.True(t, models.IsNotFound(err))
	})
}

func TestPTOServiceBalance(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc *PTOService, days int, approve bool) {
		t.Helper()
		req, err := svc.Create(ctx, CreatePTOInput{
			EmployeeID:    "e1",
			CompanyID:     "c1",
			LeaveType:     models.LeaveTypePaid,
			StartDate:     date(2026, time.March, 2),
			EndDate:       date(2026, time.March, 6),
			RequestedDays: days,
			RequestedBy:   "e1",
		})
		require.NoError(t, err)
		if approve {
			_, err = svc.Approve(ctx, req.ID, "mgr")
			require.NoError(t, err)
		}
	}

	t.Run("pending days do not reduce available", func(t *testing.T) {
		repo := repository.NewMemoryPTORepository()
		svc := NewPTOService(repo)
		seed(t, svc, 5, true)
		seed(t, svc, 3, false)

		balance, err := svc.Balance(ctx, "e1", "c1")
		require.NoError(t, err)
		assert.Equal(t, models.DefaultPTOAllotment, balance.Total)
		assert.Equal(t, 5, balance.Used)
		assert.Equal(t, 3, balance.Pending)
		assert.Equal(t, models.DefaultPTOAllotment-5, balance.Available)
	})

	t.Run("company policy overrides the default allotment", func(t *testing.T) {
		repo := repository.NewMemoryPTORepository()
		repo.SetPolicy(&models.PTOPolicy{CompanyID: "c1", AnnualAllotment: 25})
		svc := NewPTOService(repo)
		seed(t, svc, 4, true)

		balance, err := svc.Balance(ctx, "e1", "c1")
		require.NoError(t, err)
		assert.Equal(t, 25, balance.Total)
		assert.Equal(t, 21, balance.Available)
	})

	t.Run("rejected requests count nowhere", func(t *testing.T) {
		repo := repository.NewMemoryPTORepository()
		svc := NewPTOService(repo)
		req, err := svc.Create(ctx, CreatePTOInput{
			EmployeeID:    "e1",
			CompanyID:     "c1",
			LeaveType:     models.LeaveTypePaid,
			StartDate:     date(2026, time.March, 2),
			EndDate:       date(2026, time.March, 6),
			RequestedDays: 5,
			RequestedBy:   "e1",
		})
		require.NoError(t, err)
		_, err = svc.Reject(ctx, req.ID, "mgr")
		require.NoError(t, err)

		balance, err := svc.Balance(ctx, "e1", "c1")
		require.NoError(t, err)
		assert.Equal(t, 0, balance.Used)
		assert.Equal(t, 0, balance.Pending)
		assert.Equal(t, models.DefaultPTOAllotment, balance.Available)
	})
}
