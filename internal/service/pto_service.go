package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rickar/cal/v2"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

// PTOService manages the leave request pipeline and derived balances.
type PTOService struct {
	pto      repository.PTORepository
	calendar *cal.BusinessCalendar
}

func NewPTOService(pto repository.PTORepository) *PTOService {
	// Clinics run Monday through Saturday.
	c := cal.NewBusinessCalendar()
	c.SetWorkday(time.Saturday, true)
	return &PTOService{pto: pto, calendar: c}
}

// CreatePTOInput carries a new leave request. RequestedDays zero means
// derive the business-day count from the date range.
type CreatePTOInput struct {
	EmployeeID    string
	CompanyID     string
	LeaveType     string
	StartDate     time.Time
	EndDate       time.Time
	RequestedDays int
	Comment       string
	RequestedBy   string
}

func (s *PTOService) Create(ctx context.Context, input CreatePTOInput) (*models.PTORequest, error) {
	if input.EmployeeID == "" {
		return nil, models.NewValidationError("employee_id", "is required")
	}
	if input.RequestedDays < 0 {
		return nil, models.NewValidationError("requested_days", "must not be negative")
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, models.NewValidationError("end_date", "must not precede start date")
	}
	if input.LeaveType != models.LeaveTypePaid && input.LeaveType != models.LeaveTypeUnpaid {
		return nil, models.NewValidationError("leave_type", "must be paid or unpaid")
	}

	days := input.RequestedDays
	if days == 0 {
		days = s.businessDays(input.StartDate, input.EndDate)
	}

	req := &models.PTORequest{
		ID:            uuid.NewString(),
		EmployeeID:    input.EmployeeID,
		CompanyID:     input.CompanyID,
		LeaveType:     input.LeaveType,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		RequestedDays: days,
		Status:        models.PTOStatusPending,
		Comment:       input.Comment,
		RequestedBy:   input.RequestedBy,
		CreatedAt:     time.Now(),
	}
	if err := s.pto.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// businessDays counts workdays in the inclusive date range.
func (s *PTOService) businessDays(start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if s.calendar.IsWorkday(d) {
			days++
		}
	}
	return days
}

// Approve moves a pending request to approved. Terminal requests are never
// re-reviewed; a second decision leaves the original review record intact.
func (s *PTOService) Approve(ctx context.Context, id, reviewerID string) (*models.PTORequest, error) {
	return s.review(ctx, id, reviewerID, models.PTOStatusApproved)
}

// Reject moves a pending request to rejected.
func (s *PTOService) Reject(ctx context.Context, id, reviewerID string) (*models.PTORequest, error) {
	return s.review(ctx, id, reviewerID, models.PTOStatusRejected)
}

func (s *PTOService) review(ctx context.Context, id, reviewerID, status string) (*models.PTORequest, error) {
	req, err := s.pto.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !req.IsPending() {
		return nil, models.NewInvalidStateTransition("pto request", req.Status, status)
	}

	now := time.Now()
	req.Status = status
	req.ReviewedBy = &reviewerID
	req.ReviewedAt = &now

	if err := s.pto.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *PTOService) Get(ctx context.Context, id string) (*models.PTORequest, error) {
	return s.pto.GetByID(ctx, id)
}

func (s *PTOService) ListByEmployee(ctx context.Context, employeeID string) ([]*models.PTORequest, error) {
	return s.pto.ListByEmployee(ctx, employeeID)
}

func (s *PTOService) ListByCompany(ctx context.Context, companyID string) ([]*models.PTORequest, error) {
	return s.pto.ListByCompany(ctx, companyID)
}

// Balance derives an employee's balance from their full request history. The
// allotment comes from the company policy, falling back to the default when
// no policy row exists.
func (s *PTOService) Balance(ctx context.Context, employeeID, companyID string) (models.PTOBalance, error) {
	requests, err := s.pto.ListByEmployee(ctx, employeeID)
	if err != nil {
		return models.PTOBalance{}, err
	}

	allotment := models.DefaultPTOAllotment
	if policy, err := s.pto.GetPolicy(ctx, companyID); err == nil && policy != nil {
		allotment = policy.AnnualAllotment
	}

	return models.ComputePTOBalance(requests, allotment), nil
}
