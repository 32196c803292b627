package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// SQLPTORepository stores leave requests in pto_requests and allotment
// overrides in pto_policies.
type SQLPTORepository struct {
	db *sqlx.DB
}

func NewSQLPTORepository(db *sqlx.DB) *SQLPTORepository {
	return &SQLPTORepository{db: db}
}

func (r *SQLPTORepository) Create(ctx context.Context, req *models.PTORequest) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pto_requests
		 (id, employee_id, company_id, leave_type, start_date, end_date,
		  requested_days, status, comment, requested_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.EmployeeID, req.CompanyID, req.LeaveType, req.StartDate,
		req.EndDate, req.RequestedDays, req.Status, req.Comment, req.RequestedBy,
		req.CreatedAt)
	if err != nil {
		return fmt.Errorf("create pto request: %w", err)
	}
	return nil
}

func (r *SQLPTORepository) GetByID(ctx context.Context, id string) (*models.PTORequest, error) {
	var req models.PTORequest
	err := r.db.GetContext(ctx, &req,
		`SELECT id, employee_id, company_id, leave_type, start_date, end_date,
		        requested_days, status, comment, requested_by, reviewed_by,
		        reviewed_at, created_at
		 FROM pto_requests WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("pto request", id)
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *SQLPTORepository) ListByEmployee(ctx context.Context, employeeID string) ([]*models.PTORequest, error) {
	var out []*models.PTORequest
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, employee_id, company_id, leave_type, start_date, end_date,
		        requested_days, status, comment, requested_by, reviewed_by,
		        reviewed_at, created_at
		 FROM pto_requests WHERE employee_id = ? ORDER BY created_at`, employeeID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLPTORepository) ListByCompany(ctx context.Context, companyID string) ([]*models.PTORequest, error) {
	var out []*models.PTORequest
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, employee_id, company_id, leave_type, start_date, end_date,
		        requested_days, status, comment, requested_by, reviewed_by,
		        reviewed_at, created_at
		 FROM pto_requests WHERE company_id = ? ORDER BY created_at`, companyID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLPTORepository) Update(ctx context.Context, req *models.PTORequest) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pto_requests
		 SET status = ?, comment = ?, reviewed_by = ?, reviewed_at = ?
		 WHERE id = ?`,
		req.Status, req.Comment, req.ReviewedBy, req.ReviewedAt, req.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, gerr := r.GetByID(ctx, req.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

func (r *SQLPTORepository) GetPolicy(ctx context.Context, companyID string) (*models.PTOPolicy, error) {
	var policy models.PTOPolicy
	err := r.db.GetContext(ctx, &policy,
		`SELECT company_id, annual_allotment FROM pto_policies WHERE company_id = ?`,
		companyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("pto policy", companyID)
	}
	if err != nil {
		return nil, err
	}
	return &policy, nil
}
