package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

const employeeColumns = `id, company_id, first_name, last_name, email, phone, pw,
	role, position, clinic_id, hire_date, is_active, created_at, updated_at`

// SQLEmployeeRepository stores staff records in the employees table.
type SQLEmployeeRepository struct {
	db *sqlx.DB
}

func NewSQLEmployeeRepository(db *sqlx.DB) *SQLEmployeeRepository {
	return &SQLEmployeeRepository{db: db}
}

func (r *SQLEmployeeRepository) Create(ctx context.Context, emp *models.Employee) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (`+employeeColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		emp.ID, emp.CompanyID, emp.FirstName, emp.LastName, emp.Email, emp.Phone,
		emp.Password, emp.Role, emp.Position, emp.ClinicID, emp.HireDate,
		emp.IsActive, emp.CreatedAt, emp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

func (r *SQLEmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	var emp models.Employee
	err := r.db.GetContext(ctx, &emp,
		`SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("employee", id)
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *SQLEmployeeRepository) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var emp models.Employee
	err := r.db.GetContext(ctx, &emp,
		`SELECT `+employeeColumns+` FROM employees WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("employee", email)
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *SQLEmployeeRepository) List(ctx context.Context, companyID string) ([]*models.Employee, error) {
	var out []*models.Employee
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+employeeColumns+` FROM employees
		 WHERE company_id = ? ORDER BY last_name, first_name`, companyID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLEmployeeRepository) Update(ctx context.Context, emp *models.Employee) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees
		 SET first_name = ?, last_name = ?, email = ?, phone = ?, pw = ?,
		     role = ?, position = ?, clinic_id = ?, hire_date = ?, is_active = ?,
		     updated_at = ?
		 WHERE id = ?`,
		emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Password,
		emp.Role, emp.Position, emp.ClinicID, emp.HireDate, emp.IsActive,
		emp.UpdatedAt, emp.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, gerr := r.GetByID(ctx, emp.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

func (r *SQLEmployeeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.NewNotFoundError("employee", id)
	}
	return nil
}
