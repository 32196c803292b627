package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// SQLFrontDeskScheduleRepository stores the front-desk grid in the
// front_desk_schedules table. A UNIQUE(position_id, clinic_id) constraint
// enforces the one-assignee-per-slot invariant.
type SQLFrontDeskScheduleRepository struct {
	db *sqlx.DB
}

func NewSQLFrontDeskScheduleRepository(db *sqlx.DB) *SQLFrontDeskScheduleRepository {
	return &SQLFrontDeskScheduleRepository{db: db}
}

func (r *SQLFrontDeskScheduleRepository) List(ctx context.Context, clinicID string) ([]*models.FrontDeskAssignment, error) {
	query := `SELECT id, position_id, clinic_id, employee_id, employee_name, seed_order
		FROM front_desk_schedules`
	args := []interface{}{}
	if clinicID != "" {
		query += ` WHERE clinic_id = ?`
		args = append(args, clinicID)
	}
	query += ` ORDER BY seed_order`

	var rows []*models.FrontDeskAssignment
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list front desk schedules: %w", err)
	}
	return rows, nil
}

func (r *SQLFrontDeskScheduleRepository) Get(ctx context.Context, key models.SlotKey) (*models.FrontDeskAssignment, error) {
	var row models.FrontDeskAssignment
	err := r.db.GetContext(ctx, &row,
		`SELECT id, position_id, clinic_id, employee_id, employee_name, seed_order
		 FROM front_desk_schedules WHERE position_id = ? AND clinic_id = ?`,
		key.SlotID, key.ClinicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("front desk slot", key.String())
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *SQLFrontDeskScheduleRepository) Set(ctx context.Context, key models.SlotKey, assignee *models.FrontDeskAssignee) error {
	var empID, empName *string
	if assignee != nil {
		empID, empName = &assignee.EmployeeID, &assignee.EmployeeName
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE front_desk_schedules SET employee_id = ?, employee_name = ?
		 WHERE position_id = ? AND clinic_id = ?`,
		empID, empName, key.SlotID, key.ClinicID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// The driver reports zero rows both for a missing key and for an
		// idempotent write; distinguish with a lookup.
		if _, gerr := r.Get(ctx, key); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Swap exchanges the assignees held at two slots, all-or-nothing: both rows
// are read and written inside one transaction, and any failure rolls both
// back. Identical keys are a no-op.
func (r *SQLFrontDeskScheduleRepository) Swap(ctx context.Context, a, b models.SlotKey) error {
	if a == b {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rowA, err := getFrontDeskSlot(ctx, tx, a)
	if err != nil {
		return err
	}
	rowB, err := getFrontDeskSlot(ctx, tx, b)
	if err != nil {
		return err
	}

	if err := setFrontDeskSlot(ctx, tx, a, rowB.EmployeeID, rowB.EmployeeName); err != nil {
		return err
	}
	if err := setFrontDeskSlot(ctx, tx, b, rowA.EmployeeID, rowA.EmployeeName); err != nil {
		return err
	}

	return tx.Commit()
}

// Seed inserts a row for every valid (position, clinic) pair that does not
// exist yet, preserving display order.
func (r *SQLFrontDeskScheduleRepository) Seed(ctx context.Context, clinicIDs []string) error {
	order := 0
	for _, clinicID := range clinicIDs {
		for _, position := range models.FrontDeskPositions {
			var count int
			err := r.db.GetContext(ctx, &count,
				`SELECT COUNT(*) FROM front_desk_schedules WHERE position_id = ? AND clinic_id = ?`,
				position, clinicID)
			if err != nil {
				return err
			}
			if count == 0 {
				_, err = r.db.ExecContext(ctx,
					`INSERT INTO front_desk_schedules (id, position_id, clinic_id, seed_order)
					 VALUES (?, ?, ?, ?)`,
					uuid.NewString(), position, clinicID, order)
				if err != nil {
					return err
				}
			}
			order++
		}
	}
	return nil
}

func getFrontDeskSlot(ctx context.Context, tx *sqlx.Tx, key models.SlotKey) (*models.FrontDeskAssignment, error) {
	var row models.FrontDeskAssignment
	err := tx.GetContext(ctx, &row,
		`SELECT id, position_id, clinic_id, employee_id, employee_name, seed_order
		 FROM front_desk_schedules WHERE position_id = ? AND clinic_id = ?`,
		key.SlotID, key.ClinicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("front desk slot", key.String())
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func setFrontDeskSlot(ctx context.Context, tx *sqlx.Tx, key models.SlotKey, empID, empName *string) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE front_desk_schedules SET employee_id = ?, employee_name = ?
		 WHERE position_id = ? AND clinic_id = ?`,
		empID, empName, key.SlotID, key.ClinicID)
	return err
}

// SQLDoctorScheduleRepository stores the on-call grid in doctor_schedules,
// with the same slot invariants as the front-desk table.
type SQLDoctorScheduleRepository struct {
	db *sqlx.DB
}

func NewSQLDoctorScheduleRepository(db *sqlx.DB) *SQLDoctorScheduleRepository {
	return &SQLDoctorScheduleRepository{db: db}
}

func (r *SQLDoctorScheduleRepository) List(ctx context.Context, clinicID string) ([]*models.DoctorAssignment, error) {
	query := `SELECT id, day_id, clinic_id, doctor_id, doctor_name, shift, seed_order
		FROM doctor_schedules`
	args := []interface{}{}
	if clinicID != "" {
		query += ` WHERE clinic_id = ?`
		args = append(args, clinicID)
	}
	query += ` ORDER BY seed_order`

	var rows []*models.DoctorAssignment
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list doctor schedules: %w", err)
	}
	return rows, nil
}

func (r *SQLDoctorScheduleRepository) Get(ctx context.Context, key models.SlotKey) (*models.DoctorAssignment, error) {
	var row models.DoctorAssignment
	err := r.db.GetContext(ctx, &row,
		`SELECT id, day_id, clinic_id, doctor_id, doctor_name, shift, seed_order
		 FROM doctor_schedules WHERE day_id = ? AND clinic_id = ?`,
		key.SlotID, key.ClinicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("doctor slot", key.String())
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *SQLDoctorScheduleRepository) Set(ctx context.Context, key models.SlotKey, assignee *models.DoctorAssignee) error {
	var docID, docName, shift *string
	if assignee != nil {
		docID, docName, shift = &assignee.DoctorID, &assignee.DoctorName, &assignee.Shift
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE doctor_schedules SET doctor_id = ?, doctor_name = ?, shift = ?
		 WHERE day_id = ? AND clinic_id = ?`,
		docID, docName, shift, key.SlotID, key.ClinicID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, gerr := r.Get(ctx, key); gerr != nil {
			return gerr
		}
	}
	return nil
}

func (r *SQLDoctorScheduleRepository) Swap(ctx context.Context, a, b models.SlotKey) error {
	if a == b {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rowA, err := getDoctorSlot(ctx, tx, a)
	if err != nil {
		return err
	}
	rowB, err := getDoctorSlot(ctx, tx, b)
	if err != nil {
		return err
	}

	if err := setDoctorSlot(ctx, tx, a, rowB); err != nil {
		return err
	}
	if err := setDoctorSlot(ctx, tx, b, rowA); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SQLDoctorScheduleRepository) Seed(ctx context.Context, clinicIDs []string) error {
	order := 0
	for _, clinicID := range clinicIDs {
		for _, day := range models.ScheduleDays {
			var count int
			err := r.db.GetContext(ctx, &count,
				`SELECT COUNT(*) FROM doctor_schedules WHERE day_id = ? AND clinic_id = ?`,
				day, clinicID)
			if err != nil {
				return err
			}
			if count == 0 {
				_, err = r.db.ExecContext(ctx,
					`INSERT INTO doctor_schedules (id, day_id, clinic_id, seed_order)
					 VALUES (?, ?, ?, ?)`,
					uuid.NewString(), day, clinicID, order)
				if err != nil {
					return err
				}
			}
			order++
		}
	}
	return nil
}

func getDoctorSlot(ctx context.Context, tx *sqlx.Tx, key models.SlotKey) (*models.DoctorAssignment, error) {
	var row models.DoctorAssignment
	err := tx.GetContext(ctx, &row,
		`SELECT id, day_id, clinic_id, doctor_id, doctor_name, shift, seed_order
		 FROM doctor_schedules WHERE day_id = ? AND clinic_id = ?`,
		key.SlotID, key.ClinicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("doctor slot", key.String())
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func setDoctorSlot(ctx context.Context, tx *sqlx.Tx, key models.SlotKey, src *models.DoctorAssignment) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE doctor_schedules SET doctor_id = ?, doctor_name = ?, shift = ?
		 WHERE day_id = ? AND clinic_id = ?`,
		src.DoctorID, src.DoctorName, src.Shift, key.SlotID, key.ClinicID)
	return err
}
