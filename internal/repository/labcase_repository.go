package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

const labCaseColumns = `case_id, company_id, patient_first_name, patient_last_name,
	doctor, procedure_name, status, priority, production_stage, technician, notes,
	due_date, created_at, updated_at`

// SQLLabCaseRepository stores laboratory cases keyed by their globally
// unique case ID.
type SQLLabCaseRepository struct {
	db *sqlx.DB
}

func NewSQLLabCaseRepository(db *sqlx.DB) *SQLLabCaseRepository {
	return &SQLLabCaseRepository{db: db}
}

func (r *SQLLabCaseRepository) Create(ctx context.Context, lc *models.LabCase) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lab_cases (`+labCaseColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lc.CaseID, lc.CompanyID, lc.PatientFirstName, lc.PatientLastName,
		lc.Doctor, lc.Procedure, lc.Status, lc.Priority, lc.ProductionStage,
		lc.Technician, lc.Notes, lc.DueDate, lc.CreatedAt, lc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create lab case: %w", err)
	}
	return nil
}

func (r *SQLLabCaseRepository) GetByID(ctx context.Context, caseID string) (*models.LabCase, error) {
	var lc models.LabCase
	err := r.db.GetContext(ctx, &lc,
		`SELECT `+labCaseColumns+` FROM lab_cases WHERE case_id = ?`, caseID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("lab case", caseID)
	}
	if err != nil {
		return nil, err
	}
	return &lc, nil
}

func (r *SQLLabCaseRepository) List(ctx context.Context, companyID string) ([]*models.LabCase, error) {
	var out []*models.LabCase
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+labCaseColumns+` FROM lab_cases
		 WHERE company_id = ? ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLLabCaseRepository) Update(ctx context.Context, lc *models.LabCase) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE lab_cases
		 SET patient_first_name = ?, patient_last_name = ?, doctor = ?,
		     procedure_name = ?, status = ?, priority = ?, production_stage = ?,
		     technician = ?, notes = ?, due_date = ?, updated_at = ?
		 WHERE case_id = ?`,
		lc.PatientFirstName, lc.PatientLastName, lc.Doctor, lc.Procedure,
		lc.Status, lc.Priority, lc.ProductionStage, lc.Technician, lc.Notes,
		lc.DueDate, lc.UpdatedAt, lc.CaseID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, gerr := r.GetByID(ctx, lc.CaseID); gerr != nil {
			return gerr
		}
	}
	return nil
}
