package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

const insuranceColumns = `id, company_id, name, phone, portal_url, notes,
	created_at, updated_at`

// SQLInsuranceRepository stores payer contact cards.
type SQLInsuranceRepository struct {
	db *sqlx.DB
}

func NewSQLInsuranceRepository(db *sqlx.DB) *SQLInsuranceRepository {
	return &SQLInsuranceRepository{db: db}
}

func (r *SQLInsuranceRepository) Create(ctx context.Context, ins *models.Insurance) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO insurances (`+insuranceColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ins.ID, ins.CompanyID, ins.Name, ins.Phone, ins.PortalURL, ins.Notes,
		ins.CreatedAt, ins.UpdatedAt)
	return err
}

func (r *SQLInsuranceRepository) GetByID(ctx context.Context, id string) (*models.Insurance, error) {
	var ins models.Insurance
	err := r.db.GetContext(ctx, &ins,
		`SELECT `+insuranceColumns+` FROM insurances WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("insurance", id)
	}
	if err != nil {
		return nil, err
	}
	return &ins, nil
}

func (r *SQLInsuranceRepository) List(ctx context.Context, companyID string) ([]*models.Insurance, error) {
	var out []*models.Insurance
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+insuranceColumns+` FROM insurances
		 WHERE company_id = ? ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLInsuranceRepository) Update(ctx context.Context, ins *models.Insurance) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE insurances
		 SET name = ?, phone = ?, portal_url = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		ins.Name, ins.Phone, ins.PortalURL, ins.Notes, ins.UpdatedAt, ins.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, gerr := r.GetByID(ctx, ins.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

func (r *SQLInsuranceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM insurances WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.NewNotFoundError("insurance", id)
	}
	return nil
}
