package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// SQLDirectoryRepository stores directory entities and their flat entries.
type SQLDirectoryRepository struct {
	db *sqlx.DB
}

func NewSQLDirectoryRepository(db *sqlx.DB) *SQLDirectoryRepository {
	return &SQLDirectoryRepository{db: db}
}

func (r *SQLDirectoryRepository) ListEntities(ctx context.Context, companyID string) ([]*models.DirectoryEntity, error) {
	var out []*models.DirectoryEntity
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, company_id, name, seed_order FROM directory_entities
		 WHERE company_id = ? ORDER BY seed_order`, companyID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLDirectoryRepository) ListEntries(ctx context.Context, entityID string) ([]*models.DirectoryEntry, error) {
	var out []*models.DirectoryEntry
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, entity_id, group_tag, location, phone, extension, department,
		        employee, sort_order
		 FROM directory_entries WHERE entity_id = ? ORDER BY group_tag, sort_order`,
		entityID)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLDirectoryRepository) CreateEntry(ctx context.Context, entry *models.DirectoryEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO directory_entries
		 (id, entity_id, group_tag, location, phone, extension, department,
		  employee, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.EntityID, entry.Group, entry.Location, entry.Phone,
		entry.Extension, entry.Department, entry.Employee, entry.Order)
	return err
}

func (r *SQLDirectoryRepository) UpdateEntry(ctx context.Context, entry *models.DirectoryEntry) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE directory_entries
		 SET group_tag = ?, location = ?, phone = ?, extension = ?,
		     department = ?, employee = ?, sort_order = ?
		 WHERE id = ?`,
		entry.Group, entry.Location, entry.Phone, entry.Extension,
		entry.Department, entry.Employee, entry.Order, entry.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var count int
		if err := r.db.GetContext(ctx, &count,
			`SELECT COUNT(*) FROM directory_entries WHERE id = ?`, entry.ID); err != nil {
			return err
		}
		if count == 0 {
			return models.NewNotFoundError("directory entry", entry.ID)
		}
	}
	return nil
}

// ReorderEntries rewrites the sort_order of a group's entries to match the
// given sequence. Unknown IDs are skipped rather than erroring; ordering is
// a presentation concern, not an integrity one.
func (r *SQLDirectoryRepository) ReorderEntries(ctx context.Context, entityID, group string, orderedIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, id := range orderedIDs {
		_, err := tx.ExecContext(ctx,
			`UPDATE directory_entries SET sort_order = ?
			 WHERE id = ? AND entity_id = ? AND group_tag = ?`,
			i, id, entityID, group)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
