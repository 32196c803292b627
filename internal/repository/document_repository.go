package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// SQLDocumentRepository stores the entity/group/document containment across
// three tables and reassembles the nesting on read.
type SQLDocumentRepository struct {
	db *sqlx.DB
}

func NewSQLDocumentRepository(db *sqlx.DB) *SQLDocumentRepository {
	return &SQLDocumentRepository{db: db}
}

func (r *SQLDocumentRepository) ListEntities(ctx context.Context, companyID string) ([]*models.DocumentEntity, error) {
	var entities []*models.DocumentEntity
	err := r.db.SelectContext(ctx, &entities,
		`SELECT id, company_id, name FROM document_entities
		 WHERE company_id = ? ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	for _, entity := range entities {
		if err := r.loadGroups(ctx, entity); err != nil {
			return nil, err
		}
	}
	return entities, nil
}

func (r *SQLDocumentRepository) GetEntity(ctx context.Context, entityID string) (*models.DocumentEntity, error) {
	var entity models.DocumentEntity
	err := r.db.GetContext(ctx, &entity,
		`SELECT id, company_id, name FROM document_entities WHERE id = ?`, entityID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNotFoundError("document entity", entityID)
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadGroups(ctx, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *SQLDocumentRepository) AddDocument(ctx context.Context, groupID string, doc *models.DocumentRecord) error {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM document_groups WHERE id = ?`, groupID); err != nil {
		return err
	}
	if count == 0 {
		return models.NewNotFoundError("document group", groupID)
	}
	doc.GroupID = groupID
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents
		 (id, group_id, title, version, doc_date, description, url, file_name)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.GroupID, doc.Title, doc.Version, doc.Date, doc.Description,
		doc.URL, doc.FileName)
	return err
}

func (r *SQLDocumentRepository) UpdateDocument(ctx context.Context, doc *models.DocumentRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE documents
		 SET title = ?, version = ?, doc_date = ?, description = ?, url = ?, file_name = ?
		 WHERE id = ? AND group_id = ?`,
		doc.Title, doc.Version, doc.Date, doc.Description, doc.URL, doc.FileName,
		doc.ID, doc.GroupID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var count int
		if err := r.db.GetContext(ctx, &count,
			`SELECT COUNT(*) FROM documents WHERE id = ? AND group_id = ?`,
			doc.ID, doc.GroupID); err != nil {
			return err
		}
		if count == 0 {
			return models.NewNotFoundError("document", doc.ID)
		}
	}
	return nil
}

func (r *SQLDocumentRepository) DeleteDocument(ctx context.Context, groupID, docID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE id = ? AND group_id = ?`, docID, groupID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.NewNotFoundError("document", docID)
	}
	return nil
}

func (r *SQLDocumentRepository) loadGroups(ctx context.Context, entity *models.DocumentEntity) error {
	var groups []*models.DocumentGroup
	err := r.db.SelectContext(ctx, &groups,
		`SELECT id, entity_id, name FROM document_groups
		 WHERE entity_id = ? ORDER BY name`, entity.ID)
	if err != nil {
		return err
	}
	for _, group := range groups {
		var docs []*models.DocumentRecord
		err := r.db.SelectContext(ctx, &docs,
			`SELECT id, group_id, title, version, doc_date, description, url, file_name
			 FROM documents WHERE group_id = ? ORDER BY doc_date, id`, group.ID)
		if err != nil {
			return err
		}
		group.Documents = docs
	}
	entity.Groups = groups
	return nil
}
