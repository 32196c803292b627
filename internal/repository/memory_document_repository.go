package repository

import (
	"context"
	"sync"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// MemoryDocumentRepository is an in-memory implementation for testing.
type MemoryDocumentRepository struct {
	mu       sync.RWMutex
	entities []*models.DocumentEntity
}

func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{}
}

func cloneDocumentEntity(e *models.DocumentEntity) *models.DocumentEntity {
	entityCopy := *e
	entityCopy.Groups = make([]*models.DocumentGroup, len(e.Groups))
	for i, group := range e.Groups {
		groupCopy := *group
		groupCopy.Documents = make([]*models.DocumentRecord, len(group.Documents))
		for j, doc := range group.Documents {
			docCopy := *doc
			groupCopy.Documents[j] = &docCopy
		}
		entityCopy.Groups[i] = &groupCopy
	}
	return &entityCopy
}

// AddEntity registers an entity tree for tests.
func (r *MemoryDocumentRepository) AddEntity(entity *models.DocumentEntity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities = append(r.entities, cloneDocumentEntity(entity))
}

func (r *MemoryDocumentRepository) ListEntities(ctx context.Context, companyID string) ([]*models.DocumentEntity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.DocumentEntity
	for _, entity := range r.entities {
		if entity.CompanyID == companyID {
			out = append(out, cloneDocumentEntity(entity))
		}
	}
	return out, nil
}

func (r *MemoryDocumentRepository) GetEntity(ctx context.Context, entityID string) (*models.DocumentEntity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entity := range r.entities {
		if entity.ID == entityID {
			return cloneDocumentEntity(entity), nil
		}
	}
	return nil, models.NewNotFoundError("document entity", entityID)
}

func (r *MemoryDocumentRepository) AddDocument(ctx context.Context, groupID string, doc *models.DocumentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	group := r.findGroup(groupID)
	if group == nil {
		return models.NewNotFoundError("document group", groupID)
	}
	docCopy := *doc
	docCopy.GroupID = groupID
	group.Documents = append(group.Documents, &docCopy)
	return nil
}

func (r *MemoryDocumentRepository) UpdateDocument(ctx context.Context, doc *models.DocumentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	group := r.findGroup(doc.GroupID)
	if group == nil {
		return models.NewNotFoundError("document group", doc.GroupID)
	}
	for i, existing := range group.Documents {
		if existing.ID == doc.ID {
			docCopy := *doc
			group.Documents[i] = &docCopy
			return nil
		}
	}
	return models.NewNotFoundError("document", doc.ID)
}

func (r *MemoryDocumentRepository) DeleteDocument(ctx context.Context, groupID, docID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	group := r.findGroup(groupID)
	if group == nil {
		return models.NewNotFoundError("document group", groupID)
	}
	for i, doc := range group.Documents {
		if doc.ID == docID {
			group.Documents = append(group.Documents[:i], group.Documents[i+1:]...)
			return nil
		}
	}
	return models.NewNotFoundError("document", docID)
}

func (r *MemoryDocumentRepository) findGroup(groupID string) *models.DocumentGroup {
	for _, entity := range r.entities {
		for _, group := range entity.Groups {
			if group.ID == groupID {
				return group
			}
		}
	}
	return nil
}
