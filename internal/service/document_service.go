package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

// DocumentService serves the three-level document library.
type DocumentService struct {
	documents repository.DocumentRepository
}

func NewDocumentService(documents repository.DocumentRepository) *DocumentService {
	return &DocumentService{documents: documents}
}

// ListSummaries returns every entity with group and document counts attached.
func (s *DocumentService) ListSummaries(ctx context.Context, companyID string) ([]*models.DocumentEntitySummary, error) {
	entities, err := s.documents.ListEntities(ctx, companyID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.DocumentEntitySummary, 0, len(entities))
	for _, entity := range entities {
		summary := &models.DocumentEntitySummary{Entity: entity, GroupCount: len(entity.Groups)}
		for _, group := range entity.Groups {
			summary.DocumentCount += len(group.Documents)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *DocumentService) GetEntity(ctx context.Context, entityID string) (*models.DocumentEntity, error) {
	return s.documents.GetEntity(ctx, entityID)
}

// AddDocumentInput carries a new library document.
type AddDocumentInput struct {
	Title       string
	Version     string
	Date        *time.Time
	Description string
	URL         string
	FileName    *string
}

func (s *DocumentService) AddDocument(ctx context.Context, groupID string, input AddDocumentInput) (*models.DocumentRecord, error) {
	if input.Title == "" {
		return nil, models.NewValidationError("title", "is required")
	}

	doc := &models.DocumentRecord{
		ID:          uuid.NewString(),
		GroupID:     groupID,
		Title:       input.Title,
		Version:     input.Version,
		Date:        input.Date,
		Description: input.Description,
		URL:         input.URL,
		FileName:    input.FileName,
	}
	if err := s.documents.AddDocument(ctx, groupID, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateDocumentInput carries mutable document fields.
type UpdateDocumentInput struct {
	Title       *string
	Version     *string
	Date        *time.Time
	Description *string
	URL         *string
	FileName    *string
}

func (s *DocumentService) UpdateDocument(ctx context.Context, entityID, groupID, docID string, input UpdateDocumentInput) (*models.DocumentRecord, error) {
	entity, err := s.documents.GetEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}

	var doc *models.DocumentRecord
	for _, group := range entity.Groups {
		if group.ID != groupID {
			continue
		}
		for _, d := range group.Documents {
			if d.ID == docID {
				doc = d
				break
			}
		}
	}
	if doc == nil {
		return nil, models.NewNotFoundError("document", docID)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, models.NewValidationError("title", "is required")
		}
		doc.Title = *input.Title
	}
	if input.Version != nil {
		doc.Version = *input.Version
	}
	if input.Date != nil {
		doc.Date = input.Date
	}
	if input.Description != nil {
		doc.Description = *input.Description
	}
	if input.URL != nil {
		doc.URL = *input.URL
	}
	if input.FileName != nil {
		doc.FileName = input.FileName
	}

	if err := s.documents.UpdateDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, groupID, docID string) error {
	return s.documents.DeleteDocument(ctx, groupID, docID)
}
