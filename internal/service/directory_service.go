package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

// DirectoryService serves the phone directory: flat entries per entity,
// presented as three named buckets.
type DirectoryService struct {
	directory repository.DirectoryRepository
}

func NewDirectoryService(directory repository.DirectoryRepository) *DirectoryService {
	return &DirectoryService{directory: directory}
}

// Aggregate returns every entity with its entries routed into the corporate,
// front-desk and offices buckets, ordered within each bucket. An entry with
// an unknown group tag is dropped from the view, never an error.
func (s *DirectoryService) Aggregate(ctx context.Context, companyID string) ([]*models.DirectoryView, error) {
	entities, err := s.directory.ListEntities(ctx, companyID)
	if err != nil {
		return nil, err
	}

	views := make([]*models.DirectoryView, 0, len(entities))
	for _, entity := range entities {
		entries, err := s.directory.ListEntries(ctx, entity.ID)
		if err != nil {
			return nil, err
		}

		view := &models.DirectoryView{Entity: entity}
		for _, entry := range entries {
			switch entry.Group {
			case models.DirectoryGroupCorporate:
				view.Corporate = append(view.Corporate, entry)
			case models.DirectoryGroupFrontDesk:
				view.FrontDesk = append(view.FrontDesk, entry)
			case models.DirectoryGroupOffices:
				view.Offices = append(view.Offices, entry)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// CreateEntryInput carries a new phone-book row. The entry is appended at the
// end of its group.
type CreateEntryInput struct {
	EntityID   string
	Group      string
	Location   string
	Phone      string
	Extension  string
	Department string
	Employee   string
}

func (s *DirectoryService) CreateEntry(ctx context.Context, input CreateEntryInput) (*models.DirectoryEntry, error) {
	if input.EntityID == "" {
		return nil, models.NewValidationError("entity_id", "is required")
	}
	if !models.ValidDirectoryGroup(input.Group) {
		return nil, models.NewValidationError("group", "unknown group")
	}

	entries, err := s.directory.ListEntries(ctx, input.EntityID)
	if err != nil {
		return nil, err
	}
	order := 0
	for _, e := range entries {
		if e.Group == input.Group {
			order++
		}
	}

	entry := &models.DirectoryEntry{
		ID:         uuid.NewString(),
		EntityID:   input.EntityID,
		Group:      input.Group,
		Location:   input.Location,
		Phone:      input.Phone,
		Extension:  input.Extension,
		Department: input.Department,
		Employee:   input.Employee,
		Order:      order,
	}
	if err := s.directory.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEntryInput carries mutable entry fields. The group tag and order are
// fixed at creation; moving an entry is a reorder operation.
type UpdateEntryInput struct {
	Location   *string
	Phone      *string
	Extension  *string
	Department *string
	Employee   *string
}

func (s *DirectoryService) UpdateEntry(ctx context.Context, entityID, entryID string, input UpdateEntryInput) (*models.DirectoryEntry, error) {
	entries, err := s.directory.ListEntries(ctx, entityID)
	if err != nil {
		return nil, err
	}
	var entry *models.DirectoryEntry
	for _, e := range entries {
		if e.ID == entryID {
			entry = e
			break
		}
	}
	if entry == nil {
		return nil, models.NewNotFoundError("directory entry", entryID)
	}

	if input.Location != nil {
		entry.Location = *input.Location
	}
	if input.Phone != nil {
		entry.Phone = *input.Phone
	}
	if input.Extension != nil {
		entry.Extension = *input.Extension
	}
	if input.Department != nil {
		entry.Department = *input.Department
	}
	if input.Employee != nil {
		entry.Employee = *input.Employee
	}

	if err := s.directory.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ReorderEntries rewrites the display order of one group to match the given
// ID sequence. IDs outside the group are skipped.
func (s *DirectoryService) ReorderEntries(ctx context.Context, entityID, group string, orderedIDs []string) error {
	if !models.ValidDirectoryGroup(group) {
		return models.NewValidationError("group", "unknown group")
	}
	return s.directory.ReorderEntries(ctx, entityID, group, orderedIDs)
}
