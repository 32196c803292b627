package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// MemoryDirectoryRepository is an in-memory implementation for testing.
type MemoryDirectoryRepository struct {
	mu       sync.RWMutex
	entities []*models.DirectoryEntity
	entries  map[string]*models.DirectoryEntry
}

func NewMemoryDirectoryRepository() *MemoryDirectoryRepository {
	return &MemoryDirectoryRepository{entries: make(map[string]*models.DirectoryEntry)}
}

// AddEntity registers an entity for tests; entities are seed data in
// production.
func (r *MemoryDirectoryRepository) AddEntity(entity *models.DirectoryEntity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entityCopy := *entity
	r.entities = append(r.entities, &entityCopy)
}

func (r *MemoryDirectoryRepository) ListEntities(ctx context.Context, companyID string) ([]*models.DirectoryEntity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.DirectoryEntity
	for _, entity := range r.entities {
		if entity.CompanyID == companyID {
			entityCopy := *entity
			out = append(out, &entityCopy)
		}
	}
	return out, nil
}

func (r *MemoryDirectoryRepository) ListEntries(ctx context.Context, entityID string) ([]*models.DirectoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.DirectoryEntry
	for _, entry := range r.entries {
		if entry.EntityID == entityID {
			entryCopy := *entry
			out = append(out, &entryCopy)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Order < out[j].Order
	})
	return out, nil
}

func (r *MemoryDirectoryRepository) CreateEntry(ctx context.Context, entry *models.DirectoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entryCopy := *entry
	r.entries[entry.ID] = &entryCopy
	return nil
}

func (r *MemoryDirectoryRepository) UpdateEntry(ctx context.Context, entry *models.DirectoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.ID]; !ok {
		return models.NewNotFoundError("directory entry", entry.ID)
	}
	entryCopy := *entry
	r.entries[entry.ID] = &entryCopy
	return nil
}

func (r *MemoryDirectoryRepository) ReorderEntries(ctx context.Context, entityID, group string, orderedIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, id := range orderedIDs {
		entry, ok := r.entries[id]
		if !ok || entry.EntityID != entityID || entry.Group != group {
			continue
		}
		entry.Order = i
	}
	return nil
}
