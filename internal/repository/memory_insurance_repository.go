package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// MemoryInsuranceRepository is an in-memory implementation for testing.
type MemoryInsuranceRepository struct {
	mu    sync.RWMutex
	cards map[string]*models.Insurance
}

func NewMemoryInsuranceRepository() *MemoryInsuranceRepository {
	return &MemoryInsuranceRepository{cards: make(map[string]*models.Insurance)}
}

func (r *MemoryInsuranceRepository) Create(ctx context.Context, ins *models.Insurance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	insCopy := *ins
	r.cards[ins.ID] = &insCopy
	return nil
}

func (r *MemoryInsuranceRepository) GetByID(ctx context.Context, id string) (*models.Insurance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ins, ok := r.cards[id]
	if !ok {
		return nil, models.NewNotFoundError("insurance", id)
	}
	insCopy := *ins
	return &insCopy, nil
}

func (r *MemoryInsuranceRepository) List(ctx context.Context, companyID string) ([]*models.Insurance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Insurance
	for _, ins := range r.cards {
		if ins.CompanyID == companyID {
			insCopy := *ins
			out = append(out, &insCopy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryInsuranceRepository) Update(ctx context.Context, ins *models.Insurance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cards[ins.ID]; !ok {
		return models.NewNotFoundError("insurance", ins.ID)
	}
	insCopy := *ins
	r.cards[ins.ID] = &insCopy
	return nil
}

func (r *MemoryInsuranceRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cards[id]; !ok {
		return models.NewNotFoundError("insurance", id)
	}
	delete(r.cards, id)
	return nil
}
