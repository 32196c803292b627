package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// MemoryLabCaseRepository is an in-memory implementation for testing.
type MemoryLabCaseRepository struct {
	mu    sync.RWMutex
	cases map[string]*models.LabCase
}

func NewMemoryLabCaseRepository() *MemoryLabCaseRepository {
	return &MemoryLabCaseRepository{cases: make(map[string]*models.LabCase)}
}

func (r *MemoryLabCaseRepository) Create(ctx context.Context, lc *models.LabCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lcCopy := *lc
	r.cases[lc.CaseID] = &lcCopy
	return nil
}

func (r *MemoryLabCaseRepository) GetByID(ctx context.Context, caseID string) (*models.LabCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lc, ok := r.cases[caseID]
	if !ok {
		return nil, models.NewNotFoundError("lab case", caseID)
	}
	lcCopy := *lc
	return &lcCopy, nil
}

func (r *MemoryLabCaseRepository) List(ctx context.Context, companyID string) ([]*models.LabCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.LabCase
	for _, lc := range r.cases {
		if lc.CompanyID == companyID {
			lcCopy := *lc
			out = append(out, &lcCopy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryLabCaseRepository) Update(ctx context.Context, lc *models.LabCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cases[lc.CaseID]; !ok {
		return models.NewNotFoundError("lab case", lc.CaseID)
	}
	lcCopy := *lc
	r.cases[lc.CaseID] = &lcCopy
	return nil
}
