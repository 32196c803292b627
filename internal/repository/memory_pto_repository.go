package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// MemoryPTORepository is an in-memory implementation for testing.
type MemoryPTORepository struct {
	mu       sync.RWMutex
	requests map[string]*models.PTORequest
	policies map[string]*models.PTOPolicy
}

func NewMemoryPTORepository() *MemoryPTORepository {
	return &MemoryPTORepository{
		requests: make(map[string]*models.PTORequest),
		policies: make(map[string]*models.PTOPolicy),
	}
}

func (r *MemoryPTORepository) Create(ctx context.Context, req *models.PTORequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reqCopy := *req
	r.requests[req.ID] = &reqCopy
	return nil
}

func (r *MemoryPTORepository) GetByID(ctx context.Context, id string) (*models.PTORequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, models.NewNotFoundError("pto request", id)
	}
	reqCopy := *req
	return &reqCopy, nil
}

func (r *MemoryPTORepository) ListByEmployee(ctx context.Context, employeeID string) ([]*models.PTORequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.PTORequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			reqCopy := *req
			out = append(out, &reqCopy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryPTORepository) ListByCompany(ctx context.Context, companyID string) ([]*models.PTORequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.PTORequest
	for _, req := range r.requests {
		if req.CompanyID == companyID {
			reqCopy := *req
			out = append(out, &reqCopy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryPTORepository) Update(ctx context.Context, req *models.PTORequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[req.ID]; !ok {
		return models.NewNotFoundError("pto request", req.ID)
	}
	reqCopy := *req
	r.requests[req.ID] = &reqCopy
	return nil
}

func (r *MemoryPTORepository) GetPolicy(ctx context.Context, companyID string) (*models.PTOPolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	policy, ok := r.policies[companyID]
	if !ok {
		return nil, models.NewNotFoundError("pto policy", companyID)
	}
	policyCopy := *policy
	return &policyCopy, nil
}

// SetPolicy installs a company allotment override for tests.
func (r *MemoryPTORepository) SetPolicy(policy *models.PTOPolicy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	policyCopy := *policy
	r.policies[policy.CompanyID] = &policyCopy
}
