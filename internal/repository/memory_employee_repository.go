package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// MemoryEmployeeRepository is an in-memory implementation for testing.
type MemoryEmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]*models.Employee
}

func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{employees: make(map[string]*models.Employee)}
}

func (r *MemoryEmployeeRepository) Create(ctx context.Context, emp *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	empCopy := *emp
	r.employees[emp.ID] = &empCopy
	return nil
}

func (r *MemoryEmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	emp, ok := r.employees[id]
	if !ok {
		return nil, models.NewNotFoundError("employee", id)
	}
	empCopy := *emp
	return &empCopy, nil
}

func (r *MemoryEmployeeRepository) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, emp := range r.employees {
		if emp.Email == email {
			empCopy := *emp
			return &empCopy, nil
		}
	}
	return nil, models.NewNotFoundError("employee", email)
}

func (r *MemoryEmployeeRepository) List(ctx context.Context, companyID string) ([]*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Employee
	for _, emp := range r.employees {
		if emp.CompanyID == companyID {
			empCopy := *emp
			out = append(out, &empCopy)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (r *MemoryEmployeeRepository) Update(ctx context.Context, emp *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[emp.ID]; !ok {
		return models.NewNotFoundError("employee", emp.ID)
	}
	empCopy := *emp
	r.employees[emp.ID] = &empCopy
	return nil
}

func (r *MemoryEmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return models.NewNotFoundError("employee", id)
	}
	delete(r.employees, id)
	return nil
}
