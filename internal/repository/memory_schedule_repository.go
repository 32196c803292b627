package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// MemoryFrontDeskScheduleRepository is an in-memory implementation for
// testing. A single mutex covers the whole grid, which makes Swap trivially
// atomic.
type MemoryFrontDeskScheduleRepository struct {
	mu    sync.RWMutex
	slots map[models.SlotKey]*models.FrontDeskAssignment
	order []models.SlotKey
}

func NewMemoryFrontDeskScheduleRepository() *MemoryFrontDeskScheduleRepository {
	return &MemoryFrontDeskScheduleRepository{
		slots: make(map[models.SlotKey]*models.FrontDeskAssignment),
	}
}

func (r *MemoryFrontDeskScheduleRepository) Seed(ctx context.Context, clinicIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order := 0
	for _, clinicID := range clinicIDs {
		for _, position := range models.FrontDeskPositions {
			key := models.SlotKey{SlotID: position, ClinicID: clinicID}
			if _, exists := r.slots[key]; !exists {
				r.slots[key] = &models.FrontDeskAssignment{
					ID:         uuid.NewString(),
					PositionID: position,
					ClinicID:   clinicID,
					SeedOrder:  order,
				}
				r.order = append(r.order, key)
			}
			order++
		}
	}
	return nil
}

func (r *MemoryFrontDeskScheduleRepository) List(ctx context.Context, clinicID string) ([]*models.FrontDeskAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.FrontDeskAssignment
	for _, key := range r.order {
		row := r.slots[key]
		if clinicID != "" && row.ClinicID != clinicID {
			continue
		}
		rowCopy := *row
		out = append(out, &rowCopy)
	}
	return out, nil
}

func (r *MemoryFrontDeskScheduleRepository) Get(ctx context.Context, key models.SlotKey) (*models.FrontDeskAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.slots[key]
	if !ok {
		return nil, models.NewNotFoundError("front desk slot", key.String())
	}
	rowCopy := *row
	return &rowCopy, nil
}

func (r *MemoryFrontDeskScheduleRepository) Set(ctx context.Context, key models.SlotKey, assignee *models.FrontDeskAssignee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.slots[key]
	if !ok {
		return models.NewNotFoundError("front desk slot", key.String())
	}
	if assignee == nil {
		row.EmployeeID, row.EmployeeName = nil, nil
		return nil
	}
	id, name := assignee.EmployeeID, assignee.EmployeeName
	row.EmployeeID, row.EmployeeName = &id, &name
	return nil
}

func (r *MemoryFrontDeskScheduleRepository) Swap(ctx context.Context, a, b models.SlotKey) error {
	if a == b {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rowA, ok := r.slots[a]
	if !ok {
		return models.NewNotFoundError("front desk slot", a.String())
	}
	rowB, ok := r.slots[b]
	if !ok {
		return models.NewNotFoundError("front desk slot", b.String())
	}
	rowA.EmployeeID, rowB.EmployeeID = rowB.EmployeeID, rowA.EmployeeID
	rowA.EmployeeName, rowB.EmployeeName = rowB.EmployeeName, rowA.EmployeeName
	return nil
}

// MemoryDoctorScheduleRepository is the in-memory on-call grid.
type MemoryDoctorScheduleRepository struct {
	mu    sync.RWMutex
	slots map[models.SlotKey]*models.DoctorAssignment
	order []models.SlotKey
}

func NewMemoryDoctorScheduleRepository() *MemoryDoctorScheduleRepository {
	return &MemoryDoctorScheduleRepository{
		slots: make(map[models.SlotKey]*models.DoctorAssignment),
	}
}

func (r *MemoryDoctorScheduleRepository) Seed(ctx context.Context, clinicIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order := 0
	for _, clinicID := range clinicIDs {
		for _, day := range models.ScheduleDays {
			key := models.SlotKey{SlotID: day, ClinicID: clinicID}
			if _, exists := r.slots[key]; !exists {
				r.slots[key] = &models.DoctorAssignment{
					ID:        uuid.NewString(),
					DayID:     day,
					ClinicID:  clinicID,
					SeedOrder: order,
				}
				r.order = append(r.order, key)
			}
			order++
		}
	}
	return nil
}

func (r *MemoryDoctorScheduleRepository) List(ctx context.Context, clinicID string) ([]*models.DoctorAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.DoctorAssignment
	for _, key := range r.order {
		row := r.slots[key]
		if clinicID != "" && row.ClinicID != clinicID {
			continue
		}
		rowCopy := *row
		out = append(out, &rowCopy)
	}
	return out, nil
}

func (r *MemoryDoctorScheduleRepository) Get(ctx context.Context, key models.SlotKey) (*models.DoctorAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.slots[key]
	if !ok {
		return nil, models.NewNotFoundError("doctor slot", key.String())
	}
	rowCopy := *row
	return &rowCopy, nil
}

func (r *MemoryDoctorScheduleRepository) Set(ctx context.Context, key models.SlotKey, assignee *models.DoctorAssignee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.slots[key]
	if !ok {
		return models.NewNotFoundError("doctor slot", key.String())
	}
	if assignee == nil {
		row.DoctorID, row.DoctorName, row.Shift = nil, nil, nil
		return nil
	}
	id, name, shift := assignee.DoctorID, assignee.DoctorName, assignee.Shift
	row.DoctorID, row.DoctorName, row.Shift = &id, &name, &shift
	return nil
}

func (r *MemoryDoctorScheduleRepository) Swap(ctx context.Context, a, b models.SlotKey) error {
	if a == b {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rowA, ok := r.slots[a]
	if !ok {
		return models.NewNotFoundError("doctor slot", a.String())
	}
	rowB, ok := r.slots[b]
	if !ok {
		return models.NewNotFoundError("doctor slot", b.String())
	}
	rowA.DoctorID, rowB.DoctorID = rowB.DoctorID, rowA.DoctorID
	rowA.DoctorName, rowB.DoctorName = rowB.DoctorName, rowA.DoctorName
	rowA.Shift, rowB.Shift = rowB.Shift, rowA.Shift
	return nil
}
