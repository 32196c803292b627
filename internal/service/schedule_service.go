package service

import (
	"context"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

// ScheduleService manages the front-desk and on-call assignment grids. Both
// grids have a fixed pre-seeded key set; all mutations are assignee moves.
type ScheduleService struct {
	frontDesk repository.FrontDeskScheduleRepository
	doctors   repository.DoctorScheduleRepository
	employees repository.EmployeeRepository
}

func NewScheduleService(frontDesk repository.FrontDeskScheduleRepository, doctors repository.DoctorScheduleRepository, employees repository.EmployeeRepository) *ScheduleService {
	return &ScheduleService{frontDesk: frontDesk, doctors: doctors, employees: employees}
}

func validPosition(id string) bool {
	for _, p := range models.FrontDeskPositions {
		if p == id {
			return true
		}
	}
	return false
}

func validDay(id string) bool {
	for _, d := range models.ScheduleDays {
		if d == id {
			return true
		}
	}
	return false
}

func (s *ScheduleService) ListFrontDesk(ctx context.Context, clinicID string) ([]*models.FrontDeskAssignment, error) {
	return s.frontDesk.List(ctx, clinicID)
}

// SetFrontDesk assigns an employee to a slot, or clears it when employeeID is
// empty. The display name is resolved from the staff record, never taken from
// the caller.
func (s *ScheduleService) SetFrontDesk(ctx context.Context, key models.SlotKey, employeeID string) (*models.FrontDeskAssignment, error) {
	if !validPosition(key.SlotID) {
		return nil, models.NewValidationError("position_id", "unknown position")
	}

	var assignee *models.FrontDeskAssignee
	if employeeID != "" {
		emp, err := s.employees.GetByID(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		assignee = &models.FrontDeskAssignee{EmployeeID: emp.ID, EmployeeName: emp.FullName()}
	}

	if err := s.frontDesk.Set(ctx, key, assignee); err != nil {
		return nil, err
	}
	return s.frontDesk.Get(ctx, key)
}

// SwapFrontDesk exchanges the assignees at two slots atomically. Either slot
// may be empty; swapping a slot with itself is a no-op.
func (s *ScheduleService) SwapFrontDesk(ctx context.Context, a, b models.SlotKey) ([]*models.FrontDeskAssignment, error) {
	if !validPosition(a.SlotID) {
		return nil, models.NewValidationError("position_id", "unknown position")
	}
	if !validPosition(b.SlotID) {
		return nil, models.NewValidationError("position_id", "unknown position")
	}

	if err := s.frontDesk.Swap(ctx, a, b); err != nil {
		return nil, err
	}

	rowA, err := s.frontDesk.Get(ctx, a)
	if err != nil {
		return nil, err
	}
	rowB, err := s.frontDesk.Get(ctx, b)
	if err != nil {
		return nil, err
	}
	return []*models.FrontDeskAssignment{rowA, rowB}, nil
}

func (s *ScheduleService) ListDoctors(ctx context.Context, clinicID string) ([]*models.DoctorAssignment, error) {
	return s.doctors.List(ctx, clinicID)
}

// SetDoctor assigns a doctor and shift to an on-call slot, or clears it when
// doctorID is empty.
func (s *ScheduleService) SetDoctor(ctx context.Context, key models.SlotKey, doctorID, shift string) (*models.DoctorAssignment, error) {
	if !validDay(key.SlotID) {
		return nil, models.NewValidationError("day_id", "unknown day")
	}

	var assignee *models.DoctorAssignee
	if doctorID != "" {
		if shift != models.ShiftAM && shift != models.ShiftPM {
			return nil, models.NewValidationError("shift", "must be AM or PM")
		}
		emp, err := s.employees.GetByID(ctx, doctorID)
		if err != nil {
			return nil, err
		}
		assignee = &models.DoctorAssignee{DoctorID: emp.ID, DoctorName: emp.FullName(), Shift: shift}
	}

	if err := s.doctors.Set(ctx, key, assignee); err != nil {
		return nil, err
	}
	return s.doctors.Get(ctx, key)
}

// SwapDoctors exchanges two on-call slots atomically; the shift travels with
// the doctor.
func (s *ScheduleService) SwapDoctors(ctx context.Context, a, b models.SlotKey) ([]*models.DoctorAssignment, error) {
	if !validDay(a.SlotID) {
		return nil, models.NewValidationError("day_id", "unknown day")
	}
	if !validDay(b.SlotID) {
		return nil, models.NewValidationError("day_id", "unknown day")
	}

	if err := s.doctors.Swap(ctx, a, b); err != nil {
		return nil, err
	}

	rowA, err := s.doctors.Get(ctx, a)
	if err != nil {
		return nil, err
	}
	rowB, err := s.doctors.Get(ctx, b)
	if err != nil {
		return nil, err
	}
	return []*models.DoctorAssignment{rowA, rowB}, nil
}

// SeedGrids creates any missing slots for the given clinics. Existing
// assignments are never touched.
func (s *ScheduleService) SeedGrids(ctx context.Context, clinicIDs []string) error {
	if err := s.frontDesk.Seed(ctx, clinicIDs); err != nil {
		return err
	}
	return s.doctors.Seed(ctx, clinicIDs)
}
