package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

// LabCaseService tracks appliances through the in-house lab pipeline.
type LabCaseService struct {
	labCases repository.LabCaseRepository
}

func NewLabCaseService(labCases repository.LabCaseRepository) *LabCaseService {
	return &LabCaseService{labCases: labCases}
}

// newCaseID issues a human-readable case number.
func newCaseID() string {
	return fmt.Sprintf("LC-%s-%04d", time.Now().Format("20060102"), rand.Intn(10000))
}

// CreateLabCaseInput carries a new case. Empty status and priority default
// to in-planning and normal.
type CreateLabCaseInput struct {
	CompanyID        string
	PatientFirstName string
	PatientLastName  string
	Doctor           string
	Procedure        string
	Status           string
	Priority         string
	Notes            string
	DueDate          *time.Time
}

func (s *LabCaseService) Create(ctx context.Context, input CreateLabCaseInput) (*models.LabCase, error) {
	if input.PatientLastName == "" && input.PatientFirstName == "" {
		return nil, models.NewValidationError("patient", "name is required")
	}
	if input.Procedure == "" {
		return nil, models.NewValidationError("procedure", "is required")
	}
	if input.Status == "" {
		input.Status = models.LabCaseStatusInPlanning
	}
	if input.Priority == "" {
		input.Priority = models.LabCasePriorityNormal
	}
	if !models.ValidLabCaseStatus(input.Status) {
		return nil, models.NewValidationError("status", "unknown status")
	}
	if !models.ValidLabCasePriority(input.Priority) {
		return nil, models.NewValidationError("priority", "unknown priority")
	}

	now := time.Now()
	lc := &models.LabCase{
		CaseID:           newCaseID(),
		CompanyID:        input.CompanyID,
		PatientFirstName: input.PatientFirstName,
		PatientLastName:  input.PatientLastName,
		Doctor:           input.Doctor,
		Procedure:        input.Procedure,
		Status:           input.Status,
		Priority:         input.Priority,
		Notes:            input.Notes,
		DueDate:          input.DueDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.labCases.Create(ctx, lc); err != nil {
		return nil, err
	}
	return lc, nil
}

func (s *LabCaseService) Get(ctx context.Context, caseID string) (*models.LabCase, error) {
	return s.labCases.GetByID(ctx, caseID)
}

func (s *LabCaseService) List(ctx context.Context, companyID string) ([]*models.LabCase, error) {
	return s.labCases.List(ctx, companyID)
}

// UpdateLabCaseInput carries mutable case fields. Status changes are
// unconstrained; the lab records whatever the bench reality is.
type UpdateLabCaseInput struct {
	Status          *string
	Priority        *string
	ProductionStage *string
	Technician      *string
	Notes           *string
	DueDate         *time.Time
}

func (s *LabCaseService) Update(ctx context.Context, caseID string, input UpdateLabCaseInput) (*models.LabCase, error) {
	lc, err := s.labCases.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !models.ValidLabCaseStatus(*input.Status) {
			return nil, models.NewValidationError("status", "unknown status")
		}
		lc.Status = *input.Status
	}
	if input.Priority != nil {
		if !models.ValidLabCasePriority(*input.Priority) {
			return nil, models.NewValidationError("priority", "unknown priority")
		}
		lc.Priority = *input.Priority
	}
	if input.ProductionStage != nil {
		if !models.ValidProductionStage(*input.ProductionStage) {
			return nil, models.NewValidationError("production_stage", "unknown stage")
		}
		lc.ProductionStage = input.ProductionStage
	}
	if input.Technician != nil {
		lc.Technician = input.Technician
	}
	if input.Notes != nil {
		lc.Notes = *input.Notes
	}
	if input.DueDate != nil {
		lc.DueDate = input.DueDate
	}
	lc.UpdatedAt = time.Now()

	if err := s.labCases.Update(ctx, lc); err != nil {
		return nil, err
	}
	return lc, nil
}
