package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

// InsuranceService manages payer contact cards.
type InsuranceService struct {
	insurances repository.InsuranceRepository
}

func NewInsuranceService(insurances repository.InsuranceRepository) *InsuranceService {
	return &InsuranceService{insurances: insurances}
}

// CreateInsuranceInput carries a new payer card.
type CreateInsuranceInput struct {
	CompanyID string
	Name      string
	Phone     string
	PortalURL string
	Notes     string
}

func (s *InsuranceService) Create(ctx context.Context, input CreateInsuranceInput) (*models.Insurance, error) {
	if input.Name == "" {
		return nil, models.NewValidationError("name", "is required")
	}

	now := time.Now()
	ins := &models.Insurance{
		ID:        uuid.NewString(),
		CompanyID: input.CompanyID,
		Name:      input.Name,
		Phone:     input.Phone,
		PortalURL: input.PortalURL,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.insurances.Create(ctx, ins); err != nil {
		return nil, err
	}
	return ins, nil
}

func (s *InsuranceService) Get(ctx context.Context, id string) (*models.Insurance, error) {
	return s.insurances.GetByID(ctx, id)
}

func (s *InsuranceService) List(ctx context.Context, companyID string) ([]*models.Insurance, error) {
	return s.insurances.List(ctx, companyID)
}

// UpdateInsuranceInput carries mutable payer fields.
type UpdateInsuranceInput struct {
	Name      *string
	Phone     *string
	PortalURL *string
	Notes     *string
}

func (s *InsuranceService) Update(ctx context.Context, id string, input UpdateInsuranceInput) (*models.Insurance, error) {
	ins, err := s.insurances.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, models.NewValidationError("name", "is required")
		}
		ins.Name = *input.Name
	}
	if input.Phone != nil {
		ins.Phone = *input.Phone
	}
	if input.PortalURL != nil {
		ins.PortalURL = *input.PortalURL
	}
	if input.Notes != nil {
		ins.Notes = *input.Notes
	}
	ins.UpdatedAt = time.Now()

	if err := s.insurances.Update(ctx, ins); err != nil {
		return nil, err
	}
	return ins, nil
}

func (s *InsuranceService) Delete(ctx context.Context, id string) error {
	return s.insurances.Delete(ctx, id)
}
