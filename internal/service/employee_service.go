package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

// EmployeeService handles staff records and credentials.
type EmployeeService struct {
	employees repository.EmployeeRepository
}

func NewEmployeeService(employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

// CreateEmployeeInput carries the fields accepted at hire time.
type CreateEmployeeInput struct {
	CompanyID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	Role      string
	Position  string
	ClinicID  string
	HireDate  *time.Time
}

func (s *EmployeeService) Create(ctx context.Context, input CreateEmployeeInput) (*models.Employee, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" {
		return nil, models.NewValidationError("email", "is required")
	}
	if input.FirstName == "" && input.LastName == "" {
		return nil, models.NewValidationError("name", "is required")
	}
	if input.Password == "" {
		return nil, models.NewValidationError("password", "is required")
	}
	if existing, err := s.employees.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, models.NewValidationError("email", "is already registered")
	}

	now := time.Now()
	emp := &models.Employee{
		ID:        uuid.NewString(),
		CompanyID: input.CompanyID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      models.NormalizeRole(input.Role),
		Position:  input.Position,
		ClinicID:  input.ClinicID,
		HireDate:  input.HireDate,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := emp.SetPassword(input.Password); err != nil {
		return nil, err
	}
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, companyID string) ([]*models.Employee, error) {
	return s.employees.List(ctx, companyID)
}

// UpdateEmployeeInput carries the mutable profile fields. Nil pointers leave
// the stored value untouched.
type UpdateEmployeeInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Role      *string
	Position  *string
	ClinicID  *string
	IsActive  *bool
}

func (s *EmployeeService) Update(ctx context.Context, id string, input UpdateEmployeeInput) (*models.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		emp.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		emp.LastName = *input.LastName
	}
	if input.Phone != nil {
		emp.Phone = *input.Phone
	}
	if input.Role != nil {
		emp.Role = models.NormalizeRole(*input.Role)
	}
	if input.Position != nil {
		emp.Position = *input.Position
	}
	if input.ClinicID != nil {
		emp.ClinicID = *input.ClinicID
	}
	if input.IsActive != nil {
		emp.IsActive = *input.IsActive
	}
	emp.UpdatedAt = time.Now()

	if err := s.employees.Update(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.employees.Delete(ctx, id)
}

// ResetPassword replaces an employee's credential.
func (s *EmployeeService) ResetPassword(ctx context.Context, id, newPassword string) error {
	if newPassword == "" {
		return models.NewValidationError("password", "is required")
	}
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := emp.SetPassword(newPassword); err != nil {
		return err
	}
	emp.UpdatedAt = time.Now()
	return s.employees.Update(ctx, emp)
}
