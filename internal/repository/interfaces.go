package repository

import (
	"context"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// EmployeeRepository handles staff records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *models.Employee) error
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	List(ctx context.Context, companyID string) ([]*models.Employee, error)
	Update(ctx context.Context, emp *models.Employee) error
	Delete(ctx context.Context, id string) error
}

// PTORepository handles leave requests and company policies.
type PTORepository interface {
	Create(ctx context.Context, req *models.PTORequest) error
	GetByID(ctx context.Context, id string) (*models.PTORequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*models.PTORequest, error)
	ListByCompany(ctx context.Context, companyID string) ([]*models.PTORequest, error)
	Update(ctx context.Context, req *models.PTORequest) error
	GetPolicy(ctx context.Context, companyID string) (*models.PTOPolicy, error)
}

// FrontDeskScheduleRepository holds the position-by-clinic grid. Rows are
// pre-seeded; Set and Swap never create or remove keys.
type FrontDeskScheduleRepository interface {
	List(ctx context.Context, clinicID string) ([]*models.FrontDeskAssignment, error)
	Get(ctx context.Context, key models.SlotKey) (*models.FrontDeskAssignment, error)
	Set(ctx context.Context, key models.SlotKey, assignee *models.FrontDeskAssignee) error
	Swap(ctx context.Context, a, b models.SlotKey) error
	Seed(ctx context.Context, clinicIDs []string) error
}

// DoctorScheduleRepository holds the day-by-clinic on-call grid.
type DoctorScheduleRepository interface {
	List(ctx context.Context, clinicID string) ([]*models.DoctorAssignment, error)
	Get(ctx context.Context, key models.SlotKey) (*models.DoctorAssignment, error)
	Set(ctx context.Context, key models.SlotKey, assignee *models.DoctorAssignee) error
	Swap(ctx context.Context, a, b models.SlotKey) error
	Seed(ctx context.Context, clinicIDs []string) error
}

// TicketRepository handles tickets and their append-only update logs.
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	GetByID(ctx context.Context, id string) (*models.Ticket, error)
	List(ctx context.Context, companyID string) ([]*models.Ticket, error)
	Update(ctx context.Context, ticket *models.Ticket) error
	Delete(ctx context.Context, id string) error
	AppendUpdate(ctx context.Context, update *models.TicketUpdate) error
}

// LabCaseRepository handles laboratory cases.
type LabCaseRepository interface {
	Create(ctx context.Context, lc *models.LabCase) error
	GetByID(ctx context.Context, caseID string) (*models.LabCase, error)
	List(ctx context.Context, companyID string) ([]*models.LabCase, error)
	Update(ctx context.Context, lc *models.LabCase) error
}

// DirectoryRepository handles directory entities and their flat entries.
type DirectoryRepository interface {
	ListEntities(ctx context.Context, companyID string) ([]*models.DirectoryEntity, error)
	ListEntries(ctx context.Context, entityID string) ([]*models.DirectoryEntry, error)
	CreateEntry(ctx context.Context, entry *models.DirectoryEntry) error
	UpdateEntry(ctx context.Context, entry *models.DirectoryEntry) error
	ReorderEntries(ctx context.Context, entityID, group string, orderedIDs []string) error
}

// DocumentRepository handles the entity/group/document containment.
type DocumentRepository interface {
	ListEntities(ctx context.Context, companyID string) ([]*models.DocumentEntity, error)
	GetEntity(ctx context.Context, entityID string) (*models.DocumentEntity, error)
	AddDocument(ctx context.Context, groupID string, doc *models.DocumentRecord) error
	UpdateDocument(ctx context.Context, doc *models.DocumentRecord) error
	DeleteDocument(ctx context.Context, groupID, docID string) error
}

// InsuranceRepository handles payer contact cards.
type InsuranceRepository interface {
	Create(ctx context.Context, ins *models.Insurance) error
	GetByID(ctx context.Context, id string) (*models.Insurance, error)
	List(ctx context.Context, companyID string) ([]*models.Insurance, error)
	Update(ctx context.Context, ins *models.Insurance) error
	Delete(ctx context.Context, id string) error
}

// Repositories bundles everything the service layer needs.
type Repositories struct {
	Employees  EmployeeRepository
	PTO        PTORepository
	FrontDesk  FrontDeskScheduleRepository
	Doctors    DoctorScheduleRepository
	Tickets    TicketRepository
	LabCases   LabCaseRepository
	Directory  DirectoryRepository
	Documents  DocumentRepository
	Insurances InsuranceRepository
}
