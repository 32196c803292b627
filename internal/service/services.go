package service

import (
	"github.com/dentaldesk-io/dentaldesk-ce/internal/auth"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/utils"
)

// Services bundles the portal's business logic for handler wiring.
type Services struct {
	Auth       *AuthService
	Employees  *EmployeeService
	Schedules  *ScheduleService
	PTO        *PTOService
	Tickets    *TicketService
	LabCases   *LabCaseService
	Directory  *DirectoryService
	Documents  *DocumentService
	Insurances *InsuranceService
	Dashboard  *DashboardService
	Reports    *ReportService
}

// New wires every service against the repository bundle.
func New(repos *repository.Repositories, jwtManager *auth.JWTManager) *Services {
	sanitizer := utils.NewHTMLSanitizer()
	return &Services{
		Auth:       NewAuthService(repos.Employees, jwtManager),
		Employees:  NewEmployeeService(repos.Employees),
		Schedules:  NewScheduleService(repos.FrontDesk, repos.Doctors, repos.Employees),
		PTO:        NewPTOService(repos.PTO),
		Tickets:    NewTicketService(repos.Tickets, sanitizer),
		LabCases:   NewLabCaseService(repos.LabCases),
		Directory:  NewDirectoryService(repos.Directory),
		Documents:  NewDocumentService(repos.Documents),
		Insurances: NewInsuranceService(repos.Insurances),
		Dashboard:  NewDashboardService(repos.Tickets, repos.PTO, repos.LabCases, repos.Employees, repos.Doctors),
		Reports:    NewReportService(repos.Employees, repos.PTO),
	}
}
