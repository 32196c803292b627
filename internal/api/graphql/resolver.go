//go:build graphql

package graphql

import (
	"context"
	"fmt"
	"time"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

type sessionKey struct{}

// WithSession attaches the authenticated session to the request context
// before the GraphQL handler runs.
func WithSession(ctx context.Context, session *models.UserSession) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

func sessionFrom(ctx context.Context) (*models.UserSession, error) {
	session, ok := ctx.Value(sessionKey{}).(*models.UserSession)
	if !ok || session == nil {
		return nil, fmt.Errorf("unauthorized")
	}
	return session, nil
}

// Resolver is the root resolver.
type Resolver struct {
	services *service.Services
}

func NewResolver(services *service.Services) *Resolver {
	return &Resolver{services: services}
}

func (r *Resolver) Query() QueryResolver       { return &queryResolver{r} }
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

type queryResolver struct{ *Resolver }

func (r *queryResolver) Me(ctx context.Context) (*Employee, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	emp, err := r.services.Employees.Get(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return mapEmployee(emp), nil
}

func (r *queryResolver) Employees(ctx context.Context) ([]*Employee, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := r.services.Employees.List(ctx, session.CompanyID)
	if err != nil {
		return nil, err
	}
	return mapEmployees(list), nil
}

func (r *queryResolver) Employee(ctx context.Context, id string) (*Employee, error) {
	emp, err := r.services.Employees.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapEmployee(emp), nil
}

func (r *queryResolver) FrontDeskSchedules(ctx context.Context, clinicID string) ([]*FrontDeskSlot, error) {
	rows, err := r.services.Schedules.ListFrontDesk(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	out := make([]*FrontDeskSlot, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapFrontDeskSlot(row))
	}
	return out, nil
}

func (r *queryResolver) DoctorSchedules(ctx context.Context, clinicID string) ([]*DoctorSlot, error) {
	rows, err := r.services.Schedules.ListDoctors(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	out := make([]*DoctorSlot, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapDoctorSlot(row))
	}
	return out, nil
}

func (r *queryResolver) PTORequests(ctx context.Context, employeeID *string) ([]*PTORequest, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	var list []*models.PTORequest
	if employeeID != nil && *employeeID != "" {
		list, err = r.services.PTO.ListByEmployee(ctx, *employeeID)
	} else {
		list, err = r.services.PTO.ListByCompany(ctx, session.CompanyID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*PTORequest, 0, len(list))
	for _, req := range list {
		out = append(out, mapPTO(req))
	}
	return out, nil
}

func (r *queryResolver) PTOBalance(ctx context.Context, employeeID *string) (*PTOBalance, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	id := session.UserID
	if employeeID != nil && *employeeID != "" {
		id = *employeeID
	}
	balance, err := r.services.PTO.Balance(ctx, id, session.CompanyID)
	if err != nil {
		return nil, err
	}
	return &PTOBalance{
		Total:     balance.Total,
		Used:      balance.Used,
		Pending:   balance.Pending,
		Available: balance.Available,
	}, nil
}

func (r *queryResolver) Tickets(ctx context.Context) ([]*Ticket, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := r.services.Tickets.List(ctx, session.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]*Ticket, 0, len(list))
	for _, t := range list {
		out = append(out, mapTicket(t))
	}
	return out, nil
}

func (r *queryResolver) Ticket(ctx context.Context, id string) (*Ticket, error) {
	t, err := r.services.Tickets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapTicket(t), nil
}

func (r *queryResolver) LabCases(ctx context.Context) ([]*LabCase, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := r.services.LabCases.List(ctx, session.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]*LabCase, 0, len(list))
	for _, lc := range list {
		out = append(out, mapLabCase(lc))
	}
	return out, nil
}

func (r *queryResolver) AllDirectoryData(ctx context.Context) ([]*DirectoryEntity, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	views, err := r.services.Directory.Aggregate(ctx, session.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]*DirectoryEntity, 0, len(views))
	for _, v := range views {
		out = append(out, mapDirectoryView(v))
	}
	return out, nil
}

func (r *queryResolver) DocumentEntities(ctx context.Context) ([]*DocumentEntity, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	summaries, err := r.services.Documents.ListSummaries(ctx, session.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]*DocumentEntity, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, mapDocumentEntity(s.Entity))
	}
	return out, nil
}

func (r *queryResolver) Insurances(ctx context.Context) ([]*Insurance, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	list, err := r.services.Insurances.List(ctx, session.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]*Insurance, 0, len(list))
	for _, ins := range list {
		out = append(out, mapInsurance(ins))
	}
	return out, nil
}

func (r *queryResolver) DashboardData(ctx context.Context) (*DashboardData, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	data, err := r.services.Dashboard.Data(ctx, session.CompanyID)
	if err != nil {
		return nil, err
	}
	activity := make([]*ActivityItem, 0, len(data.RecentActivity))
	for _, item := range data.RecentActivity {
		activity = append(activity, &ActivityItem{
			Kind:      item.Kind,
			Title:     item.Title,
			Timestamp: item.Timestamp,
			TimeAgo:   item.TimeAgo,
		})
	}
	return &DashboardData{
		OpenTickets:        data.OpenTickets,
		PendingPTO:         data.PendingPTO,
		ActiveLabCases:     data.ActiveLabCases,
		ActiveEmployees:    data.ActiveEmployees,
		DoctorsOnCallToday: data.DoctorsOnCallToday,
		RecentActivity:     activity,
	}, nil
}

type mutationResolver struct{ *Resolver }

func (r *mutationResolver) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	emp, token, err := r.services.Auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &AuthPayload{Token: token, Employee: mapEmployee(emp)}, nil
}

func (r *mutationResolver) UpdateFrontDeskSchedule(ctx context.Context, positionID, clinicID, employeeID string) (*FrontDeskSlot, error) {
	row, err := r.services.Schedules.SetFrontDesk(ctx, models.SlotKey{SlotID: positionID, ClinicID: clinicID}, employeeID)
	if err != nil {
		return nil, err
	}
	return mapFrontDeskSlot(row), nil
}

func (r *mutationResolver) SwapFrontDeskAssignments(ctx context.Context, a, b SlotKeyInput) ([]*FrontDeskSlot, error) {
	rows, err := r.services.Schedules.SwapFrontDesk(ctx,
		models.SlotKey{SlotID: a.SlotID, ClinicID: a.ClinicID},
		models.SlotKey{SlotID: b.SlotID, ClinicID: b.ClinicID})
	if err != nil {
		return nil, err
	}
	out := make([]*FrontDeskSlot, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapFrontDeskSlot(row))
	}
	return out, nil
}

func (r *mutationResolver) UpdateDoctorSchedule(ctx context.Context, dayID, clinicID, doctorID, shift string) (*DoctorSlot, error) {
	row, err := r.services.Schedules.SetDoctor(ctx, models.SlotKey{SlotID: dayID, ClinicID: clinicID}, doctorID, shift)
	if err != nil {
		return nil, err
	}
	return mapDoctorSlot(row), nil
}

func (r *mutationResolver) SwapDoctorAssignments(ctx context.Context, a, b SlotKeyInput) ([]*DoctorSlot, error) {
	rows, err := r.services.Schedules.SwapDoctors(ctx,
		models.SlotKey{SlotID: a.SlotID, ClinicID: a.ClinicID},
		models.SlotKey{SlotID: b.SlotID, ClinicID: b.ClinicID})
	if err != nil {
		return nil, err
	}
	out := make([]*DoctorSlot, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapDoctorSlot(row))
	}
	return out, nil
}

func (r *mutationResolver) CreatePTO(ctx context.Context, input CreatePTOInput) (*PTORequest, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return nil, models.NewValidationError("start_date", "must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return nil, models.NewValidationError("end_date", "must be YYYY-MM-DD")
	}

	req, err := r.services.PTO.Create(ctx, service.CreatePTOInput{
		EmployeeID:    input.EmployeeID,
		CompanyID:     session.CompanyID,
		LeaveType:     input.LeaveType,
		StartDate:     start,
		EndDate:       end,
		RequestedDays: input.RequestedDays,
		Comment:       input.Comment,
		RequestedBy:   session.UserID,
	})
	if err != nil {
		return nil, err
	}
	return mapPTO(req), nil
}

func (r *mutationResolver) ApprovePTO(ctx context.Context, id string) (*PTORequest, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	req, err := r.services.PTO.Approve(ctx, id, session.UserID)
	if err != nil {
		return nil, err
	}
	return mapPTO(req), nil
}

func (r *mutationResolver) RejectPTO(ctx context.Context, id string) (*PTORequest, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	req, err := r.services.PTO.Reject(ctx, id, session.UserID)
	if err != nil {
		return nil, err
	}
	return mapPTO(req), nil
}

func (r *mutationResolver) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*Employee, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	emp, err := r.services.Employees.Create(ctx, service.CreateEmployeeInput{
		CompanyID: session.CompanyID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  input.Password,
		Role:      input.Role,
		Position:  input.Position,
		ClinicID:  input.ClinicID,
		HireDate:  input.HireDate,
	})
	if err != nil {
		return nil, err
	}
	return mapEmployee(emp), nil
}

func (r *mutationResolver) UpdateEmployee(ctx context.Context, id string, input UpdateEmployeeInput) (*Employee, error) {
	emp, err := r.services.Employees.Update(ctx, id, service.UpdateEmployeeInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      input.Role,
		Position:  input.Position,
		ClinicID:  input.ClinicID,
		IsActive:  input.IsActive,
	})
	if err != nil {
		return nil, err
	}
	return mapEmployee(emp), nil
}

func (r *mutationResolver) DeleteEmployee(ctx context.Context, id string) (bool, error) {
	if err := r.services.Employees.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) CreateTicket(ctx context.Context, input CreateTicketInput) (*Ticket, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	t, err := r.services.Tickets.Create(ctx, service.CreateTicketInput{
		CompanyID:   session.CompanyID,
		Subject:     input.Subject,
		Requester:   session.Name,
		Location:    input.Location,
		Channel:     input.Channel,
		Category:    input.Category,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		return nil, err
	}
	return mapTicket(t), nil
}

func (r *mutationResolver) UpdateTicket(ctx context.Context, id string, input UpdateTicketInput) (*Ticket, error) {
	t, err := r.services.Tickets.Update(ctx, id, service.UpdateTicketInput{
		Subject:      input.Subject,
		Location:     input.Location,
		Category:     input.Category,
		Description:  input.Description,
		Status:       input.Status,
		Priority:     input.Priority,
		DueDate:      input.DueDate,
		Satisfaction: input.Satisfaction,
	})
	if err != nil {
		return nil, err
	}
	return mapTicket(t), nil
}

func (r *mutationResolver) DeleteTicket(ctx context.Context, id string) (bool, error) {
	if err := r.services.Tickets.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) AddTicketUpdate(ctx context.Context, ticketID, message string) (*Ticket, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := r.services.Tickets.AddUpdate(ctx, ticketID, message, session.Name); err != nil {
		return nil, err
	}
	t, err := r.services.Tickets.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return mapTicket(t), nil
}

func (r *mutationResolver) CreateLabCase(ctx context.Context, input CreateLabCaseInput) (*LabCase, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	lc, err := r.services.LabCases.Create(ctx, service.CreateLabCaseInput{
		CompanyID:        session.CompanyID,
		PatientFirstName: input.PatientFirstName,
		PatientLastName:  input.PatientLastName,
		Doctor:           input.Doctor,
		Procedure:        input.Procedure,
		Status:           input.Status,
		Priority:         input.Priority,
		Notes:            input.Notes,
		DueDate:          input.DueDate,
	})
	if err != nil {
		return nil, err
	}
	return mapLabCase(lc), nil
}

func (r *mutationResolver) UpdateLabCase(ctx context.Context, caseID string, input UpdateLabCaseInput) (*LabCase, error) {
	lc, err := r.services.LabCases.Update(ctx, caseID, service.UpdateLabCaseInput{
		Status:          input.Status,
		Priority:        input.Priority,
		ProductionStage: input.ProductionStage,
		Technician:      input.Technician,
		Notes:           input.Notes,
		DueDate:         input.DueDate,
	})
	if err != nil {
		return nil, err
	}
	return mapLabCase(lc), nil
}

func (r *mutationResolver) CreateDirectoryEntry(ctx context.Context, input CreateDirectoryEntryInput) (*DirectoryEntry, error) {
	entry, err := r.services.Directory.CreateEntry(ctx, service.CreateEntryInput{
		EntityID:   input.EntityID,
		Group:      input.Group,
		Location:   input.Location,
		Phone:      input.Phone,
		Extension:  input.Extension,
		Department: input.Department,
		Employee:   input.Employee,
	})
	if err != nil {
		return nil, err
	}
	return mapDirectoryEntries([]*models.DirectoryEntry{entry})[0], nil
}

func (r *mutationResolver) UpdateDirectoryEntry(ctx context.Context, entityID, entryID string, input UpdateDirectoryEntryInput) (*DirectoryEntry, error) {
	entry, err := r.services.Directory.UpdateEntry(ctx, entityID, entryID, service.UpdateEntryInput{
		Location:   input.Location,
		Phone:      input.Phone,
		Extension:  input.Extension,
		Department: input.Department,
		Employee:   input.Employee,
	})
	if err != nil {
		return nil, err
	}
	return mapDirectoryEntries([]*models.DirectoryEntry{entry})[0], nil
}

func (r *mutationResolver) ReorderDirectoryEntries(ctx context.Context, entityID, group string, orderedIDs []string) (bool, error) {
	if err := r.services.Directory.ReorderEntries(ctx, entityID, group, orderedIDs); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) AddDocument(ctx context.Context, input AddDocumentInput) (*Document, error) {
	doc, err := r.services.Documents.AddDocument(ctx, input.GroupID, service.AddDocumentInput{
		Title:       input.Title,
		Version:     input.Version,
		Date:        input.Date,
		Description: input.Description,
		URL:         input.URL,
		FileName:    input.FileName,
	})
	if err != nil {
		return nil, err
	}
	return mapDocument(doc), nil
}

func (r *mutationResolver) UpdateDocument(ctx context.Context, docID string, input UpdateDocumentInput) (*Document, error) {
	doc, err := r.services.Documents.UpdateDocument(ctx, input.EntityID, input.GroupID, docID, service.UpdateDocumentInput{
		Title:       input.Title,
		Version:     input.Version,
		Date:        input.Date,
		Description: input.Description,
		URL:         input.URL,
		FileName:    input.FileName,
	})
	if err != nil {
		return nil, err
	}
	return mapDocument(doc), nil
}

func (r *mutationResolver) DeleteDocument(ctx context.Context, groupID, docID string) (bool, error) {
	if err := r.services.Documents.DeleteDocument(ctx, groupID, docID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) CreateInsurance(ctx context.Context, input CreateInsuranceInput) (*Insurance, error) {
	session, err := sessionFrom(ctx)
	if err != nil {
		return nil, err
	}
	ins, err := r.services.Insurances.Create(ctx, service.CreateInsuranceInput{
		CompanyID: session.CompanyID,
		Name:      input.Name,
		Phone:     input.Phone,
		PortalURL: input.PortalURL,
		Notes:     input.Notes,
	})
	if err != nil {
		return nil, err
	}
	return mapInsurance(ins), nil
}

func (r *mutationResolver) UpdateInsurance(ctx context.Context, id string, input UpdateInsuranceInput) (*Insurance, error) {
	ins, err := r.services.Insurances.Update(ctx, id, service.UpdateInsuranceInput{
		Name:      input.Name,
		Phone:     input.Phone,
		PortalURL: input.PortalURL,
		Notes:     input.Notes,
	})
	if err != nil {
		return nil, err
	}
	return mapInsurance(ins), nil
}

func (r *mutationResolver) DeleteInsurance(ctx context.Context, id string) (bool, error) {
	if err := r.services.Insurances.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
