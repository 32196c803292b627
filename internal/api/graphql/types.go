package graphql

import (
	"strings"
	"time"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// Wire types for the GraphQL transport. They mirror the domain models but
// keep the transport free to evolve its field names independently.

type Employee struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role"`
	Position  string     `json:"position,omitempty"`
	ClinicID  string     `json:"clinicId,omitempty"`
	HireDate  *time.Time `json:"hireDate,omitempty"`
	IsActive  bool       `json:"isActive"`
}

type AuthPayload struct {
	Token    string    `json:"token"`
	Employee *Employee `json:"employee"`
}

type FrontDeskSlot struct {
	PositionID string `json:"positionId"`
	ClinicID   string `json:"clinicId"`
	EmployeeID string `json:"employeeId,omitempty"`
	Name       string `json:"name,omitempty"`
}

type DoctorSlot struct {
	DayID    string `json:"dayId"`
	ClinicID string `json:"clinicId"`
	DoctorID string `json:"doctorId,omitempty"`
	Name     string `json:"name,omitempty"`
	Shift    string `json:"shift,omitempty"`
}

type PTORequest struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employeeId"`
	LeaveType     string     `json:"leaveType"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	RequestedDays int        `json:"requestedDays"`
	Comment       string     `json:"comment,omitempty"`
	Status        string     `json:"status"`
	ReviewedBy    string     `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type PTOBalance struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Pending   int `json:"pending"`
	Available int `json:"available"`
}

type TicketUpdate struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type Ticket struct {
	ID           string          `json:"id"`
	Subject      string          `json:"subject"`
	Requester    string          `json:"requester,omitempty"`
	Location     string          `json:"location,omitempty"`
	Category     string          `json:"category,omitempty"`
	Description  string          `json:"description,omitempty"`
	Status       string          `json:"status"`
	Priority     string          `json:"priority"`
	Satisfaction *int            `json:"satisfaction,omitempty"`
	Updates      []*TicketUpdate `json:"updates"`
	CreatedAt    time.Time       `json:"createdAt"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
}

type LabCase struct {
	CaseID          string     `json:"caseId"`
	PatientName     string     `json:"patientName"`
	Doctor          string     `json:"doctor,omitempty"`
	Procedure       string     `json:"procedure,omitempty"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	ProductionStage string     `json:"productionStage,omitempty"`
	Technician      string     `json:"technician,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type DirectoryEntry struct {
	ID         string `json:"id"`
	Group      string `json:"group"`
	Location   string `json:"location,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Extension  string `json:"extension,omitempty"`
	Department string `json:"department,omitempty"`
	Employee   string `json:"employee,omitempty"`
	Order      int    `json:"order"`
}

type DirectoryEntity struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Corporate []*DirectoryEntry `json:"corporate"`
	FrontDesk []*DirectoryEntry `json:"frontdesk"`
	Offices   []*DirectoryEntry `json:"offices"`
}

type Document struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Version     string     `json:"version,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url,omitempty"`
	FileName    *string    `json:"fileName,omitempty"`
}

type DocumentGroup struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Documents []*Document `json:"documents"`
}

type DocumentEntity struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Groups []*DocumentGroup `json:"groups"`
}

type Insurance struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	PortalURL string `json:"portalUrl,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type ActivityItem struct {
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	TimeAgo   string    `json:"timeAgo"`
}

type DashboardData struct {
	OpenTickets        int             `json:"openTickets"`
	PendingPTO         int             `json:"pendingPto"`
	ActiveLabCases     int             `json:"activeLabCases"`
	ActiveEmployees    int             `json:"activeEmployees"`
	DoctorsOnCallToday int             `json:"doctorsOnCallToday"`
	RecentActivity     []*ActivityItem `json:"recentActivity"`
}

func mapEmployee(e *models.Employee) *Employee {
	if e == nil {
		return nil
	}
	return &Employee{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		FullName:  e.FullName(),
		Email:     e.Email,
		Phone:     e.Phone,
		Role:      e.Role,
		Position:  e.Position,
		ClinicID:  e.ClinicID,
		HireDate:  e.HireDate,
		IsActive:  e.IsActive,
	}
}

func mapEmployees(list []*models.Employee) []*Employee {
	out := make([]*Employee, 0, len(list))
	for _, e := range list {
		out = append(out, mapEmployee(e))
	}
	return out
}

// SlotKeyInput identifies one schedule slot in swap mutations.
type SlotKeyInput struct {
	SlotID   string `json:"slotId"`
	ClinicID string `json:"clinicId"`
}

// CreatePTOInput carries a leave request. Dates arrive as YYYY-MM-DD
// strings, matching the date picker on the client.
type CreatePTOInput struct {
	EmployeeID    string `json:"employeeId"`
	LeaveType     string `json:"leaveType"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	RequestedDays int    `json:"requestedDays"`
	Comment       string `json:"comment,omitempty"`
}

// CreateEmployeeInput carries a new staff record.
type CreateEmployeeInput struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Password  string     `json:"password"`
	Role      string     `json:"role"`
	Position  string     `json:"position,omitempty"`
	ClinicID  string     `json:"clinicId,omitempty"`
	HireDate  *time.Time `json:"hireDate,omitempty"`
}

// UpdateEmployeeInput leaves nil fields unchanged.
type UpdateEmployeeInput struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Role      *string `json:"role,omitempty"`
	Position  *string `json:"position,omitempty"`
	ClinicID  *string `json:"clinicId,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

type CreateTicketInput struct {
	Subject     string     `json:"subject"`
	Location    string     `json:"location,omitempty"`
	Channel     string     `json:"channel,omitempty"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

type UpdateTicketInput struct {
	Subject      *string    `json:"subject,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Priority     *string    `json:"priority,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	Satisfaction *int       `json:"satisfaction,omitempty"`
}

type CreateLabCaseInput struct {
	PatientFirstName string     `json:"patientFirstName"`
	PatientLastName  string     `json:"patientLastName"`
	Doctor           string     `json:"doctor,omitempty"`
	Procedure        string     `json:"procedure"`
	Status           string     `json:"status,omitempty"`
	Priority         string     `json:"priority,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
}

type UpdateLabCaseInput struct {
	Status          *string    `json:"status,omitempty"`
	Priority        *string    `json:"priority,omitempty"`
	ProductionStage *string    `json:"productionStage,omitempty"`
	Technician      *string    `json:"technician,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
}

type CreateDirectoryEntryInput struct {
	EntityID   string `json:"entityId"`
	Group      string `json:"group"`
	Location   string `json:"location,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Extension  string `json:"extension,omitempty"`
	Department string `json:"department,omitempty"`
	Employee   string `json:"employee,omitempty"`
}

type UpdateDirectoryEntryInput struct {
	Location   *string `json:"location,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Extension  *string `json:"extension,omitempty"`
	Department *string `json:"department,omitempty"`
	Employee   *string `json:"employee,omitempty"`
}

type AddDocumentInput struct {
	GroupID     string     `json:"groupId"`
	Title       string     `json:"title"`
	Version     string     `json:"version,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url,omitempty"`
	FileName    *string    `json:"fileName,omitempty"`
}

type UpdateDocumentInput struct {
	EntityID    string     `json:"entityId"`
	GroupID     string     `json:"groupId"`
	Title       *string    `json:"title,omitempty"`
	Version     *string    `json:"version,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Description *string    `json:"description,omitempty"`
	URL         *string    `json:"url,omitempty"`
	FileName    *string    `json:"fileName,omitempty"`
}

type CreateInsuranceInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	PortalURL string `json:"portalUrl,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type UpdateInsuranceInput struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	PortalURL *string `json:"portalUrl,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func mapFrontDeskSlot(a *models.FrontDeskAssignment) *FrontDeskSlot {
	if a == nil {
		return nil
	}
	return &FrontDeskSlot{
		PositionID: a.PositionID,
		ClinicID:   a.ClinicID,
		EmployeeID: deref(a.EmployeeID),
		Name:       deref(a.EmployeeName),
	}
}

func mapDoctorSlot(a *models.DoctorAssignment) *DoctorSlot {
	if a == nil {
		return nil
	}
	return &DoctorSlot{
		DayID:    a.DayID,
		ClinicID: a.ClinicID,
		DoctorID: deref(a.DoctorID),
		Name:     deref(a.DoctorName),
		Shift:    deref(a.Shift),
	}
}

func mapPTO(req *models.PTORequest) *PTORequest {
	if req == nil {
		return nil
	}
	return &PTORequest{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		LeaveType:     req.LeaveType,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		RequestedDays: req.RequestedDays,
		Comment:       req.Comment,
		Status:        req.Status,
		ReviewedBy:    deref(req.ReviewedBy),
		ReviewedAt:    req.ReviewedAt,
		CreatedAt:     req.CreatedAt,
	}
}

func mapTicket(t *models.Ticket) *Ticket {
	if t == nil {
		return nil
	}
	updates := make([]*TicketUpdate, 0, len(t.Updates))
	for i := range t.Updates {
		u := t.Updates[i]
		updates = append(updates, &TicketUpdate{
			ID:        u.ID,
			User:      u.User,
			Message:   u.Message,
			Timestamp: u.Timestamp,
		})
	}
	return &Ticket{
		ID:           t.ID,
		Subject:      t.Subject,
		Requester:    t.Requester,
		Location:     t.Location,
		Category:     t.Category,
		Description:  t.Description,
		Status:       t.Status,
		Priority:     t.Priority,
		Satisfaction: t.Satisfaction,
		Updates:      updates,
		CreatedAt:    t.CreatedAt,
		DueDate:      t.DueDate,
	}
}

func mapLabCase(lc *models.LabCase) *LabCase {
	if lc == nil {
		return nil
	}
	name := strings.TrimSpace(lc.PatientFirstName + " " + lc.PatientLastName)
	return &LabCase{
		CaseID:          lc.CaseID,
		PatientName:     name,
		Doctor:          lc.Doctor,
		Procedure:       lc.Procedure,
		Status:          lc.Status,
		Priority:        lc.Priority,
		ProductionStage: deref(lc.ProductionStage),
		Technician:      deref(lc.Technician),
		Notes:           lc.Notes,
		DueDate:         lc.DueDate,
		CreatedAt:       lc.CreatedAt,
	}
}

func mapDirectoryEntries(list []*models.DirectoryEntry) []*DirectoryEntry {
	out := make([]*DirectoryEntry, 0, len(list))
	for _, e := range list {
		out = append(out, &DirectoryEntry{
			ID:         e.ID,
			Group:      e.Group,
			Location:   e.Location,
			Phone:      e.Phone,
			Extension:  e.Extension,
			Department: e.Department,
			Employee:   e.Employee,
			Order:      e.Order,
		})
	}
	return out
}

func mapDirectoryView(v *models.DirectoryView) *DirectoryEntity {
	if v == nil || v.Entity == nil {
		return nil
	}
	return &DirectoryEntity{
		ID:        v.Entity.ID,
		Name:      v.Entity.Name,
		Corporate: mapDirectoryEntries(v.Corporate),
		FrontDesk: mapDirectoryEntries(v.FrontDesk),
		Offices:   mapDirectoryEntries(v.Offices),
	}
}

func mapDocument(d *models.DocumentRecord) *Document {
	if d == nil {
		return nil
	}
	return &Document{
		ID:          d.ID,
		Title:       d.Title,
		Version:     d.Version,
		Date:        d.Date,
		Description: d.Description,
		URL:         d.URL,
		FileName:    d.FileName,
	}
}

func mapDocumentEntity(e *models.DocumentEntity) *DocumentEntity {
	if e == nil {
		return nil
	}
	groups := make([]*DocumentGroup, 0, len(e.Groups))
	for _, g := range e.Groups {
		docs := make([]*Document, 0, len(g.Documents))
		for _, d := range g.Documents {
			docs = append(docs, mapDocument(d))
		}
		groups = append(groups, &DocumentGroup{ID: g.ID, Name: g.Name, Documents: docs})
	}
	return &DocumentEntity{ID: e.ID, Name: e.Name, Groups: groups}
}

func mapInsurance(ins *models.Insurance) *Insurance {
	if ins == nil {
		return nil
	}
	return &Insurance{
		ID:        ins.ID,
		Name:      ins.Name,
		Phone:     ins.Phone,
		PortalURL: ins.PortalURL,
		Notes:     ins.Notes,
	}
}
