//go:build graphql

package graphql

import (
	"context"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

// QueryResolver lists the read operations of the schema.
type QueryResolver interface {
	Me(ctx context.Context) (*Employee, error)
	Employees(ctx context.Context) ([]*Employee, error)
	Employee(ctx context.Context, id string) (*Employee, error)
	FrontDeskSchedules(ctx context.Context, clinicID string) ([]*FrontDeskSlot, error)
	DoctorSchedules(ctx context.Context, clinicID string) ([]*DoctorSlot, error)
	PTORequests(ctx context.Context, employeeID *string) ([]*PTORequest, error)
	PTOBalance(ctx context.Context, employeeID *string) (*PTOBalance, error)
	Tickets(ctx context.Context) ([]*Ticket, error)
	Ticket(ctx context.Context, id string) (*Ticket, error)
	LabCases(ctx context.Context) ([]*LabCase, error)
	AllDirectoryData(ctx context.Context) ([]*DirectoryEntity, error)
	DocumentEntities(ctx context.Context) ([]*DocumentEntity, error)
	Insurances(ctx context.Context) ([]*Insurance, error)
	DashboardData(ctx context.Context) (*DashboardData, error)
}

// MutationResolver lists the write operations of the schema.
type MutationResolver interface {
	Login(ctx context.Context, email, password string) (*AuthPayload, error)
	UpdateFrontDeskSchedule(ctx context.Context, positionID, clinicID, employeeID string) (*FrontDeskSlot, error)
	SwapFrontDeskAssignments(ctx context.Context, a, b SlotKeyInput) ([]*FrontDeskSlot, error)
	UpdateDoctorSchedule(ctx context.Context, dayID, clinicID, doctorID, shift string) (*DoctorSlot, error)
	SwapDoctorAssignments(ctx context.Context, a, b SlotKeyInput) ([]*DoctorSlot, error)
	CreatePTO(ctx context.Context, input CreatePTOInput) (*PTORequest, error)
	ApprovePTO(ctx context.Context, id string) (*PTORequest, error)
	RejectPTO(ctx context.Context, id string) (*PTORequest, error)
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*Employee, error)
	UpdateEmployee(ctx context.Context, id string, input UpdateEmployeeInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, id string) (bool, error)
	CreateTicket(ctx context.Context, input CreateTicketInput) (*Ticket, error)
	UpdateTicket(ctx context.Context, id string, input UpdateTicketInput) (*Ticket, error)
	DeleteTicket(ctx context.Context, id string) (bool, error)
	AddTicketUpdate(ctx context.Context, ticketID, message string) (*Ticket, error)
	CreateLabCase(ctx context.Context, input CreateLabCaseInput) (*LabCase, error)
	UpdateLabCase(ctx context.Context, caseID string, input UpdateLabCaseInput) (*LabCase, error)
	CreateDirectoryEntry(ctx context.Context, input CreateDirectoryEntryInput) (*DirectoryEntry, error)
	UpdateDirectoryEntry(ctx context.Context, entityID, entryID string, input UpdateDirectoryEntryInput) (*DirectoryEntry, error)
	ReorderDirectoryEntries(ctx context.Context, entityID, group string, orderedIDs []string) (bool, error)
	AddDocument(ctx context.Context, input AddDocumentInput) (*Document, error)
	UpdateDocument(ctx context.Context, docID string, input UpdateDocumentInput) (*Document, error)
	DeleteDocument(ctx context.Context, groupID, docID string) (bool, error)
	CreateInsurance(ctx context.Context, input CreateInsuranceInput) (*Insurance, error)
	UpdateInsurance(ctx context.Context, id string, input UpdateInsuranceInput) (*Insurance, error)
	DeleteInsurance(ctx context.Context, id string) (bool, error)
}

// Server wraps the generated GraphQL handler.
type Server struct {
	resolver *Resolver
	handler  *handler.Server
}

func NewServer(services *service.Services) *Server {
	resolver := NewResolver(services)
	srv := handler.NewDefaultServer(NewExecutableSchema(Config{Resolvers: resolver}))
	return &Server{resolver: resolver, handler: srv}
}

// Handler serves queries. The session placed by the auth middleware is
// copied into the request context for the resolvers.
func (s *Server) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session := middleware.GetSession(c); session != nil {
			ctx := WithSession(c.Request.Context(), session)
			c.Request = c.Request.WithContext(ctx)
		}
		s.handler.ServeHTTP(c.Writer, c.Request)
	}
}

func (s *Server) PlaygroundHandler() gin.HandlerFunc {
	h := playground.Handler("GraphQL playground", "/api/v1/graphql")
	return gin.WrapH(h)
}

// RegisterRoutes mounts the endpoint on an already-authenticated group.
func (s *Server) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/graphql", s.Handler())
	r.GET("/graphql", s.PlaygroundHandler())
}
