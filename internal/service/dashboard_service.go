package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/xeonx/timeago"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

// DashboardData is the aggregated landing-page payload.
type DashboardData struct {
	OpenTickets        int             `json:"open_tickets"`
	PendingPTO         int             `json:"pending_pto"`
	ActiveLabCases     int             `json:"active_lab_cases"`
	ActiveEmployees    int             `json:"active_employees"`
	DoctorsOnCallToday int             `json:"doctors_on_call_today"`
	RecentActivity     []*ActivityItem `json:"recent_activity"`
}

// ActivityItem is one row of the recent-activity feed.
type ActivityItem struct {
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	TimeAgo   string    `json:"time_ago"`
}

const recentActivityLimit = 10

// DashboardService aggregates counts and recent activity across modules.
type DashboardService struct {
	tickets   repository.TicketRepository
	pto       repository.PTORepository
	labCases  repository.LabCaseRepository
	employees repository.EmployeeRepository
	doctors   repository.DoctorScheduleRepository
}

func NewDashboardService(tickets repository.TicketRepository, pto repository.PTORepository, labCases repository.LabCaseRepository, employees repository.EmployeeRepository, doctors repository.DoctorScheduleRepository) *DashboardService {
	return &DashboardService{tickets: tickets, pto: pto, labCases: labCases, employees: employees, doctors: doctors}
}

// Data assembles the dashboard payload for one company.
func (s *DashboardService) Data(ctx context.Context, companyID string) (*DashboardData, error) {
	data := &DashboardData{}

	tickets, err := s.tickets.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, t := range tickets {
		if t.Status != models.TicketStatusResolved {
			data.OpenTickets++
		}
	}

	requests, err := s.pto.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, r := range requests {
		if r.IsPending() {
			data.PendingPTO++
		}
	}

	labCases, err := s.labCases.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, lc := range labCases {
		if lc.Status != models.LabCaseStatusCompleted {
			data.ActiveLabCases++
		}
	}

	employees, err := s.employees.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, emp := range employees {
		if emp.IsActive {
			data.ActiveEmployees++
		}
	}

	slots, err := s.doctors.List(ctx, "")
	if err != nil {
		return nil, err
	}
	today := strings.ToLower(time.Now().Weekday().String())
	for _, slot := range slots {
		if slot.DayID == today && !slot.Empty() {
			data.DoctorsOnCallToday++
		}
	}

	data.RecentActivity = recentActivity(tickets, requests, labCases)
	return data, nil
}

func recentActivity(tickets []*models.Ticket, requests []*models.PTORequest, labCases []*models.LabCase) []*ActivityItem {
	var items []*ActivityItem
	for _, t := range tickets {
		items = append(items, &ActivityItem{Kind: "ticket", Title: t.Subject, Timestamp: t.CreatedAt})
	}
	for _, r := range requests {
		items = append(items, &ActivityItem{Kind: "pto", Title: r.LeaveType + " leave request", Timestamp: r.CreatedAt})
	}
	for _, lc := range labCases {
		items = append(items, &ActivityItem{Kind: "lab_case", Title: lc.Procedure, Timestamp: lc.CreatedAt})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Timestamp.After(items[j].Timestamp) })
	if len(items) > recentActivityLimit {
		items = items[:recentActivityLimit]
	}
	for _, item := range items {
		item.TimeAgo = timeago.English.Format(item.Timestamp)
	}
	return items
}
