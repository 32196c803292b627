package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

func TestDashboardServiceData(t *testing.T) {
	ctx := context.Background()

	tickets := repository.NewMemoryTicketRepository()
	pto := repository.NewMemoryPTORepository()
	labCases := repository.NewMemoryLabCaseRepository()
	employees := repository.NewMemoryEmployeeRepository()
	doctors := repository.NewMemoryDoctorScheduleRepository()
	svc := NewDashboardService(tickets, pto, labCases, employees, doctors)

	require.NoError(t, doctors.Seed(ctx, []string{"clinic-1"}))
	for _, day := range models.ScheduleDays {
		_, err := doctors.Get(ctx, models.SlotKey{SlotID: day, ClinicID: "clinic-1"})
		require.NoError(t, err)
		require.NoError(t, doctors.Set(ctx, models.SlotKey{SlotID: day, ClinicID: "clinic-1"},
			&models.DoctorAssignee{DoctorID: "d1", DoctorName: "Dr. Okafor", Shift: models.ShiftAM}))
	}

	now := time.Now()
	require.NoError(t, tickets.Create(ctx, &models.Ticket{
		ID: "t1", CompanyID: "c1", Subject: "Autoclave door jammed",
		Status: models.TicketStatusOpen, CreatedAt: now.Add(-time.Hour),
	}))
	require.NoError(t, tickets.Create(ctx, &models.Ticket{
		ID: "t2", CompanyID: "c1", Subject: "Monitor flicker",
		Status: models.TicketStatusResolved, CreatedAt: now.Add(-2 * time.Hour),
	}))
	require.NoError(t, pto.Create(ctx, &models.PTORequest{
		ID: "p1", EmployeeID: "e1", CompanyID: "c1", LeaveType: models.LeaveTypePaid,
		Status: models.PTOStatusPending, RequestedDays: 3, CreatedAt: now.Add(-30 * time.Minute),
	}))
	require.NoError(t, labCases.Create(ctx, &models.LabCase{
		CaseID: "LC-1", CompanyID: "c1", Procedure: "Crown",
		Status: models.LabCaseStatusInProduction, CreatedAt: now.Add(-10 * time.Minute),
	}))
	require.NoError(t, labCases.Create(ctx, &models.LabCase{
		CaseID: "LC-2", CompanyID: "c1", Procedure: "Bridge",
		Status: models.LabCaseStatusCompleted, CreatedAt: now.Add(-3 * time.Hour),
	}))
	require.NoError(t, employees.Create(ctx, &models.Employee{ID: "e1", CompanyID: "c1", IsActive: true}))
	require.NoError(t, employees.Create(ctx, &models.Employee{ID: "e2", CompanyID: "c1", IsActive: false}))

	data, err := svc.Data(ctx, "c1")
	require.NoError(t, err)

	assert.Equal(t, 1, data.OpenTickets)
	assert.Equal(t, 1, data.PendingPTO)
	assert.Equal(t, 1, data.ActiveLabCases)
	assert.Equal(t, 1, data.ActiveEmployees)

	// Every scheduled day has one doctor; Sunday has no slot at all.
	wantOnCall := 0
	today := strings.ToLower(time.Now().Weekday().String())
	for _, day := range models.ScheduleDays {
		if day == today {
			wantOnCall = 1
		}
	}
	assert.Equal(t, wantOnCall, data.DoctorsOnCallToday)

	require.NotEmpty(t, data.RecentActivity)
	// Newest first.
	assert.Equal(t, "lab_case", data.RecentActivity[0].Kind)
	assert.Equal(t, "Crown", data.RecentActivity[0].Title)
	for _, item := range data.RecentActivity {
		assert.NotEmpty(t, item.TimeAgo)
	}
}
