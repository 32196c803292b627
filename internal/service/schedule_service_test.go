package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

func newScheduleFixture(t *testing.T) (*ScheduleService, *repository.MemoryEmployeeRepository) {
	t.Helper()
	employees := repository.NewMemoryEmployeeRepository()
	svc := NewScheduleService(
		repository.NewMemoryFrontDeskScheduleRepository(),
		repository.NewMemoryDoctorScheduleRepository(),
		employees,
	)
	require.NoError(t, svc.SeedGrids(context.Background(), []string{"clinic-1", "clinic-2"}))
	return svc, employees
}

func addEmployee(t *testing.T, employees *repository.MemoryEmployeeRepository, id, first, last string) {
	t.Helper()
	err := employees.Create(context.Background(), &models.Employee{
		ID: id, CompanyID: "c1", FirstName: first, LastName: last, IsActive: true,
	})
	require.NoError(t, err)
}

func TestScheduleServiceFrontDesk(t *testing.T) {
	ctx := context.Background()

	t.Run("set resolves the display name from the staff record", func(t *testing.T) {
		svc, employees := newScheduleFixture(t)
		addEmployee(t, employees, "e1", "Dana", "Reyes")
		key := models.SlotKey{SlotID: models.PositionFrontDesk, ClinicID: "clinic-1"}

		row, err := svc.SetFrontDesk(ctx, key, "e1")
		require.NoError(t, err)
		require.NotNil(t, row.EmployeeID)
		assert.Equal(t, "e1", *row.EmployeeID)
		assert.Equal(t, "Dana Reyes", *row.EmployeeName)
	})

	t.Run("empty employee clears the slot", func(t *testing.T) {
		svc, employees := newScheduleFixture(t)
		addEmployee(t, employees, "e1", "Dana", "Reyes")
		key := models.SlotKey{SlotID: models.PositionAssistant1, ClinicID: "clinic-1"}

		_, err := svc.SetFrontDesk(ctx, key, "e1")
		require.NoError(t, err)
		row, err := svc.SetFrontDesk(ctx, key, "")
		require.NoError(t, err)
		assert.True(t, row.Empty())
	})

	t.Run("set rejects unknown positions and employees", func(t *testing.T) {
		svc, employees := newScheduleFixture(t)
		addEmployee(t, employees, "e1", "Dana", "Reyes")

		_, err := svc.SetFrontDesk(ctx, models.SlotKey{SlotID: "night-desk", ClinicID: "clinic-1"}, "e1")
		assert.True(t, models.IsValidation(err))

		_, err = svc.SetFrontDesk(ctx, models.SlotKey{SlotID: models.PositionFrontDesk, ClinicID: "clinic-1"}, "ghost")
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("swap returns both slots in argument order", func(t *testing.T) {
		svc, employees := newScheduleFixture(t)
		addEmployee(t, employees, "e1", "Dana", "Reyes")
		addEmployee(t, employees, "e2", "Mia", "Ortiz")
		a := models.SlotKey{SlotID: models.PositionFrontDesk, ClinicID: "clinic-1"}
		b := models.SlotKey{SlotID: models.PositionAssistant2, ClinicID: "clinic-2"}

		_, err := svc.SetFrontDesk(ctx, a, "e1")
		require.NoError(t, err)
		_, err = svc.SetFrontDesk(ctx, b, "e2")
		require.NoError(t, err)

		rows, err := svc.SwapFrontDesk(ctx, a, b)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "e2", *rows[0].EmployeeID)
		assert.Equal(t, "e1", *rows[1].EmployeeID)
	})

	t.Run("swap with an empty slot moves the assignee", func(t *testing.T) {
		svc, employees := newScheduleFixture(t)
		addEmployee(t, employees, "e1", "Dana", "Reyes")
		a := models.SlotKey{SlotID: models.PositionFrontDesk, ClinicID: "clinic-1"}
		b := models.SlotKey{SlotID: models.PositionAssistant1, ClinicID: "clinic-1"}

		_, err := svc.SetFrontDesk(ctx, a, "e1")
		require.NoError(t, err)

		rows, err := svc.SwapFrontDesk(ctx, a, b)
		require.NoError(t, err)
		assert.True(t, rows[0].Empty())
		assert.Equal(t, "e1", *rows[1].EmployeeID)
	})
}

func TestScheduleServiceDoctors(t *testing.T) {
	ctx := context.Background()

	t.Run("set requires a valid shift", func(t *testing.T) {
		svc, employees := newScheduleFixture(t)
		addEmployee(t, employees, "d1", "Imani", "Okafor")
		key := models.SlotKey{SlotID: "monday", ClinicID: "clinic-1"}

		_, err := svc.SetDoctor(ctx, key, "d1", "NIGHT")
		assert.True(t, models.IsValidation(err))

		row, err := svc.SetDoctor(ctx, key, "d1", models.ShiftAM)
		require.NoError(t, err)
		assert.Equal(t, models.ShiftAM, *row.Shift)
		assert.Equal(t, "Imani Okafor", *row.DoctorName)
	})

	t.Run("clearing ignores the shift argument", func(t *testing.T) {
		svc, employees := newScheduleFixture(t)
		addEmployee(t, employees, "d1", "Imani", "Okafor")
		key := models.SlotKey{SlotID: "tuesday", ClinicID: "clinic-1"}

		_, err := svc.SetDoctor(ctx, key, "d1", models.ShiftPM)
		require.NoError(t, err)
		row, err := svc.SetDoctor(ctx, key, "", "")
		require.NoError(t, err)
		assert.True(t, row.Empty())
		assert.Nil(t, row.Shift)
	})

	t.Run("swap carries the shift with the doctor", func(t *testing.T) {
		svc, employees := newScheduleFixture(t)
		addEmployee(t, employees, "d1", "Imani", "Okafor")
		addEmployee(t, employees, "d2", "Ken", "Tanaka")
		a := models.SlotKey{SlotID: "monday", ClinicID: "clinic-1"}
		b := models.SlotKey{SlotID: "friday", ClinicID: "clinic-1"}

		_, err := svc.SetDoctor(ctx, a, "d1", models.ShiftAM)
		require.NoError(t, err)
		_, err = svc.SetDoctor(ctx, b, "d2", models.ShiftPM)
		require.NoError(t, err)

		rows, err := svc.SwapDoctors(ctx, a, b)
		require.NoError(t, err)
		assert.Equal(t, "d2", *rows[0].DoctorID)
		assert.Equal(t, models.ShiftPM, *rows[0].Shift)
		assert.Equal(t, "d1", *rows[1].DoctorID)
		assert.Equal(t, models.ShiftAM, *rows[1].Shift)
	})

	t.Run("swap rejects unknown days", func(t *testing.T) {
		svc, _ := newScheduleFixture(t)

		_, err := svc.SwapDoctors(ctx,
			models.SlotKey{SlotID: "sunday", ClinicID: "clinic-1"},
			models.SlotKey{SlotID: "monday", ClinicID: "clinic-1"})
		assert.True(t, models.IsValidation(err))
	})
}
