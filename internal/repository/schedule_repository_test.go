package repository

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

func newScheduleTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Each sqlite connection gets its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE front_desk_schedules (
			id            TEXT PRIMARY KEY,
			position_id   TEXT NOT NULL,
			clinic_id     TEXT NOT NULL,
			employee_id   TEXT,
			employee_name TEXT,
			seed_order    INTEGER NOT NULL DEFAULT 0,
			UNIQUE (position_id, clinic_id)
		);
		CREATE TABLE doctor_schedules (
			id          TEXT PRIMARY KEY,
			day_id      TEXT NOT NULL,
			clinic_id   TEXT NOT NULL,
			doctor_id   TEXT,
			doctor_name TEXT,
			shift       TEXT,
			seed_order  INTEGER NOT NULL DEFAULT 0,
			UNIQUE (day_id, clinic_id)
		);
	`)
	require.NoError(t, err)
	return db
}

func TestFrontDeskScheduleRepository(t *testing.T) {
	ctx := context.Background()
	clinics := []string{"clinic-1", "clinic-2"}

	t.Run("seed creates every slot once", func(t *testing.T) {
		repo := NewSQLFrontDeskScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))

		rows, err := repo.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, rows, len(models.FrontDeskPositions)*len(clinics))
		for _, row := range rows {
			assert.True(t, row.Empty())
		}

		// Seeding again must not duplicate rows.
		require.NoError(t, repo.Seed(ctx, clinics))
		rows, err = repo.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, rows, len(models.FrontDeskPositions)*len(clinics))
	})

	t.Run("list filters by clinic and keeps seed order", func(t *testing.T) {
		repo := NewSQLFrontDeskScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))

		rows, err := repo.List(ctx, "clinic-2")
		require.NoError(t, err)
		require.Len(t, rows, len(models.FrontDeskPositions))
		for i, row := range rows {
			assert.Equal(t, "clinic-2", row.ClinicID)
			assert.Equal(t, models.FrontDeskPositions[i], row.PositionID)
		}
	})

	t.Run("set assigns and clears", func(t *testing.T) {
		repo := NewSQLFrontDeskScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))
		key := models.SlotKey{SlotID: models.PositionFrontDesk, ClinicID: "clinic-1"}

		err := repo.Set(ctx, key, &models.FrontDeskAssignee{EmployeeID: "e1", EmployeeName: "Dana Reyes"})
		require.NoError(t, err)

		row, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, row.EmployeeID)
		assert.Equal(t, "e1", *row.EmployeeID)
		assert.Equal(t, "Dana Reyes", *row.EmployeeName)

		require.NoError(t, repo.Set(ctx, key, nil))
		row, err = repo.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, row.Empty())
	})

	t.Run("set on unknown slot returns not found", func(t *testing.T) {
		repo := NewSQLFrontDeskScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))

		err := repo.Set(ctx, models.SlotKey{SlotID: "night-desk", ClinicID: "clinic-1"},
			&models.FrontDeskAssignee{EmployeeID: "e1", EmployeeName: "Dana Reyes"})
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("swap exchanges two assignees", func(t *testing.T) {
		repo := NewSQLFrontDeskScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))
		a := models.SlotKey{SlotID: models.PositionFrontDesk, ClinicID: "clinic-1"}
		b := models.SlotKey{SlotID: models.PositionAssistant1, ClinicID: "clinic-1"}
		require.NoError(t, repo.Set(ctx, a, &models.FrontDeskAssignee{EmployeeID: "e1", EmployeeName: "Dana Reyes"}))
		require.NoError(t, repo.Set(ctx, b, &models.FrontDeskAssignee{EmployeeID: "e2", EmployeeName: "Mia Ortiz"}))

		require.NoError(t, repo.Swap(ctx, a, b))

		rowA, err := repo.Get(ctx, a)
		require.NoError(t, err)
		rowB, err := repo.Get(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, "e2", *rowA.EmployeeID)
		assert.Equal(t, "e1", *rowB.EmployeeID)
	})

	t.Run("swap with an empty slot moves the assignee", func(t *testing.T) {
		repo := NewSQLFrontDeskScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))
		a := models.SlotKey{SlotID: models.PositionFrontDesk, ClinicID: "clinic-1"}
		b := models.SlotKey{SlotID: models.PositionAssistant2, ClinicID: "clinic-2"}
		require.NoError(t, repo.Set(ctx, a, &models.FrontDeskAssignee{EmployeeID: "e1", EmployeeName: "Dana Reyes"}))

		require.NoError(t, repo.Swap(ctx, a, b))

		rowA, err := repo.Get(ctx, a)
		require.NoError(t, err)
		rowB, err := repo.Get(ctx, b)
		require.NoError(t, err)
		assert.True(t, rowA.Empty())
		require.NotNil(t, rowB.EmployeeID)
		assert.Equal(t, "e1", *rowB.EmployeeID)
	})

	t.Run("swap with itself is a no-op", func(t *testing.T) {
		repo := NewSQLFrontDeskScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))
		a := models.SlotKey{SlotID: models.PositionFrontDesk, ClinicID: "clinic-1"}
		require.NoError(t, repo.Set(ctx, a, &models.FrontDeskAssignee{EmployeeID: "e1", EmployeeName: "Dana Reyes"}))

		require.NoError(t, repo.Swap(ctx, a, a))

		row, err := repo.Get(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, "e1", *row.EmployeeID)
	})

	t.Run("swap with a missing slot changes nothing", func(t *testing.T) {
		repo := NewSQLFrontDeskScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))
		a := models.SlotKey{SlotID: models.PositionFrontDesk, ClinicID: "clinic-1"}
		require.NoError(t, repo.Set(ctx, a, &models.FrontDeskAssignee{EmployeeID: "e1", EmployeeName: "Dana Reyes"}))

		err := repo.Swap(ctx, a, models.SlotKey{SlotID: models.PositionFrontDesk, ClinicID: "no-such-clinic"})
		assert.True(t, models.IsNotFound(err))

		row, err := repo.Get(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, "e1", *row.EmployeeID)
	})
}

func TestDoctorScheduleRepository(t *testing.T) {
	ctx := context.Background()
	clinics := []string{"clinic-1"}

	t.Run("seed creates a slot per day", func(t *testing.T) {
		repo := NewSQLDoctorScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))

		rows, err := repo.List(ctx, "clinic-1")
		require.NoError(t, err)
		require.Len(t, rows, len(models.ScheduleDays))
		for i, row := range rows {
			assert.Equal(t, models.ScheduleDays[i], row.DayID)
			assert.True(t, row.Empty())
		}
	})

	t.Run("set records doctor and shift", func(t *testing.T) {
		repo := NewSQLDoctorScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))
		key := models.SlotKey{SlotID: "wednesday", ClinicID: "clinic-1"}

		err := repo.Set(ctx, key, &models.DoctorAssignee{DoctorID: "d1", DoctorName: "Dr. Okafor", Shift: models.ShiftPM})
		require.NoError(t, err)

		row, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, row.DoctorID)
		assert.Equal(t, "d1", *row.DoctorID)
		assert.Equal(t, models.ShiftPM, *row.Shift)
	})

	t.Run("swap carries the shift with the doctor", func(t *testing.T) {
		repo := NewSQLDoctorScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))
		a := models.SlotKey{SlotID: "monday", ClinicID: "clinic-1"}
		b := models.SlotKey{SlotID: "friday", ClinicID: "clinic-1"}
		require.NoError(t, repo.Set(ctx, a, &models.DoctorAssignee{DoctorID: "d1", DoctorName: "Dr. Okafor", Shift: models.ShiftAM}))
		require.NoError(t, repo.Set(ctx, b, &models.DoctorAssignee{DoctorID: "d2", DoctorName: "Dr. Tanaka", Shift: models.ShiftPM}))

		require.NoError(t, repo.Swap(ctx, a, b))

		rowA, err := repo.Get(ctx, a)
		require.NoError(t, err)
		rowB, err := repo.Get(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, "d2", *rowA.DoctorID)
		assert.Equal(t, models.ShiftPM, *rowA.Shift)
		assert.Equal(t, "d1", *rowB.DoctorID)
		assert.Equal(t, models.ShiftAM, *rowB.Shift)
	})

	t.Run("get unknown day returns not found", func(t *testing.T) {
		repo := NewSQLDoctorScheduleRepository(newScheduleTestDB(t))
		require.NoError(t, repo.Seed(ctx, clinics))

		_, err := repo.Get(ctx, models.SlotKey{SlotID: "sunday", ClinicID: "clinic-1"})
		assert.True(t, models.IsNotFound(err))
	})
}
