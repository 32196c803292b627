package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/auth"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

func newAuthFixture(t *testing.T) (*AuthService, *repository.MemoryEmployeeRepository) {
	t.Helper()
	employees := repository.NewMemoryEmployeeRepository()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	emp := &models.Employee{
		ID:        "e1",
		CompanyID: "c1",
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana@clinic.example",
		Role:      "Front_Desk",
		IsActive:  true,
	}
	require.NoError(t, emp.SetPassword("correct horse"))
	require.NoError(t, employees.Create(context.Background(), emp))

	return NewAuthService(employees, jwtManager), employees
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials yield a usable token", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		emp, token, err := svc.Login(ctx, "dana@clinic.example", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, "e1", emp.ID)
		require.NotEmpty(t, token)

		session, err := svc.SessionFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, "e1", session.UserID)
		assert.Equal(t, "front_desk", session.Role)
		assert.Equal(t, "c1", session.CompanyID)
		require.NotNil(t, session.Permissions)
		assert.True(t, session.Permissions.CanModifySchedules)
	})

	t.Run("email is trimmed and case insensitive", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, _, err := svc.Login(ctx, "  Dana@clinic.example ", "correct horse")
		assert.NoError(t, err)
		_, _, err = svc.Login(ctx, "DANA@CLINIC.EXAMPLE", "correct horse")
		assert.NoError(t, err)
	})

	t.Run("wrong password and unknown account look identical", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, _, errWrong := svc.Login(ctx, "dana@clinic.example", "nope")
		_, _, errUnknown := svc.Login(ctx, "ghost@clinic.example", "nope")
		require.Error(t, errWrong)
		require.Error(t, errUnknown)
		assert.Equal(t, errWrong.Error(), errUnknown.Error())
	})

	t.Run("disabled accounts cannot sign in", func(t *testing.T) {
		svc, employees := newAuthFixture(t)
		emp, err := employees.GetByID(ctx, "e1")
		require.NoError(t, err)
		emp.IsActive = false
		require.NoError(t, employees.Update(ctx, emp))

		_, _, err = svc.Login(ctx, "dana@clinic.example", "correct horse")
		var authErr *models.AuthenticationError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("blank credentials are rejected up front", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, _, err := svc.Login(ctx, "", "")
		var authErr *models.AuthenticationError
		require.ErrorAs(t, err, &authErr)
	})
}

func TestAuthServiceSessionFromToken(t *testing.T) {
	t.Run("garbage tokens fail", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, err := svc.SessionFromToken("not-a-token")
		var authErr *models.AuthenticationError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("tokens signed with another key fail", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		other := auth.NewJWTManager("other-secret", time.Hour)
		token, err := other.GenerateToken(&models.Employee{ID: "e1", Email: "dana@clinic.example"})
		require.NoError(t, err)

		_, err = svc.SessionFromToken(token)
		assert.Error(t, err)
	})
}
