package service

import (
	"context"
	"strings"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/auth"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/repository"
)

// AuthService handles login and token validation.
type AuthService struct {
	employees  repository.EmployeeRepository
	jwtManager *auth.JWTManager
}

func NewAuthService(employees repository.EmployeeRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{employees: employees, jwtManager: jwtManager}
}

// Login authenticates an employee by email and password and returns the
// employee with a signed token. Credential failures are indistinguishable
// from unknown accounts on purpose.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Employee, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", &models.AuthenticationError{Reason: "email and password are required"}
	}

	emp, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, "", &models.AuthenticationError{Reason: "invalid credentials"}
		}
		return nil, "", err
	}
	if !emp.IsActive {
		return nil, "", &models.AuthenticationError{Reason: "account is disabled"}
	}
	if !emp.CheckPassword(password) {
		return nil, "", &models.AuthenticationError{Reason: "invalid credentials"}
	}

	token, err := s.jwtManager.GenerateToken(emp)
	if err != nil {
		return nil, "", err
	}
	return emp, token, nil
}

// SessionFromToken validates a token and returns the session it encodes,
// with the role's permission set attached.
func (s *AuthService) SessionFromToken(tokenString string) (*models.UserSession, error) {
	claims, err := s.jwtManager.ValidateToken(tokenString)
	if err != nil {
		return nil, &models.AuthenticationError{Reason: "invalid token"}
	}
	session := claims.Session()
	session.Permissions = auth.DefaultPermissionsForRole(session.Role)
	return session, nil
}
