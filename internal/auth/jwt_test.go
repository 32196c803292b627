package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

func testEmployee() *models.Employee {
	return &models.Employee{
		ID:        "emp-1",
		CompanyID: "brightsmile",
		FirstName: "Maria",
		LastName:  "Lopez",
		Email:     "maria@clinic.example",
		Role:      "Front_Desk",
	}
}

func TestJWTManager(t *testing.T) {
	jwtManager := NewJWTManager("test-secret-key-for-testing", time.Hour)

	t.Run("GenerateToken creates valid token", func(t *testing.T) {
		token, err := jwtManager.GenerateToken(testEmployee())
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("ValidateToken round-trips claims with normalized role", func(t *testing.T) {
		token, err := jwtManager.GenerateToken(testEmployee())
		require.NoError(t, err)

		claims, err := jwtManager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "emp-1", claims.Subject)
		assert.Equal(t, "maria@clinic.example", claims.Email)
		assert.Equal(t, "front_desk", claims.Role)
		assert.Equal(t, "brightsmile", claims.CompanyID)

		session := claims.Session()
		require.NotNil(t, session)
		assert.Equal(t, "emp-1", session.UserID)
		assert.Equal(t, "front_desk", session.Role)
	})

	t.Run("ValidateToken rejects invalid token", func(t *testing.T) {
		_, err := jwtManager.ValidateToken("invalid.token.here")
		assert.Error(t, err)
	})

	t.Run("ValidateToken rejects expired token", func(t *testing.T) {
		shortManager := NewJWTManager("test-secret-key-for-testing", time.Nanosecond)

		token, err := shortManager.GenerateToken(testEmployee())
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = shortManager.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("ValidateToken rejects token signed with another key", func(t *testing.T) {
		other := NewJWTManager("another-secret", time.Hour)
		token, err := other.GenerateToken(testEmployee())
		require.NoError(t, err)

		_, err = jwtManager.ValidateToken(token)
		assert.Error(t, err)
	})
}
