package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

func rawToken(t *testing.T, payload map[string]interface{}) string {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString(body) + ".sig"
}

func TestDecodeToken(t *testing.T) {
	t.Run("decodes well-formed payload", func(t *testing.T) {
		token := rawToken(t, map[string]interface{}{
			"sub": "emp-7", "role": " Manager ", "email": "m@clinic.example", "name": "M",
		})
		session := DecodeToken(token)
		require.NotNil(t, session)
		assert.Equal(t, "emp-7", session.UserID)
		assert.Equal(t, "manager", session.Role)
		assert.Equal(t, "m@clinic.example", session.Email)
	})

	t.Run("fewer than two segments returns nil", func(t *testing.T) {
		assert.Nil(t, DecodeToken("just-an-opaque-string"))
		assert.Nil(t, DecodeToken(""))
	})

	t.Run("garbage base64 returns nil", func(t *testing.T) {
		assert.Nil(t, DecodeToken("header.!!!not-base64!!!.sig"))
	})

	t.Run("valid base64 but not JSON returns nil", func(t *testing.T) {
		seg := base64.RawURLEncoding.EncodeToString([]byte("plain text"))
		assert.Nil(t, DecodeToken("h."+seg+".s"))
	})

	t.Run("payload without sub returns nil", func(t *testing.T) {
		token := rawToken(t, map[string]interface{}{"role": "admin"})
		assert.Nil(t, DecodeToken(token))
	})

	t.Run("accepts padded base64 segment", func(t *testing.T) {
		body, err := json.Marshal(map[string]string{"sub": "emp-9"})
		require.NoError(t, err)
		token := "h." + base64.URLEncoding.EncodeToString(body) + ".s"
		session := DecodeToken(token)
		require.NotNil(t, session)
		assert.Equal(t, "emp-9", session.UserID)
	})
}

func TestDecodeSession(t *testing.T) {
	t.Run("prefers cached profile over token", func(t *testing.T) {
		token := rawToken(t, map[string]interface{}{"sub": "from-token", "role": "viewer"})
		profile := `{"user_id":"from-profile","email":"p@clinic.example","role":"LAB_TECH"}`

		session := DecodeSession(token, profile)
		require.NotNil(t, session)
		assert.Equal(t, "from-profile", session.UserID)
		assert.Equal(t, "lab_tech", session.Role)
	})

	t.Run("falls back to token when profile is corrupt", func(t *testing.T) {
		token := rawToken(t, map[string]interface{}{"sub": "from-token"})
		session := DecodeSession(token, "{not json")
		require.NotNil(t, session)
		assert.Equal(t, "from-token", session.UserID)
	})

	t.Run("nil when both are unusable", func(t *testing.T) {
		assert.Nil(t, DecodeSession("bad", ""))
	})
}

func TestSessionStore(t *testing.T) {
	t.Run("save then current round-trips required fields", func(t *testing.T) {
		store := NewSessionStore(NewMemoryStorage())
		jwtManager := NewJWTManager("secret", time.Hour)
		emp := &models.Employee{ID: "emp-3", Email: "d@clinic.example", FirstName: "Dana", Role: "Doctor"}
		token, err := jwtManager.GenerateToken(emp)
		require.NoError(t, err)

		session := &models.UserSession{
			UserID: "emp-3",
			Email:  "d@clinic.example",
			Name:   "Dana",
			Role:   "Doctor",
		}
		store.Save(session, token)

		got := store.Current()
		require.NotNil(t, got)
		assert.Equal(t, "emp-3", got.UserID)
		assert.Equal(t, "d@clinic.example", got.Email)
		assert.Equal(t, "doctor", got.Role)
	})

	t.Run("clear removes session and legacy fields", func(t *testing.T) {
		storage := NewMemoryStorage()
		store := NewSessionStore(storage)
		store.Save(&models.UserSession{UserID: "emp-3", Email: "d@clinic.example", Role: "doctor"}, "tok")
		store.Clear()

		assert.Nil(t, store.Current())
		_, ok := storage.Get(KeyLegacyUsername)
		assert.False(t, ok)
		_, ok = storage.Get(KeyLegacyPermissions)
		assert.False(t, ok)
	})

	t.Run("reconstructs minimal session from legacy fields", func(t *testing.T) {
		storage := NewMemoryStorage()
		perms, err := json.Marshal(DefaultPermissionsForRole(RoleLabTech))
		require.NoError(t, err)
		storage.Set(KeyLegacyUsername, "old@clinic.example")
		storage.Set(KeyLegacyPermissions, string(perms))

		got := NewSessionStore(storage).Current()
		require.NotNil(t, got)
		assert.Equal(t, "old@clinic.example", got.Email)
		require.NotNil(t, got.Permissions)
		assert.True(t, got.Permissions.HasModule(models.ModuleLaboratory))
	})

	t.Run("nil storage is a no-op", func(t *testing.T) {
		store := NewSessionStore(nil)
		store.Save(&models.UserSession{UserID: "x"}, "tok")
		store.Clear()
		assert.Nil(t, store.Current())
	})
}
