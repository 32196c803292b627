package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// Storage keys kept consistent by Save/Clear. The legacy keys predate the
// profile blob and are still written for older dashboard builds.
const (
	KeyAuthToken         = "authToken"
	KeyUserProfile       = "userProfile"
	KeyLegacyUsername    = "legacyUsername"
	KeyLegacyPermissions = "legacyPermissions"
)

// Storage is a minimal string key/value store for session state. An
// unavailable store is treated as a no-op, never an error.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// tokenPayload is the wire shape of a token's middle segment. Only `sub` is
// required; everything else is best-effort.
type tokenPayload struct {
	Sub       string `json:"sub"`
	Role      string `json:"role,omitempty"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	CompanyID string `json:"cid,omitempty"`
}

// DecodeToken extracts a session from a raw bearer token without verifying
// the signature. It fails soft: any malformed segment yields nil. Use
// JWTManager.ValidateToken when authenticity matters; this path only serves
// session reconstruction from an already-trusted store.
func DecodeToken(raw string) *models.UserSession {
	parts := strings.Split(raw, ".")
	if len(parts) < 2 {
		return nil
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		// Some issuers pad; try the padded alphabet before giving up.
		data, err = base64.URLEncoding.DecodeString(parts[1])
		if err != nil {
			return nil
		}
	}

	var payload tokenPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil
	}
	if payload.Sub == "" {
		return nil
	}

	s := &models.UserSession{
		UserID:    payload.Sub,
		Email:     payload.Email,
		Name:      payload.Name,
		Role:      payload.Role,
		CompanyID: payload.CompanyID,
	}
	return s.Normalize()
}

// DecodeSession reconstructs a session, preferring the cached profile JSON
// over the token payload. Returns nil rather than an error on any parse
// failure.
func DecodeSession(rawToken, cachedProfileJSON string) *models.UserSession {
	if cachedProfileJSON != "" {
		var s models.UserSession
		if err := json.Unmarshal([]byte(cachedProfileJSON), &s); err == nil && s.UserID != "" {
			return s.Normalize()
		}
	}
	return DecodeToken(rawToken)
}

// SessionStore persists the current session in a Storage, the explicit
// object-passed-through replacement for ambient global session state.
type SessionStore struct {
	storage Storage
}

func NewSessionStore(storage Storage) *SessionStore {
	return &SessionStore{storage: storage}
}

// Save persists the session, token and legacy compatibility fields
// together. Storage failures are silent by contract.
func (s *SessionStore) Save(session *models.UserSession, token string) {
	if s.storage == nil || session == nil {
		return
	}
	session.Normalize()

	s.storage.Set(KeyAuthToken, token)
	if profile, err := json.Marshal(session); err == nil {
		s.storage.Set(KeyUserProfile, string(profile))
	}
	s.storage.Set(KeyLegacyUsername, session.Email)
	perms := session.Permissions
	if perms == nil {
		perms = DefaultPermissionsForRole(session.Role)
	}
	if blob, err := json.Marshal(perms); err == nil {
		s.storage.Set(KeyLegacyPermissions, string(blob))
	}
}

// Clear erases the session and all legacy fields.
func (s *SessionStore) Clear() {
	if s.storage == nil {
		return
	}
	s.storage.Delete(KeyAuthToken)
	s.storage.Delete(KeyUserProfile)
	s.storage.Delete(KeyLegacyUsername)
	s.storage.Delete(KeyLegacyPermissions)
}

// Current returns the stored session, or nil when nothing usable is stored.
// Prefers the profile blob, falls back to decoding the token, then to the
// legacy username/permissions pair.
func (s *SessionStore) Current() *models.UserSession {
	if s.storage == nil {
		return nil
	}

	token, _ := s.storage.Get(KeyAuthToken)
	profile, _ := s.storage.Get(KeyUserProfile)
	if session := DecodeSession(token, profile); session != nil {
		return session
	}

	// Legacy format: username string plus serialized permissions.
	username, ok := s.storage.Get(KeyLegacyUsername)
	if !ok || username == "" {
		return nil
	}
	session := &models.UserSession{UserID: username, Email: username}
	if blob, ok := s.storage.Get(KeyLegacyPermissions); ok && blob != "" {
		var perms models.RolePermissionSet
		if err := json.Unmarshal([]byte(blob), &perms); err == nil {
			session.Permissions = &perms
		}
	}
	return session.Normalize()
}

// MemoryStorage is an in-process Storage, used by tests and the CLI.
type MemoryStorage struct {
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) { m.values[key] = value }

func (m *MemoryStorage) Delete(key string) { delete(m.values, key) }
