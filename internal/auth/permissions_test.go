package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

func sessionWithRole(role string) *models.UserSession {
	s := &models.UserSession{UserID: "emp-1", Role: role}
	return s.Normalize()
}

func TestIsPrivileged(t *testing.T) {
	assert.True(t, IsPrivileged("admin"))
	assert.True(t, IsPrivileged("manager"))
	assert.True(t, IsPrivileged(" Manager "))
	assert.False(t, IsPrivileged("doctor"))
	assert.False(t, IsPrivileged(""))
}

func TestHasModuleAccess(t *testing.T) {
	t.Run("privileged roles pass every module, even unknown ones", func(t *testing.T) {
		for _, role := range []string{"admin", "Manager"} {
			s := sessionWithRole(role)
			assert.True(t, HasModuleAccess(s, models.ModuleTickets), role)
			assert.True(t, HasModuleAccess(s, models.ModuleSettings), role)
			assert.True(t, HasModuleAccess(s, "made-up-module"), role)
		}
	})

	t.Run("other roles fall back to role defaults without explicit permissions", func(t *testing.T) {
		s := sessionWithRole("lab_tech")
		assert.True(t, HasModuleAccess(s, models.ModuleLaboratory))
		assert.True(t, HasModuleAccess(s, models.ModuleDocuments))
		assert.False(t, HasModuleAccess(s, models.ModuleContacts))
	})

	t.Run("explicit permission set wins over defaults", func(t *testing.T) {
		s := sessionWithRole("lab_tech")
		s.Permissions = &models.RolePermissionSet{Modules: []string{models.ModuleContacts}}
		assert.True(t, HasModuleAccess(s, models.ModuleContacts))
		assert.False(t, HasModuleAccess(s, models.ModuleLaboratory))
	})

	t.Run("nil session is denied", func(t *testing.T) {
		assert.False(t, HasModuleAccess(nil, models.ModuleDashboard))
	})
}

func TestHasPermission(t *testing.T) {
	t.Run("privileged roles pass every key, even unknown ones", func(t *testing.T) {
		s := sessionWithRole("admin")
		assert.True(t, HasPermission(s, models.PermManageUsers))
		assert.True(t, HasPermission(s, "canDoAnythingAtAll"))
	})

	t.Run("non-privileged role checks the named flag strictly", func(t *testing.T) {
		s := sessionWithRole("front_desk")
		assert.True(t, HasPermission(s, models.PermModifySchedules))
		assert.False(t, HasPermission(s, models.PermManageUsers))
		assert.False(t, HasPermission(s, "unknownKey"))
	})

	t.Run("nil session is denied", func(t *testing.T) {
		assert.False(t, HasPermission(nil, models.PermViewReports))
	})
}

func TestDefaultPermissionsForRole(t *testing.T) {
	t.Run("known role returns its configured set", func(t *testing.T) {
		p := DefaultPermissionsForRole("LAB_TECH")
		require.NotNil(t, p)
		assert.True(t, p.HasModule(models.ModuleLaboratory))
		assert.True(t, p.CanManageTransit)
	})

	t.Run("unknown role falls back to the most restrictive set", func(t *testing.T) {
		p := DefaultPermissionsForRole("janitor-of-the-month")
		require.NotNil(t, p)
		assert.Equal(t, DefaultPermissionsForRole(RoleViewer), p)
		assert.False(t, p.CanModifySchedules)
		assert.Equal(t, []string{models.ModuleDashboard}, p.Modules)
	})
}
