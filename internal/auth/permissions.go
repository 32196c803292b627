package auth

import "github.com/dentaldesk-io/dentaldesk-ce/internal/models"

// Known roles.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleFrontDesk    = "front_desk"
	RoleAssistant    = "assistant"
	RoleDoctor       = "doctor"
	RoleLabTech      = "lab_tech"
	RoleHRSpecialist = "hr_specialist"
	RoleViewer       = "viewer"
)

// privilegedRoles always pass every module and permission check. This is an
// explicit role override, not a wildcard capability; both check functions
// consult IsPrivileged first.
var privilegedRoles = map[string]bool{
	RoleAdmin:   true,
	RoleManager: true,
}

// rolePermissions is the process-wide static mapping of role to capability
// set. RoleViewer is the most restrictive set and the fallback for unknown
// roles.
var rolePermissions = map[string]*models.RolePermissionSet{
	RoleAdmin: {
		Modules: []string{
			models.ModuleDashboard, models.ModuleDocuments, models.ModuleContacts,
			models.ModuleSchedules, models.ModuleTickets, models.ModuleLaboratory,
			models.ModuleHR, models.ModuleInsurances, models.ModuleComplaints,
			models.ModuleLicenses, models.ModuleMedication, models.ModuleSettings,
		},
		CanModifySchedules:  true,
		CanModifyDocuments:  true,
		CanViewAllTickets:   true,
		CanModifyTickets:    true,
		CanViewReports:      true,
		CanManageUsers:      true,
		CanModifyContacts:   true,
		CanAccessLaboratory: true,
		CanManageTransit:    true,
	},
	RoleManager: {
		Modules: []string{
			models.ModuleDashboard, models.ModuleDocuments, models.ModuleContacts,
			models.ModuleSchedules, models.ModuleTickets, models.ModuleLaboratory,
			models.ModuleHR, models.ModuleInsurances, models.ModuleComplaints,
			models.ModuleLicenses, models.ModuleMedication, models.ModuleSettings,
		},
		CanModifySchedules:  true,
		CanModifyDocuments:  true,
		CanViewAllTickets:   true,
		CanModifyTickets:    true,
		CanViewReports:      true,
		CanManageUsers:      true,
		CanModifyContacts:   true,
		CanAccessLaboratory: true,
		CanManageTransit:    true,
	},
	RoleFrontDesk: {
		Modules: []string{
			models.ModuleDashboard, models.ModuleDocuments, models.ModuleContacts,
			models.ModuleSchedules, models.ModuleTickets, models.ModuleInsurances,
		},
		CanModifySchedules: true,
		CanModifyTickets:   true,
		CanModifyContacts:  true,
	},
	RoleAssistant: {
		Modules: []string{
			models.ModuleDashboard, models.ModuleDocuments, models.ModuleSchedules,
			models.ModuleTickets,
		},
		CanModifyTickets: true,
	},
	RoleDoctor: {
		Modules: []string{
			models.ModuleDashboard, models.ModuleDocuments, models.ModuleSchedules,
			models.ModuleLaboratory, models.ModuleMedication, models.ModuleLicenses,
		},
		CanAccessLaboratory: true,
	},
	RoleLabTech: {
		Modules: []string{
			models.ModuleDashboard, models.ModuleLaboratory, models.ModuleDocuments,
		},
		CanAccessLaboratory: true,
		CanManageTransit:    true,
	},
	RoleHRSpecialist: {
		Modules: []string{
			models.ModuleDashboard, models.ModuleHR, models.ModuleDocuments,
			models.ModuleComplaints, models.ModuleLicenses,
		},
		CanViewReports: true,
		CanManageUsers: true,
	},
	RoleViewer: {
		Modules: []string{models.ModuleDashboard},
	},
}

// IsPrivileged reports whether a role is in the full-access set.
func IsPrivileged(role string) bool {
	return privilegedRoles[models.NormalizeRole(role)]
}

// DefaultPermissionsForRole returns the static capability set for a role,
// falling back to the most restrictive set for unknown roles.
func DefaultPermissionsForRole(role string) *models.RolePermissionSet {
	if p, ok := rolePermissions[models.NormalizeRole(role)]; ok {
		return p
	}
	return rolePermissions[RoleViewer]
}

// HasModuleAccess reports whether the session may see a module. Privileged
// roles pass for every module name, known or not. Sessions without an
// explicit permission set fall back to the role defaults.
func HasModuleAccess(session *models.UserSession, module string) bool {
	if session == nil {
		return false
	}
	if IsPrivileged(session.Role) {
		return true
	}
	perms := session.Permissions
	if perms == nil {
		perms = DefaultPermissionsForRole(session.Role)
	}
	return perms.HasModule(module)
}

// HasPermission reports whether the session holds a named boolean
// capability. Same privileged short-circuit as HasModuleAccess; unset keys
// are false.
func HasPermission(session *models.UserSession, key string) bool {
	if session == nil {
		return false
	}
	if IsPrivileged(session.Role) {
		return true
	}
	perms := session.Permissions
	if perms == nil {
		perms = DefaultPermissionsForRole(session.Role)
	}
	return perms.Flag(key)
}
