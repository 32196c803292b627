package models

// Module names gating section visibility in the dashboard UI.
const (
	ModuleDashboard  = "dashboard"
	ModuleDocuments  = "documents"
	ModuleContacts   = "contacts"
	ModuleSchedules  = "schedules"
	ModuleTickets    = "tickets"
	ModuleLaboratory = "laboratory"
	ModuleHR         = "hr"
	ModuleInsurances = "insurances"
	ModuleComplaints = "complaints"
	ModuleLicenses   = "licenses"
	ModuleMedication = "medication"
	ModuleSettings   = "settings"
)

// Permission keys for HasPermission lookups.
const (
	PermModifySchedules  = "canModifySchedules"
	PermModifyDocuments  = "canModifyDocuments"
	PermViewAllTickets   = "canViewAllTickets"
	PermModifyTickets    = "canModifyTickets"
	PermViewReports      = "canViewReports"
	PermManageUsers      = "canManageUsers"
	PermModifyContacts   = "canModifyContacts"
	PermAccessLaboratory = "canAccessLaboratory"
	PermManageTransit    = "canManageTransit"
)

// RolePermissionSet is the static capability set attached to a role. Exactly
// one set exists per known role; it is immutable at runtime.
type RolePermissionSet struct {
	Modules             []string `json:"modules"`
	CanModifySchedules  bool     `json:"canModifySchedules"`
	CanModifyDocuments  bool     `json:"canModifyDocuments"`
	CanViewAllTickets   bool     `json:"canViewAllTickets"`
	CanModifyTickets    bool     `json:"canModifyTickets"`
	CanViewReports      bool     `json:"canViewReports"`
	CanManageUsers      bool     `json:"canManageUsers"`
	CanModifyContacts   bool     `json:"canModifyContacts"`
	CanAccessLaboratory bool     `json:"canAccessLaboratory"`
	CanManageTransit    bool     `json:"canManageTransit"`
}

// HasModule reports module membership in the set.
func (p *RolePermissionSet) HasModule(module string) bool {
	if p == nil {
		return false
	}
	for _, m := range p.Modules {
		if m == module {
			return true
		}
	}
	return false
}

// Flag resolves a named boolean capability, defaulting to false for unknown
// keys.
func (p *RolePermissionSet) Flag(key string) bool {
	if p == nil {
		return false
	}
	switch key {
	case PermModifySchedules:
		return p.CanModifySchedules
	case PermModifyDocuments:
		return p.CanModifyDocuments
	case PermViewAllTickets:
		return p.CanViewAllTickets
	case PermModifyTickets:
		return p.CanModifyTickets
	case PermViewReports:
		return p.CanViewReports
	case PermManageUsers:
		return p.CanManageUsers
	case PermModifyContacts:
		return p.CanModifyContacts
	case PermAccessLaboratory:
		return p.CanAccessLaboratory
	case PermManageTransit:
		return p.CanManageTransit
	default:
		return false
	}
}
