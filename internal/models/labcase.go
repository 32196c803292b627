package models

import "time"

// Lab case statuses. Transitions are unconstrained on purpose; the lab sets
// whatever the bench reality is (recorded decision, see DESIGN.md).
const (
	LabCaseStatusInPlanning   = "in-planning"
	LabCaseStatusInProduction = "in-production"
	LabCaseStatusInTransit    = "in-transit"
	LabCaseStatusCompleted    = "completed"
)

// Lab case priorities.
const (
	LabCasePriorityNormal = "normal"
	LabCasePriorityRush   = "rush"
	LabCasePriorityUrgent = "urgent"
)

// LabCaseStatuses lists the valid statuses for input validation.
var LabCaseStatuses = []string{LabCaseStatusInPlanning, LabCaseStatusInProduction, LabCaseStatusInTransit, LabCaseStatusCompleted}

// LabCasePriorities lists the valid priorities for input validation.
var LabCasePriorities = []string{LabCasePriorityNormal, LabCasePriorityRush, LabCasePriorityUrgent}

// ProductionStages lists the pipeline phases, informational only.
var ProductionStages = []string{"design", "printing", "milling", "finishing", "qc", "packaging"}

// LabCase tracks a dental appliance through the in-house lab pipeline.
// CaseID is globally unique.
type LabCase struct {
	CaseID           string     `json:"case_id" db:"case_id"`
	CompanyID        string     `json:"company_id" db:"company_id"`
	PatientFirstName string     `json:"patient_first_name" db:"patient_first_name"`
	PatientLastName  string     `json:"patient_last_name" db:"patient_last_name"`
	Doctor           string     `json:"doctor" db:"doctor"`
	Procedure        string     `json:"procedure" db:"procedure_name"`
	Status           string     `json:"status" db:"status"`
	Priority         string     `json:"priority" db:"priority"`
	ProductionStage  *string    `json:"production_stage,omitempty" db:"production_stage"`
	Technician       *string    `json:"technician,omitempty" db:"technician"`
	Notes            string     `json:"notes,omitempty" db:"notes"`
	DueDate          *time.Time `json:"due_date,omitempty" db:"due_date"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// ValidLabCaseStatus reports whether s is a known status.
func ValidLabCaseStatus(s string) bool {
	for _, v := range LabCaseStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidLabCasePriority reports whether p is a known priority.
func ValidLabCasePriority(p string) bool {
	for _, v := range LabCasePriorities {
		if v == p {
			return true
		}
	}
	return false
}

// ValidProductionStage reports whether s is a known pipeline phase.
func ValidProductionStage(s string) bool {
	for _, v := range ProductionStages {
		if v == s {
			return true
		}
	}
	return false
}
