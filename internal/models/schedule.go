package models

// Front-desk position slots.
const (
	PositionFrontDesk  = "front-desk"
	PositionAssistant1 = "assistant-1"
	PositionAssistant2 = "assistant-2"
)

// FrontDeskPositions lists the valid position IDs in display order.
var FrontDeskPositions = []string{PositionFrontDesk, PositionAssistant1, PositionAssistant2}

// ScheduleDays lists the on-call day IDs in display order.
var ScheduleDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// Shifts for doctor assignments.
const (
	ShiftAM = "AM"
	ShiftPM = "PM"
)

// FrontDeskAssignment is one slot of the front-desk grid: at most one
// assignee per (position, clinic) pair. Rows are pre-seeded for every valid
// pair; mutations only change the assignee, never the key set.
type FrontDeskAssignment struct {
	ID           string  `json:"id" db:"id"`
	PositionID   string  `json:"position_id" db:"position_id"`
	ClinicID     string  `json:"clinic_id" db:"clinic_id"`
	EmployeeID   *string `json:"employee_id,omitempty" db:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty" db:"employee_name"`
	SeedOrder    int     `json:"-" db:"seed_order"`
}

// Empty reports whether the slot has no assignee.
func (a *FrontDeskAssignment) Empty() bool {
	return a.EmployeeID == nil
}

// DoctorAssignment is one slot of the on-call grid: at most one doctor per
// (day, clinic) pair, with an AM/PM shift marker.
type DoctorAssignment struct {
	ID         string  `json:"id" db:"id"`
	DayID      string  `json:"day_id" db:"day_id"`
	ClinicID   string  `json:"clinic_id" db:"clinic_id"`
	DoctorID   *string `json:"doctor_id,omitempty" db:"doctor_id"`
	DoctorName *string `json:"doctor_name,omitempty" db:"doctor_name"`
	Shift      *string `json:"shift,omitempty" db:"shift"`
	SeedOrder  int     `json:"-" db:"seed_order"`
}

// Empty reports whether the slot has no assignee.
func (a *DoctorAssignment) Empty() bool {
	return a.DoctorID == nil
}

// SlotKey identifies one row of either schedule table.
type SlotKey struct {
	SlotID   string `json:"slot_id"` // position for front-desk, day for doctors
	ClinicID string `json:"clinic_id"`
}

func (k SlotKey) String() string { return k.SlotID + "/" + k.ClinicID }

// FrontDeskAssignee is the optional value held in a front-desk slot.
type FrontDeskAssignee struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
}

// DoctorAssignee is the optional value held in a doctor slot.
type DoctorAssignee struct {
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Shift      string `json:"shift"`
}
