package models

import "time"

// PTO request statuses. Transitions are one-way: pending to approved or
// pending to rejected, never out of a terminal state.
const (
	PTOStatusPending  = "pending"
	PTOStatusApproved = "approved"
	PTOStatusRejected = "rejected"
)

// Leave types.
const (
	LeaveTypePaid   = "paid"
	LeaveTypeUnpaid = "unpaid"
)

// DefaultPTOAllotment is the annual allotment applied when no
// company-specific policy row exists.
const DefaultPTOAllotment = 20

// PTORequest is a leave request in the approval pipeline.
type PTORequest struct {
	ID            string     `json:"id" db:"id"`
	EmployeeID    string     `json:"employee_id" db:"employee_id"`
	CompanyID     string     `json:"company_id,omitempty" db:"company_id"`
	LeaveType     string     `json:"leave_type" db:"leave_type"`
	StartDate     time.Time  `json:"start_date" db:"start_date"`
	EndDate       time.Time  `json:"end_date" db:"end_date"`
	RequestedDays int        `json:"requested_days" db:"requested_days"`
	Status        string     `json:"status" db:"status"`
	Comment       string     `json:"comment,omitempty" db:"comment"`
	RequestedBy   string     `json:"requested_by" db:"requested_by"`
	ReviewedBy    *string    `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// IsPending reports whether the request can still be reviewed.
func (r *PTORequest) IsPending() bool {
	return r.Status == PTOStatusPending
}

// PTOBalance is derived on every read, never persisted. Pending days do not
// reduce the available figure.
type PTOBalance struct {
	Available int `json:"available"`
	Used      int `json:"used"`
	Pending   int `json:"pending"`
	Total     int `json:"total"`
}

// ComputePTOBalance sums a request list against a fixed allotment. Pure
// function: used counts approved days, pending counts pending days,
// available is allotment minus used.
func ComputePTOBalance(requests []*PTORequest, allotment int) PTOBalance {
	b := PTOBalance{Total: allotment}
	for _, r := range requests {
		switch r.Status {
		case PTOStatusApproved:
			b.Used += r.RequestedDays
		case PTOStatusPending:
			b.Pending += r.RequestedDays
		}
	}
	b.Available = allotment - b.Used
	return b
}

// PTOPolicy is a per-company allotment override.
type PTOPolicy struct {
	CompanyID       string `json:"company_id" db:"company_id"`
	AnnualAllotment int    `json:"annual_allotment" db:"annual_allotment"`
}
