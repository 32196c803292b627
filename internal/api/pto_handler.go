package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

type PTOHandler struct {
	pto *service.PTOService
}

func NewPTOHandler(pto *service.PTOService) *PTOHandler {
	return &PTOHandler{pto: pto}
}

// List returns either the company pipeline or one employee's requests.
func (h *PTOHandler) List(c *gin.Context) {
	session := middleware.GetSession(c)
	if employeeID := c.Query("employee_id"); employeeID != "" {
		requests, err := h.pto.ListByEmployee(c.Request.Context(), employeeID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, requests)
		return
	}

	requests, err := h.pto.ListByCompany(c.Request.Context(), session.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, requests)
}

type createPTORequest struct {
	EmployeeID    string    `json:"employee_id" binding:"required"`
	LeaveType     string    `json:"leave_type" binding:"required"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
	RequestedDays int       `json:"requested_days"`
	Comment       string    `json:"comment"`
}

func (h *PTOHandler) Create(c *gin.Context) {
	var req createPTORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	session := middleware.GetSession(c)
	created, err := h.pto.Create(c.Request.Context(), service.CreatePTOInput{
		EmployeeID:    req.EmployeeID,
		CompanyID:     session.CompanyID,
		LeaveType:     req.LeaveType,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		RequestedDays: req.RequestedDays,
		Comment:       req.Comment,
		RequestedBy:   session.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, created)
}

func (h *PTOHandler) Approve(c *gin.Context) {
	session := middleware.GetSession(c)
	req, err := h.pto.Approve(c.Request.Context(), c.Param("id"), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, req)
}

func (h *PTOHandler) Reject(c *gin.Context) {
	session := middleware.GetSession(c)
	req, err := h.pto.Reject(c.Request.Context(), c.Param("id"), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, req)
}

// Balance returns the derived balance for one employee.
func (h *PTOHandler) Balance(c *gin.Context) {
	session := middleware.GetSession(c)
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		employeeID = session.UserID
	}

	balance, err := h.pto.Balance(c.Request.Context(), employeeID, session.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, balance)
}
