package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

type EmployeeHandler struct {
	employees *service.EmployeeService
}

func NewEmployeeHandler(employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	session := middleware.GetSession(c)
	employees, err := h.employees.List(c.Request.Context(), session.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	emp, err := h.employees.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, emp)
}

type createEmployeeRequest struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Password  string     `json:"password"`
	Role      string     `json:"role"`
	Position  string     `json:"position"`
	ClinicID  string     `json:"clinic_id"`
	HireDate  *time.Time `json:"hire_date"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	session := middleware.GetSession(c)
	emp, err := h.employees.Create(c.Request.Context(), service.CreateEmployeeInput{
		CompanyID: session.CompanyID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      req.Role,
		Position:  req.Position,
		ClinicID:  req.ClinicID,
		HireDate:  req.HireDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, emp)
}

type updateEmployeeRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	Position  *string `json:"position"`
	ClinicID  *string `json:"clinic_id"`
	IsActive  *bool   `json:"is_active"`
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var req updateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	emp, err := h.employees.Update(c.Request.Context(), c.Param("id"), service.UpdateEmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
		Position:  req.Position,
		ClinicID:  req.ClinicID,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, emp)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employees.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
