package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

type LabCaseHandler struct {
	labCases *service.LabCaseService
}

func NewLabCaseHandler(labCases *service.LabCaseService) *LabCaseHandler {
	return &LabCaseHandler{labCases: labCases}
}

func (h *LabCaseHandler) List(c *gin.Context) {
	session := middleware.GetSession(c)
	cases, err := h.labCases.List(c.Request.Context(), session.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, cases)
}

func (h *LabCaseHandler) Get(c *gin.Context) {
	lc, err := h.labCases.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, lc)
}

type createLabCaseRequest struct {
	PatientFirstName string     `json:"patient_first_name"`
	PatientLastName  string     `json:"patient_last_name"`
	Doctor           string     `json:"doctor"`
	Procedure        string     `json:"procedure" binding:"required"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	Notes            string     `json:"notes"`
	DueDate          *time.Time `json:"due_date"`
}

func (h *LabCaseHandler) Create(c *gin.Context) {
	var req createLabCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "procedure is required")
		return
	}

	session := middleware.GetSession(c)
	lc, err := h.labCases.Create(c.Request.Context(), service.CreateLabCaseInput{
		CompanyID:        session.CompanyID,
		PatientFirstName: req.PatientFirstName,
		PatientLastName:  req.PatientLastName,
		Doctor:           req.Doctor,
		Procedure:        req.Procedure,
		Status:           req.Status,
		Priority:         req.Priority,
		Notes:            req.Notes,
		DueDate:          req.DueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, lc)
}

type updateLabCaseRequest struct {
	Status          *string    `json:"status"`
	Priority        *string    `json:"priority"`
	ProductionStage *string    `json:"production_stage"`
	Technician      *string    `json:"technician"`
	Notes           *string    `json:"notes"`
	DueDate         *time.Time `json:"due_date"`
}

func (h *LabCaseHandler) Update(c *gin.Context) {
	var req updateLabCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	lc, err := h.labCases.Update(c.Request.Context(), c.Param("id"), service.UpdateLabCaseInput{
		Status:          req.Status,
		Priority:        req.Priority,
		ProductionStage: req.ProductionStage,
		Technician:      req.Technician,
		Notes:           req.Notes,
		DueDate:         req.DueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, lc)
}
