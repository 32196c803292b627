package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

type ScheduleHandler struct {
	schedules *service.ScheduleService
}

func NewScheduleHandler(schedules *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

func (h *ScheduleHandler) ListFrontDesk(c *gin.Context) {
	rows, err := h.schedules.ListFrontDesk(c.Request.Context(), c.Query("clinic_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}

type setFrontDeskRequest struct {
	PositionID string `json:"position_id" binding:"required"`
	ClinicID   string `json:"clinic_id" binding:"required"`
	EmployeeID string `json:"employee_id"`
}

func (h *ScheduleHandler) SetFrontDesk(c *gin.Context) {
	var req setFrontDeskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "position_id and clinic_id are required")
		return
	}

	row, err := h.schedules.SetFrontDesk(c.Request.Context(),
		models.SlotKey{SlotID: req.PositionID, ClinicID: req.ClinicID}, req.EmployeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, row)
}

type swapRequest struct {
	A models.SlotKey `json:"a" binding:"required"`
	B models.SlotKey `json:"b" binding:"required"`
}

func (h *ScheduleHandler) SwapFrontDesk(c *gin.Context) {
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "both slot keys are required")
		return
	}

	rows, err := h.schedules.SwapFrontDesk(c.Request.Context(), req.A, req.B)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}

func (h *ScheduleHandler) ListDoctors(c *gin.Context) {
	rows, err := h.schedules.ListDoctors(c.Request.Context(), c.Query("clinic_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}

type setDoctorRequest struct {
	DayID    string `json:"day_id" binding:"required"`
	ClinicID string `json:"clinic_id" binding:"required"`
	DoctorID string `json:"doctor_id"`
	Shift    string `json:"shift"`
}

func (h *ScheduleHandler) SetDoctor(c *gin.Context) {
	var req setDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "day_id and clinic_id are required")
		return
	}

	row, err := h.schedules.SetDoctor(c.Request.Context(),
		models.SlotKey{SlotID: req.DayID, ClinicID: req.ClinicID}, req.DoctorID, req.Shift)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, row)
}

func (h *ScheduleHandler) SwapDoctors(c *gin.Context) {
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "both slot keys are required")
		return
	}

	rows, err := h.schedules.SwapDoctors(c.Request.Context(), req.A, req.B)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}
