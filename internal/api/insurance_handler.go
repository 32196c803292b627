package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

type InsuranceHandler struct {
	insurances *service.InsuranceService
}

func NewInsuranceHandler(insurances *service.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{insurances: insurances}
}

func (h *InsuranceHandler) List(c *gin.Context) {
	session := middleware.GetSession(c)
	cards, err := h.insurances.List(c.Request.Context(), session.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, cards)
}

type createInsuranceRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	PortalURL string `json:"portal_url"`
	Notes     string `json:"notes"`
}

func (h *InsuranceHandler) Create(c *gin.Context) {
	var req createInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name is required")
		return
	}

	session := middleware.GetSession(c)
	ins, err := h.insurances.Create(c.Request.Context(), service.CreateInsuranceInput{
		CompanyID: session.CompanyID,
		Name:      req.Name,
		Phone:     req.Phone,
		PortalURL: req.PortalURL,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, ins)
}

type updateInsuranceRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	PortalURL *string `json:"portal_url"`
	Notes     *string `json:"notes"`
}

func (h *InsuranceHandler) Update(c *gin.Context) {
	var req updateInsuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	ins, err := h.insurances.Update(c.Request.Context(), c.Param("id"), service.UpdateInsuranceInput{
		Name:      req.Name,
		Phone:     req.Phone,
		PortalURL: req.PortalURL,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, ins)
}

func (h *InsuranceHandler) Delete(c *gin.Context) {
	if err := h.insurances.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
