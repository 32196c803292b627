package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

type TicketHandler struct {
	tickets *service.TicketService
}

func NewTicketHandler(tickets *service.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

func (h *TicketHandler) List(c *gin.Context) {
	session := middleware.GetSession(c)
	tickets, err := h.tickets.List(c.Request.Context(), session.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, tickets)
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticket, err := h.tickets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, ticket)
}

type createTicketRequest struct {
	Subject     string     `json:"subject" binding:"required"`
	Location    string     `json:"location"`
	Channel     string     `json:"channel"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "subject is required")
		return
	}

	session := middleware.GetSession(c)
	ticket, err := h.tickets.Create(c.Request.Context(), service.CreateTicketInput{
		CompanyID:   session.CompanyID,
		Subject:     req.Subject,
		Requester:   session.Name,
		Location:    req.Location,
		Channel:     req.Channel,
		Category:    req.Category,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, ticket)
}

type updateTicketRequest struct {
	Subject      *string    `json:"subject"`
	Location     *string    `json:"location"`
	Category     *string    `json:"category"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status"`
	Priority     *string    `json:"priority"`
	DueDate      *time.Time `json:"due_date"`
	Satisfaction *int       `json:"satisfaction"`
}

func (h *TicketHandler) Update(c *gin.Context) {
	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	ticket, err := h.tickets.Update(c.Request.Context(), c.Param("id"), service.UpdateTicketInput{
		Subject:      req.Subject,
		Location:     req.Location,
		Category:     req.Category,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		Satisfaction: req.Satisfaction,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, ticket)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	if err := h.tickets.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

type addUpdateRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *TicketHandler) AddUpdate(c *gin.Context) {
	var req addUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "message is required")
		return
	}

	session := middleware.GetSession(c)
	update, err := h.tickets.AddUpdate(c.Request.Context(), c.Param("id"), req.Message, session.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, update)
}
