package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

type DirectoryHandler struct {
	directory *service.DirectoryService
}

func NewDirectoryHandler(directory *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// Aggregate returns every entity with bucketed entries.
func (h *DirectoryHandler) Aggregate(c *gin.Context) {
	session := middleware.GetSession(c)
	views, err := h.directory.Aggregate(c.Request.Context(), session.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, views)
}

type createEntryRequest struct {
	EntityID   string `json:"entity_id" binding:"required"`
	Group      string `json:"group" binding:"required"`
	Location   string `json:"location"`
	Phone      string `json:"phone"`
	Extension  string `json:"extension"`
	Department string `json:"department"`
	Employee   string `json:"employee"`
}

func (h *DirectoryHandler) CreateEntry(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "entity_id and group are required")
		return
	}

	entry, err := h.directory.CreateEntry(c.Request.Context(), service.CreateEntryInput{
		EntityID:   req.EntityID,
		Group:      req.Group,
		Location:   req.Location,
		Phone:      req.Phone,
		Extension:  req.Extension,
		Department: req.Department,
		Employee:   req.Employee,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, entry)
}

type updateEntryRequest struct {
	EntityID   string  `json:"entity_id" binding:"required"`
	Location   *string `json:"location"`
	Phone      *string `json:"phone"`
	Extension  *string `json:"extension"`
	Department *string `json:"department"`
	Employee   *string `json:"employee"`
}

func (h *DirectoryHandler) UpdateEntry(c *gin.Context) {
	var req updateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "entity_id is required")
		return
	}

	entry, err := h.directory.UpdateEntry(c.Request.Context(), req.EntityID, c.Param("id"), service.UpdateEntryInput{
		Location:   req.Location,
		Phone:      req.Phone,
		Extension:  req.Extension,
		Department: req.Department,
		Employee:   req.Employee,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, entry)
}

type reorderRequest struct {
	EntityID   string   `json:"entity_id" binding:"required"`
	Group      string   `json:"group" binding:"required"`
	OrderedIDs []string `json:"ordered_ids" binding:"required"`
}

func (h *DirectoryHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "entity_id, group and ordered_ids are required")
		return
	}

	if err := h.directory.ReorderEntries(c.Request.Context(), req.EntityID, req.Group, req.OrderedIDs); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"reordered": true})
}
