package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

type DocumentHandler struct {
	documents *service.DocumentService
}

func NewDocumentHandler(documents *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// ListEntities returns entity summaries with group and document counts.
func (h *DocumentHandler) ListEntities(c *gin.Context) {
	session := middleware.GetSession(c)
	summaries, err := h.documents.ListSummaries(c.Request.Context(), session.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, summaries)
}

func (h *DocumentHandler) GetEntity(c *gin.Context) {
	entity, err := h.documents.GetEntity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, entity)
}

type addDocumentRequest struct {
	GroupID     string     `json:"group_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Version     string     `json:"version"`
	Date        *time.Time `json:"date"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	FileName    *string    `json:"file_name"`
}

func (h *DocumentHandler) AddDocument(c *gin.Context) {
	var req addDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "group_id and title are required")
		return
	}

	doc, err := h.documents.AddDocument(c.Request.Context(), req.GroupID, service.AddDocumentInput{
		Title:       req.Title,
		Version:     req.Version,
		Date:        req.Date,
		Description: req.Description,
		URL:         req.URL,
		FileName:    req.FileName,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, doc)
}

type updateDocumentRequest struct {
	EntityID    string     `json:"entity_id" binding:"required"`
	GroupID     string     `json:"group_id" binding:"required"`
	Title       *string    `json:"title"`
	Version     *string    `json:"version"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
	URL         *string    `json:"url"`
	FileName    *string    `json:"file_name"`
}

func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var req updateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "entity_id and group_id are required")
		return
	}

	doc, err := h.documents.UpdateDocument(c.Request.Context(), req.EntityID, req.GroupID, c.Param("id"), service.UpdateDocumentInput{
		Title:       req.Title,
		Version:     req.Version,
		Date:        req.Date,
		Description: req.Description,
		URL:         req.URL,
		FileName:    req.FileName,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, doc)
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	groupID := c.Query("group_id")
	if groupID == "" {
		badRequest(c, "group_id is required")
		return
	}

	if err := h.documents.DeleteDocument(c.Request.Context(), groupID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
