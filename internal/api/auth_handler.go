package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges credentials for a signed token and the user profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email and password are required")
		return
	}

	emp, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"token":    token,
		"employee": emp,
	})
}

// Me returns the decoded session for the current request.
func (h *AuthHandler) Me(c *gin.Context) {
	session := middleware.GetSession(c)
	if session == nil {
		badRequest(c, "no session")
		return
	}
	respondOK(c, session)
}
