package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
)

// respondError maps domain errors to HTTP statuses with a uniform body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var authErr *models.AuthenticationError
	switch {
	case models.IsValidation(err):
		status = http.StatusBadRequest
		message = err.Error()
	case models.IsNotFound(err):
		status = http.StatusNotFound
		message = err.Error()
	case models.IsInvalidTransition(err):
		status = http.StatusConflict
		message = err.Error()
	case errors.As(err, &authErr):
		status = http.StatusUnauthorized
		message = err.Error()
	}

	c.JSON(status, gin.H{"success": false, "error": message})
}

func respondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payload})
}

func respondCreated(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": payload})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}
