// Package rest exposes the HTTP API: Gin handlers parsing query and body
// parameters, calling usecases, and shaping the uniform response envelope.
package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/atelier/internal/entity"
)

// Envelope is the uniform response wrapper:
// {success, data, message?} on success, {success:false, error} on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Error: message})
}

// respondDomainError maps domain sentinels onto HTTP statuses: invalid
// input to 400, missing entities to 404, anything else to 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidUserID),
		errors.Is(err, entity.ErrInvalidCourseID),
		errors.Is(err, entity.ErrInvalidItemType),
		errors.Is(err, entity.ErrInvalidAction),
		errors.Is(err, entity.ErrInvalidProgress),
		errors.Is(err, entity.ErrInvalidStatus),
		errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, entity.ErrInvalidScore):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrCourseNotFound),
		errors.Is(err, entity.ErrKnowledgeNotFound),
		errors.Is(err, entity.ErrCaseNotFound),
		errors.Is(err, entity.ErrPromptNotFound),
		errors.Is(err, entity.ErrWorkflowNotFound),
		errors.Is(err, entity.ErrResourceNotFound),
		errors.Is(err, entity.ErrAssignmentNotFound),
		errors.Is(err, entity.ErrSubmissionNotFound),
		errors.Is(err, entity.ErrFavoriteNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
