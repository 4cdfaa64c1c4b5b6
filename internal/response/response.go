package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/callygym/service-gym/internal/domain"
)

// Success writes a 200 with the given body.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the given body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest writes a 400 with a client-facing message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// Error maps a domain error to its HTTP status. Only the public-safe
// message travels to the caller; causes stay in the server logs.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.Is(err, domain.ErrValidation), domain.Is(err, domain.ErrSignature):
		status = http.StatusBadRequest
	case domain.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}

	message := "internal server error"
	var de *domain.DomainError
	if errors.As(err, &de) {
		message = de.Message
	}

	c.JSON(status, gin.H{"success": false, "message": message})
}
