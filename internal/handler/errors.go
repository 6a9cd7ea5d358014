package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/quizdeck/quiz-backend/internal/response"
	"github.com/quizdeck/quiz-backend/internal/service"
)

// failService maps service-level errors onto API error codes.
func failService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMinOptions):
		response.Fail(c, response.ErrMinOptions)
	case errors.Is(err, service.ErrMaxOptions):
		response.Fail(c, response.ErrMaxOptions)
	case errors.Is(err, service.ErrMultipleValid):
		response.Fail(c, response.ErrMultipleValid)
	case errors.Is(err, service.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		response.Fail(c, response.ErrObjectNotFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, response.ErrInvalidCredentials)
	default:
		response.Fail(c, response.ErrInternal)
	}
}
