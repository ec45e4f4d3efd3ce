package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tracklite/task-tracker-api/internal/auth"
	apierrors "github.com/tracklite/task-tracker-api/internal/errors"
	"github.com/tracklite/task-tracker-api/internal/services"
)

// respondServiceError translates domain errors into HTTP responses. Every
// service error funnels through here so no domain error escapes unhandled.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &validationErr):
		apierrors.ValidationFailed(c, validationErr.Violations)
	case errors.Is(err, auth.ErrMissingEmployeeLink):
		apierrors.Forbidden(c, "Employee account is not linked to a profile")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrEmployeeNotFound):
		apierrors.NotFound(c, "Employee not found")
	default:
		apierrors.InternalError(c, err)
	}
}
