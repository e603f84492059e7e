package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrack-go/internal/application"
	"github.com/linskybing/bugtrack-go/pkg/apperrors"
	"github.com/linskybing/bugtrack-go/pkg/response"
)

type Handlers struct {
	User    *UserHandler
	Project *ProjectHandler
	Ticket  *TicketHandler
	Router  *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		User:    NewUserHandler(svc.User),
		Project: NewProjectHandler(svc.Project),
		Ticket:  NewTicketHandler(svc.Ticket),
		Router:  router,
	}
}

// writeError maps the service error taxonomy to HTTP status codes. Internal
// failures are surfaced generically, never with store details.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Message: "Access denied"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Message: err.Error()})
	case errors.Is(err, application.ErrEmailTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Message: err.Error()})
	case errors.Is(err, application.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Invalid email or password"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Server error"})
	}
}
