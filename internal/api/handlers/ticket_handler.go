package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrack-go/internal/application"
	"github.com/linskybing/bugtrack-go/internal/domain/ticket"
	"github.com/linskybing/bugtrack-go/pkg/response"
	"github.com/linskybing/bugtrack-go/pkg/utils"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

type ticketListResponse struct {
	Tickets []ticket.View `json:"tickets"`
	Total   int64         `json:"total"`
}

// CreateTicket godoc
// @Summary Create ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body ticket.CreateTicketDTO true "Ticket info"
// @Success 201 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse "Title and project are required"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var input ticket.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Title and project are required"})
		return
	}

	principal, err := utils.PrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	t, err := h.svc.CreateTicket(principal, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

// GetTickets godoc
// @Summary List tickets with optional filters
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param projectId query int false "Filter by project"
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Success 200 {object} ticketListResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets [get]
func (h *TicketHandler) GetTickets(c *gin.Context) {
	principal, err := utils.PrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var query struct {
		ProjectID uint   `form:"projectId"`
		Status    string `form:"status"`
		Priority  string `form:"priority"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid filter"})
		return
	}

	filter := ticket.Filter{
		ProjectID: query.ProjectID,
		Status:    ticket.Status(query.Status),
		Priority:  ticket.Priority(query.Priority),
	}

	tickets, total, err := h.svc.ListTickets(principal, filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticketListResponse{Tickets: tickets, Total: total})
}

// UpdateTicket godoc
// @Summary Update ticket (creator, assignee or admin; assignment admin only)
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.UpdateTicketDTO true "Fields to update"
// @Success 200 {object} ticket.Ticket
// @Failure 403 {object} response.ErrorResponse "Access denied"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}

	var patch ticket.UpdateTicketDTO
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input"})
		return
	}

	principal, err := utils.PrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	t, err := h.svc.UpdateTicket(principal, id, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

// DeleteTicket godoc
// @Summary Delete ticket (admin only)
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Access denied"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}

	principal, err := utils.PrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	if err := h.svc.DeleteTicket(principal, id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Ticket deleted successfully"})
}
