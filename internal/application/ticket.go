package application

import (
	"fmt"
	"strings"

	"github.com/linskybing/bugtrack-go/internal/authz"
	"github.com/linskybing/bugtrack-go/internal/domain/ticket"
	"github.com/linskybing/bugtrack-go/internal/repository"
	"github.com/linskybing/bugtrack-go/pkg/apperrors"
)

var (
	ErrTicketNotFound       = fmt.Errorf("ticket %w", apperrors.ErrNotFound)
	ErrTicketTitleRequired  = fmt.Errorf("%w: ticket title is required", apperrors.ErrValidation)
	ErrTicketProjectMissing = fmt.Errorf("%w: ticket project is required", apperrors.ErrValidation)
	ErrInvalidPriority      = fmt.Errorf("%w: priority must be Low, Medium or High", apperrors.ErrValidation)
	ErrInvalidStatus        = fmt.Errorf("%w: status must be Open, In Progress or Closed", apperrors.ErrValidation)
)

type TicketService struct {
	Repos *repository.Repos
}

func NewTicketService(repos *repository.Repos) *TicketService {
	return &TicketService{Repos: repos}
}

// CreateTicket persists a ticket against an existing project. Priority
// defaults to Medium when omitted or empty, status always starts Open.
func (s *TicketService) CreateTicket(p authz.Principal, input ticket.CreateTicketDTO) (*ticket.Ticket, error) {
	if err := authz.Authorize(p, authz.CreateTicket, nil); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTicketTitleRequired
	}
	if input.ProjectID == 0 {
		return nil, ErrTicketProjectMissing
	}
	if _, err := s.Repos.Project.GetByID(input.ProjectID); err != nil {
		return nil, ErrProjectNotFound
	}

	t := &ticket.Ticket{
		Title:      input.Title,
		Priority:   ticket.PriorityMedium,
		Status:     ticket.StatusOpen,
		ProjectID:  input.ProjectID,
		AssignedTo: input.AssignedTo,
		CreatedBy:  p.ID,
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Priority != nil && *input.Priority != "" {
		if !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		t.Priority = *input.Priority
	}

	return t, s.Repos.Ticket.Create(t)
}

// ListTickets returns the tickets matching every provided filter field, with
// references resolved for display, and the total ignoring pagination (none
// exists).
func (s *TicketService) ListTickets(p authz.Principal, f ticket.Filter) ([]ticket.View, int64, error) {
	if err := authz.Authorize(p, authz.ReadTickets, nil); err != nil {
		return nil, 0, err
	}

	tickets, err := s.Repos.Ticket.List(f)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ticket.View, 0, len(tickets))
	for _, t := range tickets {
		views = append(views, ticket.NewView(t))
	}
	return views, int64(len(views)), nil
}

// UpdateTicket applies the allow-list patch after evaluating the permission
// predicate against the ticket's current creator and assignee. A patch that
// touches assignedTo additionally requires the admin role, regardless of the
// creator/assignee allowance for the other fields.
func (s *TicketService) UpdateTicket(p authz.Principal, id uint, patch ticket.UpdateTicketDTO) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetByID(id)
	if err != nil {
		return nil, ErrTicketNotFound
	}

	state := &authz.TicketState{CreatedBy: t.CreatedBy, AssignedTo: t.AssignedTo}
	if err := authz.Authorize(p, authz.UpdateTicket, state); err != nil {
		return nil, err
	}
	if patch.AssignedTo != nil {
		if err := authz.Authorize(p, authz.AssignTicket, state); err != nil {
			return nil, err
		}
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, ErrTicketTitleRequired
		}
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		t.Status = *patch.Status
	}
	if patch.AssignedTo != nil {
		t.AssignedTo = patch.AssignedTo
	}

	if err := s.Repos.Ticket.Update(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TicketService) DeleteTicket(p authz.Principal, id uint) error {
	if err := authz.Authorize(p, authz.DeleteTicket, nil); err != nil {
		return err
	}
	if _, err := s.Repos.Ticket.GetByID(id); err != nil {
		return ErrTicketNotFound
	}
	return s.Repos.Ticket.Delete(id)
}
