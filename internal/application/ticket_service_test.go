package application_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/bugtrack-go/internal/application"
	"github.com/linskybing/bugtrack-go/internal/authz"
	"github.com/linskybing/bugtrack-go/internal/domain/project"
	"github.com/linskybing/bugtrack-go/internal/domain/ticket"
	"github.com/linskybing/bugtrack-go/internal/domain/user"
	"github.com/linskybing/bugtrack-go/internal/repository"
	"github.com/linskybing/bugtrack-go/internal/repository/mock"
	"github.com/linskybing/bugtrack-go/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTicketMocks(t *testing.T) (*application.TicketService, *mock.MockTicketRepo, *mock.MockProjectRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock.NewMockTicketRepo(ctrl)
	mockProject := mock.NewMockProjectRepo(ctrl)

	repos := &repository.Repos{
		Ticket:  mockTicket,
		Project: mockProject,
	}

	return application.NewTicketService(repos), mockTicket, mockProject
}

func uintPtr(v uint) *uint { return &v }

func TestTicketServiceCreate(t *testing.T) {
	t.Run("defaults to Medium priority and Open status", func(t *testing.T) {
		svc, mockTicket, mockProject := setupTicketMocks(t)

		mockProject.EXPECT().GetByID(uint(1)).Return(project.Project{PID: 1, Name: "Alpha"}, nil)
		mockTicket.EXPECT().Create(gomock.Any()).Return(nil)

		created, err := svc.CreateTicket(memberPrincipal, ticket.CreateTicketDTO{Title: "Bug1", ProjectID: 1})
		require.NoError(t, err)
		assert.Equal(t, ticket.PriorityMedium, created.Priority)
		assert.Equal(t, ticket.StatusOpen, created.Status)
		assert.Equal(t, memberPrincipal.ID, created.CreatedBy)
	})

	t.Run("explicit priority kept", func(t *testing.T) {
		svc, mockTicket, mockProject := setupTicketMocks(t)

		mockProject.EXPECT().GetByID(uint(1)).Return(project.Project{PID: 1}, nil)
		mockTicket.EXPECT().Create(gomock.Any()).Return(nil)

		prio := ticket.PriorityHigh
		created, err := svc.CreateTicket(memberPrincipal, ticket.CreateTicketDTO{Title: "Bug1", ProjectID: 1, Priority: &prio})
		require.NoError(t, err)
		assert.Equal(t, ticket.PriorityHigh, created.Priority)
	})

	t.Run("missing title fails validation", func(t *testing.T) {
		svc, _, _ := setupTicketMocks(t)

		_, err := svc.CreateTicket(memberPrincipal, ticket.CreateTicketDTO{ProjectID: 1})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("missing project fails validation", func(t *testing.T) {
		svc, _, _ := setupTicketMocks(t)

		_, err := svc.CreateTicket(memberPrincipal, ticket.CreateTicketDTO{Title: "Bug1"})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("nonexistent project reports not found", func(t *testing.T) {
		svc, _, mockProject := setupTicketMocks(t)

		mockProject.EXPECT().GetByID(uint(9)).Return(project.Project{}, errors.New("record not found"))

		_, err := svc.CreateTicket(memberPrincipal, ticket.CreateTicketDTO{Title: "Bug1", ProjectID: 9})
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("invalid priority fails validation", func(t *testing.T) {
		svc, _, mockProject := setupTicketMocks(t)

		mockProject.EXPECT().GetByID(uint(1)).Return(project.Project{PID: 1}, nil)

		prio := ticket.Priority("Urgent")
		_, err := svc.CreateTicket(memberPrincipal, ticket.CreateTicketDTO{Title: "Bug1", ProjectID: 1, Priority: &prio})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}

func TestTicketServiceList(t *testing.T) {
	t.Run("references resolved to display fields", func(t *testing.T) {
		svc, mockTicket, _ := setupTicketMocks(t)

		stored := ticket.Ticket{
			TID:       1,
			Title:     "Bug1",
			Priority:  ticket.PriorityMedium,
			Status:    ticket.StatusOpen,
			ProjectID: 1,
			CreatedBy: 2,
			Project:   &project.Project{PID: 1, Name: "Alpha"},
			Creator:   &user.User{UID: 2, Name: "Mel", Email: "mel@example.com"},
		}
		filter := ticket.Filter{ProjectID: 1}
		mockTicket.EXPECT().List(filter).Return([]ticket.Ticket{stored}, nil)

		views, total, err := svc.ListTickets(memberPrincipal, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Alpha", views[0].Project.Name)
		assert.Equal(t, "mel@example.com", views[0].CreatedBy.Email)
		assert.Nil(t, views[0].AssignedTo)
	})

	t.Run("empty result has zero total", func(t *testing.T) {
		svc, mockTicket, _ := setupTicketMocks(t)

		mockTicket.EXPECT().List(ticket.Filter{ProjectID: 7}).Return(nil, nil)

		views, total, err := svc.ListTickets(memberPrincipal, ticket.Filter{ProjectID: 7})
		require.NoError(t, err)
		assert.Empty(t, views)
		assert.Zero(t, total)
	})
}

func TestTicketServiceUpdate(t *testing.T) {
	stored := func() ticket.Ticket {
		return ticket.Ticket{
			TID:        1,
			Title:      "Bug1",
			Priority:   ticket.PriorityMedium,
			Status:     ticket.StatusOpen,
			ProjectID:  1,
			CreatedBy:  2,
			AssignedTo: uintPtr(3),
		}
	}

	t.Run("creator updates status", func(t *testing.T) {
		svc, mockTicket, _ := setupTicketMocks(t)

		mockTicket.EXPECT().GetByID(uint(1)).Return(stored(), nil)
		mockTicket.EXPECT().Update(gomock.Any()).Return(nil)

		status := ticket.StatusClosed
		updated, err := svc.UpdateTicket(memberPrincipal, 1, ticket.UpdateTicketDTO{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, ticket.StatusClosed, updated.Status)
	})

	t.Run("assignee updates priority", func(t *testing.T) {
		svc, mockTicket, _ := setupTicketMocks(t)

		assignee := authz.Principal{ID: 3, Role: user.RoleMember}
		mockTicket.EXPECT().GetByID(uint(1)).Return(stored(), nil)
		mockTicket.EXPECT().Update(gomock.Any()).Return(nil)

		prio := ticket.PriorityHigh
		updated, err := svc.UpdateTicket(assignee, 1, ticket.UpdateTicketDTO{Priority: &prio})
		require.NoError(t, err)
		assert.Equal(t, ticket.PriorityHigh, updated.Priority)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		svc, mockTicket, _ := setupTicketMocks(t)

		stranger := authz.Principal{ID: 9, Role: user.RoleMember}
		mockTicket.EXPECT().GetByID(uint(1)).Return(stored(), nil)

		title := "hijack"
		_, err := svc.UpdateTicket(stranger, 1, ticket.UpdateTicketDTO{Title: &title})
		assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	})

	t.Run("creator cannot change assignment", func(t *testing.T) {
		svc, mockTicket, _ := setupTicketMocks(t)

		mockTicket.EXPECT().GetByID(uint(1)).Return(stored(), nil)

		_, err := svc.UpdateTicket(memberPrincipal, 1, ticket.UpdateTicketDTO{AssignedTo: uintPtr(5)})
		assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	})

	t.Run("admin changes assignment", func(t *testing.T) {
		svc, mockTicket, _ := setupTicketMocks(t)

		mockTicket.EXPECT().GetByID(uint(1)).Return(stored(), nil)
		mockTicket.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := svc.UpdateTicket(adminPrincipal, 1, ticket.UpdateTicketDTO{AssignedTo: uintPtr(5)})
		require.NoError(t, err)
		require.NotNil(t, updated.AssignedTo)
		assert.Equal(t, uint(5), *updated.AssignedTo)
	})

	t.Run("unknown ticket reports not found", func(t *testing.T) {
		svc, mockTicket, _ := setupTicketMocks(t)

		mockTicket.EXPECT().GetByID(uint(99)).Return(ticket.Ticket{}, errors.New("record not found"))

		title := "x"
		_, err := svc.UpdateTicket(adminPrincipal, 99, ticket.UpdateTicketDTO{Title: &title})
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("invalid status fails validation", func(t *testing.T) {
		svc, mockTicket, _ := setupTicketMocks(t)

		mockTicket.EXPECT().GetByID(uint(1)).Return(stored(), nil)

		status := ticket.Status("Done")
		_, err := svc.UpdateTicket(memberPrincipal, 1, ticket.UpdateTicketDTO{Status: &status})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}

func TestTicketServiceDelete(t *testing.T) {
	t.Run("member forbidden before lookup", func(t *testing.T) {
		svc, _, _ := setupTicketMocks(t)

		err := svc.DeleteTicket(memberPrincipal, 1)
		assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	})

	t.Run("admin deletes", func(t *testing.T) {
		svc, mockTicket, _ := setupTicketMocks(t)

		mockTicket.EXPECT().GetByID(uint(1)).Return(ticket.Ticket{TID: 1}, nil)
		mockTicket.EXPECT().Delete(uint(1)).Return(nil)

		assert.NoError(t, svc.DeleteTicket(adminPrincipal, 1))
	})

	t.Run("unknown ticket reports not found", func(t *testing.T) {
		svc, mockTicket, _ := setupTicketMocks(t)

		mockTicket.EXPECT().GetByID(uint(99)).Return(ticket.Ticket{}, errors.New("record not found"))

		err := svc.DeleteTicket(adminPrincipal, 99)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}
