package application_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/bugtrack-go/internal/application"
	"github.com/linskybing/bugtrack-go/internal/authz"
	"github.com/linskybing/bugtrack-go/internal/domain/project"
	"github.com/linskybing/bugtrack-go/internal/domain/user"
	"github.com/linskybing/bugtrack-go/internal/repository"
	"github.com/linskybing/bugtrack-go/internal/repository/mock"
	"github.com/linskybing/bugtrack-go/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminPrincipal  = authz.Principal{ID: 1, Role: user.RoleAdmin}
	memberPrincipal = authz.Principal{ID: 2, Role: user.RoleMember}
)

func setupProjectMocks(t *testing.T) (*application.ProjectService, *mock.MockProjectRepo, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockTicket := mock.NewMockTicketRepo(ctrl)

	repos := &repository.Repos{
		Project: mockProject,
		Ticket:  mockTicket,
	}

	return application.NewProjectService(repos), mockProject, mockTicket
}

func TestProjectServiceCreate(t *testing.T) {
	t.Run("admin creates project", func(t *testing.T) {
		svc, mockProject, _ := setupProjectMocks(t)

		mockProject.EXPECT().Create(gomock.Any()).Return(nil)

		desc := "track the alpha release"
		proj, err := svc.CreateProject(adminPrincipal, project.CreateProjectDTO{Name: "Alpha", Description: &desc})
		require.NoError(t, err)
		assert.Equal(t, "Alpha", proj.Name)
		assert.Equal(t, desc, proj.Description)
		assert.Equal(t, adminPrincipal.ID, proj.CreatedBy)
	})

	t.Run("member is forbidden before any store call", func(t *testing.T) {
		svc, _, _ := setupProjectMocks(t)

		_, err := svc.CreateProject(memberPrincipal, project.CreateProjectDTO{Name: "Alpha"})
		assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	})

	t.Run("blank name fails validation", func(t *testing.T) {
		svc, _, _ := setupProjectMocks(t)

		_, err := svc.CreateProject(adminPrincipal, project.CreateProjectDTO{Name: "   "})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}

func TestProjectServiceList(t *testing.T) {
	t.Run("ticket counts computed per project at read time", func(t *testing.T) {
		svc, mockProject, mockTicket := setupProjectMocks(t)

		mockProject.EXPECT().List().Return([]project.Project{
			{PID: 1, Name: "Alpha"},
			{PID: 2, Name: "Beta"},
		}, nil)
		mockTicket.EXPECT().CountByProjectID(uint(1)).Return(int64(3), nil)
		mockTicket.EXPECT().CountByProjectID(uint(2)).Return(int64(0), nil)

		projects, total, err := svc.ListProjects(memberPrincipal)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, int64(3), projects[0].TicketCount)
		assert.Equal(t, int64(0), projects[1].TicketCount)
	})

	t.Run("count failure surfaces", func(t *testing.T) {
		svc, mockProject, mockTicket := setupProjectMocks(t)

		mockProject.EXPECT().List().Return([]project.Project{{PID: 1, Name: "Alpha"}}, nil)
		mockTicket.EXPECT().CountByProjectID(uint(1)).Return(int64(0), errors.New("count failed"))

		_, _, err := svc.ListProjects(memberPrincipal)
		assert.Error(t, err)
	})
}

func TestProjectServiceDelete(t *testing.T) {
	t.Run("cascade removes tickets before the project", func(t *testing.T) {
		svc, mockProject, mockTicket := setupProjectMocks(t)

		mockProject.EXPECT().GetByID(uint(1)).Return(project.Project{PID: 1, Name: "Alpha"}, nil)
		gomock.InOrder(
			mockTicket.EXPECT().DeleteByProjectID(uint(1)).Return(nil),
			mockProject.EXPECT().Delete(uint(1)).Return(nil),
		)

		err := svc.DeleteProject(adminPrincipal, 1)
		assert.NoError(t, err)
	})

	t.Run("member is forbidden", func(t *testing.T) {
		svc, _, _ := setupProjectMocks(t)

		err := svc.DeleteProject(memberPrincipal, 1)
		assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	})

	t.Run("unknown project reports not found", func(t *testing.T) {
		svc, mockProject, _ := setupProjectMocks(t)

		mockProject.EXPECT().GetByID(uint(99)).Return(project.Project{}, errors.New("record not found"))

		err := svc.DeleteProject(adminPrincipal, 99)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("second delete of same id reports not found", func(t *testing.T) {
		svc, mockProject, mockTicket := setupProjectMocks(t)

		first := mockProject.EXPECT().GetByID(uint(1)).Return(project.Project{PID: 1}, nil)
		mockTicket.EXPECT().DeleteByProjectID(uint(1)).Return(nil)
		mockProject.EXPECT().Delete(uint(1)).Return(nil)
		mockProject.EXPECT().GetByID(uint(1)).Return(project.Project{}, errors.New("record not found")).After(first)

		require.NoError(t, svc.DeleteProject(adminPrincipal, 1))
		err := svc.DeleteProject(adminPrincipal, 1)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("ticket cleanup failure aborts project removal", func(t *testing.T) {
		svc, mockProject, mockTicket := setupProjectMocks(t)

		mockProject.EXPECT().GetByID(uint(1)).Return(project.Project{PID: 1}, nil)
		mockTicket.EXPECT().DeleteByProjectID(uint(1)).Return(errors.New("delete failed"))

		err := svc.DeleteProject(adminPrincipal, 1)
		assert.Error(t, err)
	})
}
