package application

import (
	"fmt"
	"strings"

	"github.com/linskybing/bugtrack-go/internal/authz"
	"github.com/linskybing/bugtrack-go/internal/domain/project"
	"github.com/linskybing/bugtrack-go/internal/repository"
	"github.com/linskybing/bugtrack-go/pkg/apperrors"
)

var (
	ErrProjectNotFound     = fmt.Errorf("project %w", apperrors.ErrNotFound)
	ErrProjectNameRequired = fmt.Errorf("%w: project name is required", apperrors.ErrValidation)
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

func (s *ProjectService) CreateProject(p authz.Principal, input project.CreateProjectDTO) (*project.Project, error) {
	if err := authz.Authorize(p, authz.CreateProject, nil); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrProjectNameRequired
	}

	proj := &project.Project{
		Name:      input.Name,
		CreatedBy: p.ID,
	}
	if input.Description != nil {
		proj.Description = *input.Description
	}
	return proj, s.Repos.Project.Create(proj)
}

// ListProjects returns every project augmented with its current ticket
// count. The count is queried from the ticket store per project on every
// call; nothing is cached.
func (s *ProjectService) ListProjects(p authz.Principal) ([]project.WithTicketCount, int64, error) {
	if err := authz.Authorize(p, authz.ListProjects, nil); err != nil {
		return nil, 0, err
	}

	projects, err := s.Repos.Project.List()
	if err != nil {
		return nil, 0, err
	}

	out := make([]project.WithTicketCount, 0, len(projects))
	for _, proj := range projects {
		n, err := s.Repos.Ticket.CountByProjectID(proj.PID)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, project.WithTicketCount{Project: proj, TicketCount: n})
	}
	return out, int64(len(out)), nil
}

// DeleteProject removes every ticket referencing the project, then the
// project itself, inside one transaction. No reader can observe the project
// gone while its tickets remain listable. A second delete of the same id
// reports not found.
func (s *ProjectService) DeleteProject(p authz.Principal, id uint) error {
	if err := authz.Authorize(p, authz.DeleteProject, nil); err != nil {
		return err
	}
	if _, err := s.Repos.Project.GetByID(id); err != nil {
		return ErrProjectNotFound
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Ticket.DeleteByProjectID(id); err != nil {
			return err
		}
		return tx.Project.Delete(id)
	})
}
