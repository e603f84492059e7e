package application

import "github.com/linskybing/bugtrack-go/internal/repository"

type Services struct {
	User    *UserService
	Project *ProjectService
	Ticket  *TicketService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		User:    NewUserService(repos),
		Project: NewProjectService(repos),
		Ticket:  NewTicketService(repos),
	}
}
