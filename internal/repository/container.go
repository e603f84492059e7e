package repository

import "gorm.io/gorm"

type Repos struct {
	User    UserRepo
	Project ProjectRepo
	Ticket  TicketRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:    NewUserRepo(db),
		Project: NewProjectRepo(db),
		Ticket:  NewTicketRepo(db),
		db:      db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:    r.User.WithTx(tx),
		Project: r.Project.WithTx(tx),
		Ticket:  r.Ticket.WithTx(tx),
		db:      tx,
	}
}

// ExecTx runs fn with every repository bound to a single transaction. A
// Repos assembled without a database handle (unit tests with mocks) runs fn
// against itself.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
