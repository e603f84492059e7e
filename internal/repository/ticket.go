package repository

import (
	"github.com/linskybing/bugtrack-go/internal/domain/ticket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TicketRepo interface {
	Create(t *ticket.Ticket) error
	GetByID(id uint) (ticket.Ticket, error)
	List(f ticket.Filter) ([]ticket.Ticket, error)
	Update(t *ticket.Ticket) error
	Delete(id uint) error
	DeleteByProjectID(projectID uint) error
	CountByProjectID(projectID uint) (int64, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) Create(t *ticket.Ticket) error {
	return r.db.Create(t).Error
}

func (r *DBTicketRepo) GetByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Preload("Project").Preload("Assignee").Preload("Creator").First(&t, id).Error
	return t, err
}

// List applies every provided filter field (AND semantics) and preloads the
// associations the listing view resolves.
func (r *DBTicketRepo) List(f ticket.Filter) ([]ticket.Ticket, error) {
	q := r.db.Preload("Project").Preload("Assignee").Preload("Creator")
	if f.ProjectID != 0 {
		q = q.Where("project_id = ?", f.ProjectID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	var tickets []ticket.Ticket
	err := q.Order("t_id").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) Update(t *ticket.Ticket) error {
	return r.db.Omit(clause.Associations).Save(t).Error
}

func (r *DBTicketRepo) Delete(id uint) error {
	return r.db.Delete(&ticket.Ticket{}, id).Error
}

func (r *DBTicketRepo) DeleteByProjectID(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&ticket.Ticket{}).Error
}

func (r *DBTicketRepo) CountByProjectID(projectID uint) (int64, error) {
	var n int64
	err := r.db.Model(&ticket.Ticket{}).Where("project_id = ?", projectID).Count(&n).Error
	return n, err
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{db: tx}
}
