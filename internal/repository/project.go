package repository

import (
	"github.com/linskybing/bugtrack-go/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(p *project.Project) error
	GetByID(id uint) (project.Project, error)
	List() ([]project.Project, error)
	Delete(id uint) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) Create(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, id).Error
	return p, err
}

// List returns projects in insertion order.
func (r *DBProjectRepo) List() ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Order("p_id").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) Delete(id uint) error {
	return r.db.Delete(&project.Project{}, id).Error
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}
