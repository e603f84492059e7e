package ticket

import (
	"time"

	"github.com/linskybing/bugtrack-go/internal/domain/project"
	"github.com/linskybing/bugtrack-go/internal/domain/user"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusClosed     Status = "Closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Ticket references exactly one project. ProjectID and CreatedBy are set at
// creation and never patched afterwards.
type Ticket struct {
	TID         uint      `gorm:"primaryKey;column:t_id;autoIncrement" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Priority    Priority  `gorm:"size:20;default:'Medium';not null" json:"priority"`
	Status      Status    `gorm:"size:20;default:'Open';not null" json:"status"`
	ProjectID   uint      `gorm:"column:project_id;not null" json:"projectId"`
	AssignedTo  *uint     `gorm:"column:assigned_to" json:"assignedTo,omitempty"`
	CreatedBy   uint      `gorm:"column:created_by;not null" json:"createdBy"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"updatedAt"`

	Project  *project.Project `gorm:"foreignKey:ProjectID;references:PID" json:"-"`
	Assignee *user.User       `gorm:"foreignKey:AssignedTo;references:UID" json:"-"`
	Creator  *user.User       `gorm:"foreignKey:CreatedBy;references:UID" json:"-"`
}

// TableName specifies the database table name
func (Ticket) TableName() string {
	return "ticket_list"
}
