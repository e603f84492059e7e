package ticket

import (
	"time"

	"github.com/linskybing/bugtrack-go/internal/domain/project"
	"github.com/linskybing/bugtrack-go/internal/domain/user"
)

type CreateTicketDTO struct {
	Title       string    `json:"title" binding:"required"`
	Description *string   `json:"description,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	ProjectID   uint      `json:"project" binding:"required"`
	AssignedTo  *uint     `json:"assignedTo,omitempty"`
}

// UpdateTicketDTO is the patch allow-list. CreatedBy and ProjectID are
// deliberately absent; a ticket cannot change creator or move between
// projects.
type UpdateTicketDTO struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	AssignedTo  *uint     `json:"assignedTo,omitempty"`
}

// Filter matches tickets on every provided field (AND semantics). Zero
// values match everything.
type Filter struct {
	ProjectID uint
	Status    Status
	Priority  Priority
}

// View is a ticket with its references resolved to display-relevant fields.
type View struct {
	TID         uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Priority    Priority    `json:"priority"`
	Status      Status      `json:"status"`
	Project     project.Ref `json:"project"`
	AssignedTo  *user.Ref   `json:"assignedTo,omitempty"`
	CreatedBy   user.Ref    `json:"createdBy"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// NewView resolves the preloaded associations of t. Missing associations
// degrade to id-only references.
func NewView(t Ticket) View {
	v := View{
		TID:         t.TID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		Project:     project.Ref{PID: t.ProjectID},
		CreatedBy:   user.Ref{UID: t.CreatedBy},
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Project != nil {
		v.Project = t.Project.Ref()
	}
	if t.Creator != nil {
		v.CreatedBy = t.Creator.Ref()
	}
	if t.Assignee != nil {
		ref := t.Assignee.Ref()
		v.AssignedTo = &ref
	} else if t.AssignedTo != nil {
		v.AssignedTo = &user.Ref{UID: *t.AssignedTo}
	}
	return v
}
