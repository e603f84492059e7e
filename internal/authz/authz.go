// Package authz is the single place permission rules live. Services consult
// Authorize before every mutation; handlers never re-derive rules. Each rule
// is a pure predicate over the principal and, for ticket updates, the target
// record's current state.
package authz

import (
	"fmt"

	"github.com/linskybing/bugtrack-go/internal/domain/user"
	"github.com/linskybing/bugtrack-go/pkg/apperrors"
)

type Action string

const (
	CreateProject Action = "project:create"
	ListProjects  Action = "project:list"
	DeleteProject Action = "project:delete"
	CreateTicket  Action = "ticket:create"
	ReadTickets   Action = "ticket:read"
	UpdateTicket  Action = "ticket:update"
	AssignTicket  Action = "ticket:assign"
	DeleteTicket  Action = "ticket:delete"
)

// Principal is the authenticated actor issuing a request.
type Principal struct {
	ID   uint
	Role user.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}

// TicketState carries the fields of the target ticket a rule may inspect.
// Rules evaluate the record's state as stored, not the incoming patch.
type TicketState struct {
	CreatedBy  uint
	AssignedTo *uint
}

type rule func(p Principal, t *TicketState) bool

func adminOnly(p Principal, _ *TicketState) bool {
	return p.IsAdmin()
}

func anyAuthenticated(Principal, *TicketState) bool {
	return true
}

func creatorAssigneeOrAdmin(p Principal, t *TicketState) bool {
	if p.IsAdmin() {
		return true
	}
	if t == nil {
		return false
	}
	if t.CreatedBy == p.ID {
		return true
	}
	return t.AssignedTo != nil && *t.AssignedTo == p.ID
}

var rules = map[Action]rule{
	CreateProject: adminOnly,
	ListProjects:  anyAuthenticated,
	DeleteProject: adminOnly,
	CreateTicket:  anyAuthenticated,
	ReadTickets:   anyAuthenticated,
	UpdateTicket:  creatorAssigneeOrAdmin,
	AssignTicket:  adminOnly,
	DeleteTicket:  adminOnly,
}

// Authorize returns nil when the principal may perform action against the
// given ticket state (nil for actions that target no ticket). Unknown
// actions deny. The returned error wraps apperrors.ErrForbidden.
func Authorize(p Principal, action Action, t *TicketState) error {
	r, ok := rules[action]
	if !ok || !r(p, t) {
		return fmt.Errorf("%w: %s", apperrors.ErrForbidden, action)
	}
	return nil
}
