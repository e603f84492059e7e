package authz_test

import (
	"errors"
	"testing"

	"github.com/linskybing/bugtrack-go/internal/authz"
	"github.com/linskybing/bugtrack-go/internal/domain/user"
	"github.com/linskybing/bugtrack-go/pkg/apperrors"
	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestAuthorize(t *testing.T) {
	admin := authz.Principal{ID: 1, Role: user.RoleAdmin}
	member := authz.Principal{ID: 2, Role: user.RoleMember}
	other := authz.Principal{ID: 3, Role: user.RoleMember}

	createdByMember := &authz.TicketState{CreatedBy: member.ID}
	assignedToOther := &authz.TicketState{CreatedBy: 99, AssignedTo: uintPtr(other.ID)}
	unrelated := &authz.TicketState{CreatedBy: 99, AssignedTo: uintPtr(98)}

	tests := []struct {
		name      string
		principal authz.Principal
		action    authz.Action
		ticket    *authz.TicketState
		allowed   bool
	}{
		{"admin creates project", admin, authz.CreateProject, nil, true},
		{"member cannot create project", member, authz.CreateProject, nil, false},
		{"admin deletes project", admin, authz.DeleteProject, nil, true},
		{"member cannot delete project", member, authz.DeleteProject, nil, false},
		{"member lists projects", member, authz.ListProjects, nil, true},
		{"member creates ticket", member, authz.CreateTicket, nil, true},
		{"member reads tickets", member, authz.ReadTickets, nil, true},
		{"creator updates own ticket", member, authz.UpdateTicket, createdByMember, true},
		{"assignee updates assigned ticket", other, authz.UpdateTicket, assignedToOther, true},
		{"stranger cannot update ticket", other, authz.UpdateTicket, createdByMember, false},
		{"unrelated member cannot update", member, authz.UpdateTicket, unrelated, false},
		{"admin updates any ticket", admin, authz.UpdateTicket, unrelated, true},
		{"update with no ticket state denies non-admin", member, authz.UpdateTicket, nil, false},
		{"creator cannot assign", member, authz.AssignTicket, createdByMember, false},
		{"assignee cannot assign", other, authz.AssignTicket, assignedToOther, false},
		{"admin assigns", admin, authz.AssignTicket, unrelated, true},
		{"member cannot delete ticket", member, authz.DeleteTicket, createdByMember, false},
		{"admin deletes ticket", admin, authz.DeleteTicket, nil, true},
		{"unknown action denies admin", admin, authz.Action("ticket:purge"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authz.Authorize(tt.principal, tt.action, tt.ticket)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrForbidden))
			}
		})
	}
}
