package policy

import (
	"testing"

	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
	"github.com/stretchr/testify/assert"
)

var (
	client   = model.Identity{UserID: 1, Role: constant.RoleClient}
	other    = model.Identity{UserID: 2, Role: constant.RoleClient}
	mechanic = model.Identity{UserID: 10, Role: constant.RoleMechanic}
	rival    = model.Identity{UserID: 11, Role: constant.RoleMechanic}
	admin    = model.Identity{UserID: 99, Role: constant.RoleAdmin}
)

func mechanicID(id uint64) *uint64 { return &id }

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name   string
		id     model.Identity
		action Action
		want   Result
	}{
		{"client creates", client, ActionCreateRequest, Result{Decision: Allow}},
		{"client cancels", client, ActionCancelRequest, Result{Decision: Allow}},
		{"client cannot accept", client, ActionAcceptRequest, Result{Decision: Deny, Reason: ReasonRole}},
		{"client cannot block", client, ActionBlockUser, Result{Decision: Deny, Reason: ReasonRole}},
		{"mechanic accepts", mechanic, ActionAcceptRequest, Result{Decision: Allow}},
		{"mechanic completes", mechanic, ActionCompleteRequest, Result{Decision: Allow}},
		{"mechanic sets availability", mechanic, ActionUpdateAvailability, Result{Decision: Allow}},
		{"mechanic cannot create", mechanic, ActionCreateRequest, Result{Decision: Deny, Reason: ReasonRole}},
		{"mechanic cannot cancel", mechanic, ActionCancelRequest, Result{Decision: Deny, Reason: ReasonRole}},
		{"admin blocks", admin, ActionBlockUser, Result{Decision: Allow}},
		{"admin stats", admin, ActionViewStats, Result{Decision: Allow}},
		{"admin list all requests", admin, ActionListAllRequests, Result{Decision: Allow}},
		{"mechanic list all requests", mechanic, ActionListAllRequests, Result{Decision: Deny, Reason: ReasonRole}},
		{"admin views requests", admin, ActionViewRequest, Result{Decision: Allow}},
		{"admin cannot cancel", admin, ActionCancelRequest, Result{Decision: Deny, Reason: ReasonRole}},
		{"admin cannot complete", admin, ActionCompleteRequest, Result{Decision: Deny, Reason: ReasonRole}},
		{"unknown role", model.Identity{UserID: 5}, ActionListRequests, Result{Decision: Deny, Reason: ReasonRole}},
		{"blocked before role", model.Identity{UserID: 1, Role: constant.RoleClient, IsBlocked: true}, ActionCreateRequest, Result{Decision: Deny, Reason: ReasonBlocked}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.id, tt.action))
		})
	}
}

func TestRequestFilter(t *testing.T) {
	assert.Equal(t, model.RequestFilter{ClientID: 1}, RequestFilter(client))
	assert.Equal(t, model.RequestFilter{VisibleToMechanicID: 10}, RequestFilter(mechanic))
	assert.Equal(t, model.RequestFilter{}, RequestFilter(admin))
}

func TestVisible(t *testing.T) {
	requests := []*model.RequestEntity{
		{ID: 1, ClientID: 1, Status: constant.RequestStatusPending},
		{ID: 2, ClientID: 2, Status: constant.RequestStatusPending},
		{ID: 3, ClientID: 1, Status: constant.RequestStatusAccepted, MechanicID: mechanicID(10)},
		{ID: 4, ClientID: 2, Status: constant.RequestStatusCompleted, MechanicID: mechanicID(10)},
		{ID: 5, ClientID: 2, Status: constant.RequestStatusAccepted, MechanicID: mechanicID(11)},
		{ID: 6, ClientID: 1, Status: constant.RequestStatusCancelled},
	}

	visible := func(id model.Identity) []uint64 {
		out := []uint64{}
		for _, r := range requests {
			if Visible(id, r) {
				out = append(out, r.ID)
			}
		}
		return out
	}

	assert.Equal(t, []uint64{1, 3, 6}, visible(client))
	assert.Equal(t, []uint64{2, 4, 5}, visible(other))
	assert.Equal(t, []uint64{1, 2, 3, 4}, visible(mechanic))
	assert.Equal(t, []uint64{1, 2, 5}, visible(rival))
	assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6}, visible(admin))
}

func TestObjectChecks(t *testing.T) {
	accepted := &model.RequestEntity{ID: 3, ClientID: 1, Status: constant.RequestStatusAccepted, MechanicID: mechanicID(10)}

	tests := []struct {
		name  string
		check func(model.Identity, *model.RequestEntity) Result
		id    model.Identity
		want  Result
	}{
		{"owner views", CanView, client, Result{Decision: Allow}},
		{"other client cannot view", CanView, other, Result{Decision: Deny, Reason: ReasonNotOwner}},
		{"assigned mechanic views", CanView, mechanic, Result{Decision: Allow}},
		{"rival mechanic cannot view", CanView, rival, Result{Decision: Deny, Reason: ReasonNotVisible}},
		{"admin views", CanView, admin, Result{Decision: Allow}},
		{"owner cancels", CanCancel, client, Result{Decision: Allow}},
		{"other client cannot cancel", CanCancel, other, Result{Decision: Deny, Reason: ReasonNotOwner}},
		{"admin cannot cancel", CanCancel, admin, Result{Decision: Deny, Reason: ReasonRole}},
		{"assigned mechanic completes", CanComplete, mechanic, Result{Decision: Allow}},
		{"rival cannot complete", CanComplete, rival, Result{Decision: Deny, Reason: ReasonNotAssigned}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.id, accepted))
		})
	}
}

func TestResultErr(t *testing.T) {
	assert.NoError(t, Result{Decision: Allow}.Err())
	assert.ErrorIs(t, Result{Decision: Deny, Reason: ReasonBlocked}.Err(), errors.SetCustomError(constant.ErrAccountBlocked))
	assert.ErrorIs(t, Result{Decision: Deny, Reason: ReasonNotOwner}.Err(), errors.SetCustomError(constant.ErrForbidden))
	assert.ErrorIs(t, Result{Decision: Deny, Reason: ReasonRole}.Err(), errors.SetCustomError(constant.ErrForbidden))
}
