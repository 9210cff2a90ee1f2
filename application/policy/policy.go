// Package policy decides what a resolved caller may do. It has no I/O: every
// check is a pure function of the caller identity and, for object-level
// checks, the stored request.
package policy

import (
	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
)

// Action is an intent a caller wants to perform.
type Action int

const (
	ActionCreateRequest Action = iota + 1
	ActionListRequests
	ActionViewRequest
	ActionAcceptRequest
	ActionRejectRequest
	ActionCompleteRequest
	ActionCancelRequest
	ActionUpdateProfile
	ActionUpdateAvailability
	ActionViewNotifications
	ActionListUsers
	ActionBlockUser
	ActionUnblockUser
	ActionViewStats
	ActionListAllRequests
)

func (a Action) String() string {
	switch a {
	case ActionCreateRequest:
		return "create_request"
	case ActionListRequests:
		return "list_requests"
	case ActionViewRequest:
		return "view_request"
	case ActionAcceptRequest:
		return "accept_request"
	case ActionRejectRequest:
		return "reject_request"
	case ActionCompleteRequest:
		return "complete_request"
	case ActionCancelRequest:
		return "cancel_request"
	case ActionUpdateProfile:
		return "update_profile"
	case ActionUpdateAvailability:
		return "update_availability"
	case ActionViewNotifications:
		return "view_notifications"
	case ActionListUsers:
		return "list_users"
	case ActionBlockUser:
		return "block_user"
	case ActionUnblockUser:
		return "unblock_user"
	case ActionViewStats:
		return "view_stats"
	case ActionListAllRequests:
		return "list_all_requests"
	default:
		return "unknown"
	}
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Deny means the action is not permitted.
	Deny Decision = iota

	// Allow means the action is permitted.
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// DenyReason describes why a check was denied.
type DenyReason int

const (
	ReasonNone DenyReason = iota

	// ReasonBlocked means the caller's account is blocked. It is reported
	// before any role logic runs.
	ReasonBlocked

	// ReasonRole means the caller's role never grants the action.
	ReasonRole

	// ReasonNotOwner means the request belongs to another client.
	ReasonNotOwner

	// ReasonNotAssigned means the request is not assigned to the calling mechanic.
	ReasonNotAssigned

	// ReasonNotVisible means the request is outside the caller's view.
	ReasonNotVisible
)

func (r DenyReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonBlocked:
		return "account blocked"
	case ReasonRole:
		return "role not permitted"
	case ReasonNotOwner:
		return "not the owning client"
	case ReasonNotAssigned:
		return "not the assigned mechanic"
	case ReasonNotVisible:
		return "request not visible to caller"
	default:
		return "unknown"
	}
}

// Result pairs a decision with the reason for a denial.
type Result struct {
	Decision Decision
	Reason   DenyReason
}

func (r Result) Allowed() bool {
	return r.Decision == Allow
}

var (
	allow = Result{Decision: Allow}

	clientActions = map[Action]bool{
		ActionCreateRequest:     true,
		ActionListRequests:      true,
		ActionViewRequest:       true,
		ActionCancelRequest:     true,
		ActionUpdateProfile:     true,
		ActionViewNotifications: true,
	}
	mechanicActions = map[Action]bool{
		ActionListRequests:       true,
		ActionViewRequest:        true,
		ActionAcceptRequest:      true,
		ActionRejectRequest:      true,
		ActionCompleteRequest:    true,
		ActionUpdateProfile:      true,
		ActionUpdateAvailability: true,
		ActionViewNotifications:  true,
	}
	// admin is view-only on requests
	adminActions = map[Action]bool{
		ActionListRequests:    true,
		ActionViewRequest:     true,
		ActionListUsers:       true,
		ActionBlockUser:       true,
		ActionUnblockUser:     true,
		ActionViewStats:       true,
		ActionListAllRequests: true,
	}
)

func deny(reason DenyReason) Result {
	return Result{Decision: Deny, Reason: reason}
}

// Authorize is the capability check: may a caller with this identity perform
// action at all, before any entity is considered.
func Authorize(id model.Identity, action Action) Result {
	if id.IsBlocked {
		return deny(ReasonBlocked)
	}

	var granted map[Action]bool
	switch id.Role {
	case constant.RoleClient:
		granted = clientActions
	case constant.RoleMechanic:
		granted = mechanicActions
	case constant.RoleAdmin:
		granted = adminActions
	default:
		return deny(ReasonRole)
	}

	if !granted[action] {
		return deny(ReasonRole)
	}
	return allow
}

// RequestFilter is the row-level filter applied to request listings.
// Clients see their own requests, mechanics see every pending request plus
// the ones assigned to them, admins see everything.
func RequestFilter(id model.Identity) model.RequestFilter {
	switch id.Role {
	case constant.RoleClient:
		return model.RequestFilter{ClientID: id.UserID}
	case constant.RoleMechanic:
		return model.RequestFilter{VisibleToMechanicID: id.UserID}
	case constant.RoleAdmin:
		return model.RequestFilter{}
	default:
		// unreachable after Authorize; match nothing
		return model.RequestFilter{ClientID: ^uint64(0)}
	}
}

// Visible reports whether req passes the row-level filter for id.
func Visible(id model.Identity, req *model.RequestEntity) bool {
	switch id.Role {
	case constant.RoleClient:
		return req.ClientID == id.UserID
	case constant.RoleMechanic:
		return req.Status == constant.RequestStatusPending || isAssigned(id, req)
	case constant.RoleAdmin:
		return true
	default:
		return false
	}
}

// CanView is the object-level check for the request detail view.
func CanView(id model.Identity, req *model.RequestEntity) Result {
	if res := Authorize(id, ActionViewRequest); !res.Allowed() {
		return res
	}
	if Visible(id, req) {
		return allow
	}
	if id.Role == constant.RoleClient {
		return deny(ReasonNotOwner)
	}
	return deny(ReasonNotVisible)
}

// CanCancel allows only the owning client.
func CanCancel(id model.Identity, req *model.RequestEntity) Result {
	if res := Authorize(id, ActionCancelRequest); !res.Allowed() {
		return res
	}
	if req.ClientID != id.UserID {
		return deny(ReasonNotOwner)
	}
	return allow
}

// CanComplete allows only the mechanic the request is assigned to.
func CanComplete(id model.Identity, req *model.RequestEntity) Result {
	if res := Authorize(id, ActionCompleteRequest); !res.Allowed() {
		return res
	}
	if !isAssigned(id, req) {
		return deny(ReasonNotAssigned)
	}
	return allow
}

func isAssigned(id model.Identity, req *model.RequestEntity) bool {
	return req.MechanicID != nil && *req.MechanicID == id.UserID
}

// Err converts a denial into the error reported to the caller. It returns nil when r allows.
func (r Result) Err() error {
	switch {
	case r.Allowed():
		return nil
	case r.Reason == ReasonBlocked:
		return errors.SetCustomError(constant.ErrAccountBlocked)
	default:
		return errors.SetCustomError(constant.ErrForbidden)
	}
}
