package request

import (
	"fmt"
	"slices"

	"github.com/muhammadheryan/roadside-assistance/application/policy"
	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
)

// Event is a lifecycle intent against an existing request.
type Event int

const (
	EventAccept Event = iota + 1
	EventReject
	EventComplete
	EventCancel
)

func (e Event) String() string {
	switch e {
	case EventAccept:
		return "accept"
	case EventReject:
		return "reject"
	case EventComplete:
		return "complete"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// transitions lists, per event, the statuses it may start from and the status it ends in.
// Nothing moves a request into in_progress yet; complete still accepts it as a source.
var transitions = map[Event]struct {
	from []constant.RequestStatus
	to   constant.RequestStatus
}{
	EventAccept:   {from: []constant.RequestStatus{constant.RequestStatusPending}, to: constant.RequestStatusAccepted},
	EventReject:   {from: []constant.RequestStatus{constant.RequestStatusPending}, to: constant.RequestStatusRejected},
	EventComplete: {from: []constant.RequestStatus{constant.RequestStatusAccepted, constant.RequestStatusInProgress}, to: constant.RequestStatusCompleted},
	EventCancel:   {from: []constant.RequestStatus{constant.RequestStatusPending, constant.RequestStatusAccepted}, to: constant.RequestStatusCancelled},
}

// CanTransition reports whether event is allowed from status.
func CanTransition(status constant.RequestStatus, event Event) bool {
	t, ok := transitions[event]
	return ok && slices.Contains(t.from, status)
}

var (
	errNoLongerPending = errors.SetCustomErrorMessage(constant.ErrInvalidTransition, "Request is no longer pending")
	errMustBeAccepted  = errors.SetCustomErrorMessage(constant.ErrInvalidTransition, "Request must be accepted first")
	errInvalidCost     = errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Please provide a valid estimated cost")
	errInvalidFinal    = errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Final cost cannot be negative")
	errNotFound        = errors.SetCustomErrorMessage(constant.ErrNotFound, "Request not found")
)

func cancelError(status constant.RequestStatus) error {
	if status == constant.RequestStatusCompleted || status == constant.RequestStatusCancelled {
		return errors.SetCustomErrorMessage(constant.ErrInvalidTransition,
			fmt.Sprintf("cannot cancel a request already in terminal state %s", status))
	}
	return errors.SetCustomErrorMessage(constant.ErrInvalidTransition,
		fmt.Sprintf("cannot cancel a request in status %s", status))
}

func newTransition(req *model.RequestEntity, event Event) *model.RequestTransition {
	t := transitions[event]
	return &model.RequestTransition{
		RequestID: req.ID,
		From:      t.from,
		To:        t.to,
	}
}

// planAccept validates an accept by caller against req. The cost is checked
// before the status so a bad cost never reaches the store.
func planAccept(req *model.RequestEntity, caller model.Identity, estimatedCost float64, note string) (*model.RequestTransition, error) {
	if err := policy.Authorize(caller, policy.ActionAcceptRequest).Err(); err != nil {
		return nil, err
	}
	if estimatedCost <= 0 {
		return nil, errInvalidCost
	}
	if !CanTransition(req.Status, EventAccept) {
		return nil, errNoLongerPending
	}

	mechanicID := caller.UserID
	t := newTransition(req, EventAccept)
	t.AssignMechanicID = &mechanicID
	t.EstimatedCost = &estimatedCost
	t.MechanicNote = &note
	return t, nil
}

// planReject lets any mechanic reject a pending request; nobody owns it yet.
func planReject(req *model.RequestEntity, caller model.Identity, reason string) (*model.RequestTransition, error) {
	if err := policy.Authorize(caller, policy.ActionRejectRequest).Err(); err != nil {
		return nil, err
	}
	if !CanTransition(req.Status, EventReject) {
		return nil, errNoLongerPending
	}
	if reason == "" {
		reason = constant.DefaultRejectNote
	}

	t := newTransition(req, EventReject)
	t.MechanicNote = &reason
	return t, nil
}

// planComplete requires the caller to be the assigned mechanic before looking at the status.
// A missing or zero final cost copies the estimate.
func planComplete(req *model.RequestEntity, caller model.Identity, finalCost *float64) (*model.RequestTransition, error) {
	if err := policy.CanComplete(caller, req).Err(); err != nil {
		return nil, err
	}
	if finalCost != nil && *finalCost < 0 {
		return nil, errInvalidFinal
	}
	if !CanTransition(req.Status, EventComplete) {
		return nil, errMustBeAccepted
	}

	mechanicID := caller.UserID
	t := newTransition(req, EventComplete)
	t.MechanicID = &mechanicID
	if finalCost != nil && *finalCost > 0 {
		cost := *finalCost
		t.FinalCost = &cost
	} else {
		t.FinalCostFromEstimate = true
	}
	return t, nil
}

func planCancel(req *model.RequestEntity, caller model.Identity, reason string) (*model.RequestTransition, error) {
	if err := policy.CanCancel(caller, req).Err(); err != nil {
		return nil, err
	}
	if !CanTransition(req.Status, EventCancel) {
		return nil, cancelError(req.Status)
	}
	if reason == "" {
		reason = constant.DefaultCancelReason
	}

	clientID := caller.UserID
	by := constant.CancelledByClient
	t := newTransition(req, EventCancel)
	t.ClientID = &clientID
	t.CancelledBy = &by
	t.CancelReason = &reason
	return t, nil
}
