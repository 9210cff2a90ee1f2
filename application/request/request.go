package request

import (
	"context"
	"time"

	"github.com/muhammadheryan/roadside-assistance/application/policy"
	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
	requestrepo "github.com/muhammadheryan/roadside-assistance/repository/request"
	"github.com/muhammadheryan/roadside-assistance/thirdparty/rabbitmq"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
	"github.com/muhammadheryan/roadside-assistance/utils/logger"
	"github.com/muhammadheryan/roadside-assistance/utils/metrics"
	"go.uber.org/zap"
)

type RequestApp interface {
	Create(ctx context.Context, caller model.Identity, req *model.CreateRequestRequest) (*model.RequestResponse, error)
	List(ctx context.Context, caller model.Identity) (*model.RequestListResponse, error)
	Get(ctx context.Context, caller model.Identity, requestID uint64) (*model.RequestResponse, error)
	Accept(ctx context.Context, caller model.Identity, requestID uint64, req *model.AcceptRequestRequest) (*model.RequestResponse, error)
	Reject(ctx context.Context, caller model.Identity, requestID uint64, req *model.RejectRequestRequest) (*model.RequestResponse, error)
	Complete(ctx context.Context, caller model.Identity, requestID uint64, req *model.CompleteRequestRequest) (*model.RequestResponse, error)
	Cancel(ctx context.Context, caller model.Identity, requestID uint64, req *model.CancelRequestRequest) (*model.RequestResponse, error)
}

type requestAppImpl struct {
	requestRepo requestrepo.RequestRepository
	publisher   rabbitmq.RequestEventPublisher
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewRequestApp(requestRepo requestrepo.RequestRepository, publisher rabbitmq.RequestEventPublisher, m *metrics.Metrics) RequestApp {
	return &requestAppImpl{requestRepo: requestRepo, publisher: publisher, metrics: m, now: time.Now}
}

func (s *requestAppImpl) Create(ctx context.Context, caller model.Identity, req *model.CreateRequestRequest) (*model.RequestResponse, error) {
	if err := policy.Authorize(caller, policy.ActionCreateRequest).Err(); err != nil {
		return nil, err
	}
	if req.Location == nil || req.Location.Latitude == nil || req.Location.Longitude == nil || req.Location.Address == "" {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Please provide a location")
	}

	entity := &model.RequestEntity{
		ClientID:          caller.UserID,
		Title:             req.Title,
		Description:       req.Description,
		ServiceType:       constant.ServiceType(req.ServiceType),
		VehicleType:       constant.VehicleType(req.VehicleType),
		VehicleModel:      optional(req.VehicleModel),
		VehiclePlate:      optional(req.VehiclePlate),
		LocationLatitude:  *req.Location.Latitude,
		LocationLongitude: *req.Location.Longitude,
		LocationAddress:   req.Location.Address,
		Status:            constant.RequestStatusPending,
		ClientNote:        optional(req.ClientNote),
	}

	id, err := s.requestRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateRequest] err requestRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	created, err := s.requestRepo.GetByID(ctx, id)
	if err != nil || created == nil {
		logger.Error("[CreateRequest] err requestRepo.GetByID", zap.Uint64("request_id", id), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.metrics.ObserveTransition("create", metrics.OutcomeApplied)
	s.publish(ctx, created, caller)

	return &model.RequestResponse{Request: created.ToRequest(), Message: "Request created successfully"}, nil
}

func (s *requestAppImpl) List(ctx context.Context, caller model.Identity) (*model.RequestListResponse, error) {
	if err := policy.Authorize(caller, policy.ActionListRequests).Err(); err != nil {
		return nil, err
	}

	filter := policy.RequestFilter(caller)
	entities, err := s.requestRepo.List(ctx, &filter)
	if err != nil {
		logger.Error("[ListRequests] err requestRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RequestListResponse{Requests: toRequests(entities)}, nil
}

func (s *requestAppImpl) Get(ctx context.Context, caller model.Identity, requestID uint64) (*model.RequestResponse, error) {
	entity, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		logger.Error("[GetRequest] err requestRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errNotFound
	}
	if err := policy.CanView(caller, entity).Err(); err != nil {
		return nil, err
	}

	return &model.RequestResponse{Request: entity.ToRequest()}, nil
}

func (s *requestAppImpl) Accept(ctx context.Context, caller model.Identity, requestID uint64, req *model.AcceptRequestRequest) (*model.RequestResponse, error) {
	updated, err := s.transition(ctx, EventAccept, caller, requestID, func(current *model.RequestEntity) (*model.RequestTransition, error) {
		return planAccept(current, caller, req.EstimatedCost, req.MechanicNote)
	})
	if err != nil {
		return nil, err
	}
	return &model.RequestResponse{Request: updated.ToRequest(), Message: "Request accepted successfully"}, nil
}

func (s *requestAppImpl) Reject(ctx context.Context, caller model.Identity, requestID uint64, req *model.RejectRequestRequest) (*model.RequestResponse, error) {
	updated, err := s.transition(ctx, EventReject, caller, requestID, func(current *model.RequestEntity) (*model.RequestTransition, error) {
		return planReject(current, caller, req.Reason)
	})
	if err != nil {
		return nil, err
	}
	return &model.RequestResponse{Request: updated.ToRequest(), Message: "Request rejected"}, nil
}

func (s *requestAppImpl) Complete(ctx context.Context, caller model.Identity, requestID uint64, req *model.CompleteRequestRequest) (*model.RequestResponse, error) {
	updated, err := s.transition(ctx, EventComplete, caller, requestID, func(current *model.RequestEntity) (*model.RequestTransition, error) {
		return planComplete(current, caller, req.FinalCost)
	})
	if err != nil {
		return nil, err
	}
	return &model.RequestResponse{Request: updated.ToRequest(), Message: "Request marked as completed"}, nil
}

func (s *requestAppImpl) Cancel(ctx context.Context, caller model.Identity, requestID uint64, req *model.CancelRequestRequest) (*model.RequestResponse, error) {
	updated, err := s.transition(ctx, EventCancel, caller, requestID, func(current *model.RequestEntity) (*model.RequestTransition, error) {
		return planCancel(current, caller, req.Reason)
	})
	if err != nil {
		return nil, err
	}
	return &model.RequestResponse{Request: updated.ToRequest(), Message: "Request cancelled successfully"}, nil
}

type planFunc func(current *model.RequestEntity) (*model.RequestTransition, error)

// transition plans against a snapshot, then applies the plan as one conditional
// write. If the row changed in between, the plan is re-run against the fresh
// row so the caller gets the error that matches the current state.
func (s *requestAppImpl) transition(ctx context.Context, event Event, caller model.Identity, requestID uint64, plan planFunc) (*model.RequestEntity, error) {
	op := "[" + event.String() + "Request]"

	current, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		logger.Error(op+" err requestRepo.GetByID", zap.String("error", err.Error()))
		s.metrics.ObserveTransition(event.String(), metrics.OutcomeError)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if current == nil {
		s.metrics.ObserveTransition(event.String(), metrics.OutcomeRejected)
		return nil, errNotFound
	}

	t, err := plan(current)
	if err != nil {
		s.metrics.ObserveTransition(event.String(), metrics.OutcomeRejected)
		return nil, err
	}

	applied, err := s.requestRepo.ApplyTransition(ctx, t)
	if err != nil {
		logger.Error(op+" err requestRepo.ApplyTransition", zap.String("error", err.Error()))
		s.metrics.ObserveTransition(event.String(), metrics.OutcomeError)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if !applied {
		s.metrics.ObserveTransition(event.String(), metrics.OutcomeConflict)
		logger.Info(op+" lost conditional update", zap.Uint64("request_id", requestID), zap.Uint64("user_id", caller.UserID))

		latest, err := s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			logger.Error(op+" err requestRepo.GetByID after conflict", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if latest == nil {
			return nil, errNotFound
		}
		if _, err := plan(latest); err != nil {
			return nil, err
		}
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidTransition, "Request was modified concurrently, please retry")
	}

	updated, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil || updated == nil {
		logger.Error(op+" err requestRepo.GetByID after update", zap.Uint64("request_id", requestID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.metrics.ObserveTransition(event.String(), metrics.OutcomeApplied)
	s.publish(ctx, updated, caller)
	return updated, nil
}

// publish never fails the operation; the transition is already committed.
func (s *requestAppImpl) publish(ctx context.Context, entity *model.RequestEntity, caller model.Identity) {
	if s.publisher == nil {
		return
	}

	event := model.RequestStatusEvent{
		RequestID:  entity.ID,
		ClientID:   entity.ClientID,
		MechanicID: entity.MechanicID,
		Status:     entity.Status,
		ActorID:    caller.UserID,
		ActorRole:  caller.Role,
		Title:      entity.Title,
		OccurredAt: s.now().UTC(),
	}

	err := s.publisher.PublishRequestStatus(ctx, event)
	s.metrics.ObservePublish(err)
	if err != nil {
		logger.Error("[PublishRequestStatus] err publisher.PublishRequestStatus",
			zap.Uint64("request_id", entity.ID),
			zap.String("status", string(entity.Status)),
			zap.String("error", err.Error()))
	}
}

func toRequests(entities []*model.RequestEntity) []*model.Request {
	out := make([]*model.Request, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.ToRequest())
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
