package admin

import (
	"context"
	"strings"

	"github.com/muhammadheryan/roadside-assistance/application/policy"
	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
	requestrepo "github.com/muhammadheryan/roadside-assistance/repository/request"
	userrepo "github.com/muhammadheryan/roadside-assistance/repository/user"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
	"github.com/muhammadheryan/roadside-assistance/utils/logger"
	"go.uber.org/zap"
)

type AdminApp interface {
	ListUsers(ctx context.Context, caller model.Identity, role string) (*model.UserListResponse, error)
	BlockUser(ctx context.Context, caller model.Identity, userID uint64) (*model.UserActionResponse, error)
	UnblockUser(ctx context.Context, caller model.Identity, userID uint64) (*model.UserActionResponse, error)
	ListRequests(ctx context.Context, caller model.Identity, status string) (*model.RequestListResponse, error)
	Stats(ctx context.Context, caller model.Identity) (*model.PlatformStats, error)
}

type adminAppImpl struct {
	userRepo    userrepo.UserRepository
	requestRepo requestrepo.RequestRepository
}

func NewAdminApp(userRepo userrepo.UserRepository, requestRepo requestrepo.RequestRepository) AdminApp {
	return &adminAppImpl{userRepo: userRepo, requestRepo: requestRepo}
}

// ListUsers lists clients and mechanics. An empty role lists both; admins are never listed.
func (s *adminAppImpl) ListUsers(ctx context.Context, caller model.Identity, role string) (*model.UserListResponse, error) {
	if err := policy.Authorize(caller, policy.ActionListUsers).Err(); err != nil {
		return nil, err
	}

	filter := &model.UserListFilter{}
	if strings.TrimSpace(role) != "" {
		r, ok := constant.ParseRole(role)
		if !ok || r == constant.RoleAdmin {
			return nil, errors.SetCustomError(constant.ErrInvalidRole)
		}
		filter.Role = r
	}

	entities, err := s.userRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	users := make([]*model.User, 0, len(entities))
	for _, e := range entities {
		users = append(users, e.ToUser())
	}
	return &model.UserListResponse{Users: users}, nil
}

func (s *adminAppImpl) BlockUser(ctx context.Context, caller model.Identity, userID uint64) (*model.UserActionResponse, error) {
	if err := policy.Authorize(caller, policy.ActionBlockUser).Err(); err != nil {
		return nil, err
	}
	return s.setBlocked(ctx, "[BlockUser]", userID, true)
}

func (s *adminAppImpl) UnblockUser(ctx context.Context, caller model.Identity, userID uint64) (*model.UserActionResponse, error) {
	if err := policy.Authorize(caller, policy.ActionUnblockUser).Err(); err != nil {
		return nil, err
	}
	return s.setBlocked(ctx, "[UnblockUser]", userID, false)
}

func (s *adminAppImpl) setBlocked(ctx context.Context, op string, userID uint64, blocked bool) (*model.UserActionResponse, error) {
	target, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error(op+" err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if target == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "User not found")
	}
	if target.Role == constant.RoleAdmin {
		return nil, errors.SetCustomError(constant.ErrCannotBlockAdmin)
	}

	if err := s.userRepo.SetBlocked(ctx, userID, blocked); err != nil {
		logger.Error(op+" err userRepo.SetBlocked", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	target.IsBlocked = blocked

	verb := "unblocked"
	if blocked {
		verb = "blocked"
	}
	logger.Info(op+" user "+verb, zap.Uint64("user_id", userID))

	return &model.UserActionResponse{
		Message: target.Name + " has been " + verb,
		User:    target.ToUser(),
	}, nil
}

// ListRequests lists every request, optionally narrowed to one status.
func (s *adminAppImpl) ListRequests(ctx context.Context, caller model.Identity, status string) (*model.RequestListResponse, error) {
	if err := policy.Authorize(caller, policy.ActionListAllRequests).Err(); err != nil {
		return nil, err
	}

	filter := &model.RequestFilter{}
	if status != "" {
		st := constant.RequestStatus(strings.ToLower(status))
		if !st.IsValid() {
			return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid status filter")
		}
		filter.Status = st
	}

	entities, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[AdminListRequests] err requestRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	requests := make([]*model.Request, 0, len(entities))
	for _, e := range entities {
		requests = append(requests, e.ToRequest())
	}
	return &model.RequestListResponse{Requests: requests}, nil
}

func (s *adminAppImpl) Stats(ctx context.Context, caller model.Identity) (*model.PlatformStats, error) {
	if err := policy.Authorize(caller, policy.ActionViewStats).Err(); err != nil {
		return nil, err
	}

	userStats, err := s.userRepo.Stats(ctx)
	if err != nil {
		logger.Error("[Stats] err userRepo.Stats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	requestStats, err := s.requestRepo.Stats(ctx)
	if err != nil {
		logger.Error("[Stats] err requestRepo.Stats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PlatformStats{
		TotalClients:      userStats.TotalClients,
		TotalMechanics:    userStats.TotalMechanics,
		BlockedUsers:      userStats.BlockedUsers,
		TotalRequests:     requestStats.TotalRequests,
		PendingRequests:   requestStats.PendingRequests,
		CompletedRequests: requestStats.CompletedRequests,
	}, nil
}
