package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/roadside-assistance/application/policy"
	"github.com/muhammadheryan/roadside-assistance/cmd/config"
	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
	redisrepo "github.com/muhammadheryan/roadside-assistance/repository/redis"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
	"github.com/muhammadheryan/roadside-assistance/utils/logger"
	"go.uber.org/zap"
)

const DefaultListLimit int64 = 20

type NotificationApp interface {
	// Record stores a status event in the feeds of the owning client and the assigned mechanic.
	Record(ctx context.Context, event *model.RequestStatusEvent) error
	List(ctx context.Context, caller model.Identity, limit int64) (*model.NotificationListResponse, error)
}

type notificationAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
	now       func() time.Time
}

func NewNotificationApp(config *config.Config, redisRepo redisrepo.Repository) NotificationApp {
	return &notificationAppImpl{config: config, redisRepo: redisRepo, now: time.Now}
}

func (s *notificationAppImpl) Record(ctx context.Context, event *model.RequestStatusEvent) error {
	if event == nil || event.RequestID == 0 || event.ClientID == 0 || !event.Status.IsValid() {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "Invalid status event")
	}

	createdAt := event.OccurredAt
	if createdAt.IsZero() {
		createdAt = s.now().UTC()
	}
	payload, err := json.Marshal(model.Notification{
		RequestID: event.RequestID,
		Status:    event.Status,
		Message:   messageFor(event),
		CreatedAt: createdAt,
	})
	if err != nil {
		logger.Error("[RecordNotification] err json.Marshal", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	recipients := []uint64{event.ClientID}
	if event.MechanicID != nil && *event.MechanicID != event.ClientID {
		recipients = append(recipients, *event.MechanicID)
	}

	if err := s.redisRepo.PushNotification(ctx, recipients, string(payload), s.config.Notification.FeedSize); err != nil {
		logger.Error("[RecordNotification] err redisRepo.PushNotification",
			zap.Uint64s("user_ids", recipients), zap.Uint64("request_id", event.RequestID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *notificationAppImpl) List(ctx context.Context, caller model.Identity, limit int64) (*model.NotificationListResponse, error) {
	if err := policy.Authorize(caller, policy.ActionViewNotifications).Err(); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}
	if feedSize := s.config.Notification.FeedSize; feedSize > 0 && limit > feedSize {
		limit = feedSize
	}

	raw, err := s.redisRepo.ListNotifications(ctx, caller.UserID, limit)
	if err != nil {
		logger.Error("[ListNotifications] err redisRepo.ListNotifications", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	notifications := make([]model.Notification, 0, len(raw))
	for _, item := range raw {
		var n model.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			logger.Warn("[ListNotifications] skip malformed entry", zap.Uint64("user_id", caller.UserID))
			continue
		}
		notifications = append(notifications, n)
	}

	return &model.NotificationListResponse{Notifications: notifications}, nil
}

func messageFor(event *model.RequestStatusEvent) string {
	switch event.Status {
	case constant.RequestStatusPending:
		return fmt.Sprintf("Request %q was created", event.Title)
	case constant.RequestStatusAccepted:
		return fmt.Sprintf("Request %q was accepted by a mechanic", event.Title)
	case constant.RequestStatusRejected:
		return fmt.Sprintf("Request %q was rejected", event.Title)
	case constant.RequestStatusCompleted:
		return fmt.Sprintf("Request %q was completed", event.Title)
	case constant.RequestStatusCancelled:
		return fmt.Sprintf("Request %q was cancelled by the client", event.Title)
	default:
		return fmt.Sprintf("Request %q is now %s", event.Title, event.Status)
	}
}
