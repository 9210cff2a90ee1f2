package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	appnotification "github.com/muhammadheryan/roadside-assistance/application/notification"
	"github.com/muhammadheryan/roadside-assistance/cmd/config"
	"github.com/muhammadheryan/roadside-assistance/constant"
	redismocks "github.com/muhammadheryan/roadside-assistance/mocks/repository/redis"
	"github.com/muhammadheryan/roadside-assistance/model"
	redisrepo "github.com/muhammadheryan/roadside-assistance/repository/redis"
	cerr "github.com/muhammadheryan/roadside-assistance/utils/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	client   = model.Identity{UserID: 1, Role: constant.RoleClient}
	mechanic = model.Identity{UserID: 7, Role: constant.RoleMechanic}
)

func testConfig(feedSize int64) *config.Config {
	return &config.Config{Notification: config.NotificationConfig{FeedSize: feedSize}}
}

func newRedisRepo(t *testing.T) (redisrepo.Repository, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	c := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = c.Close() })
	return redisrepo.NewRepository(c), srv
}

func event(id uint64, status constant.RequestStatus, mechanicID *uint64) *model.RequestStatusEvent {
	return &model.RequestStatusEvent{
		RequestID:  id,
		ClientID:   client.UserID,
		MechanicID: mechanicID,
		Status:     status,
		Title:      "Flat tire",
		OccurredAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestNotificationApp_RecordAndList(t *testing.T) {
	repo, _ := newRedisRepo(t)
	app := appnotification.NewNotificationApp(testConfig(50), repo)
	ctx := context.Background()
	mech := mechanic.UserID

	require.NoError(t, app.Record(ctx, event(10, constant.RequestStatusPending, nil)))
	require.NoError(t, app.Record(ctx, event(10, constant.RequestStatusAccepted, &mech)))
	require.NoError(t, app.Record(ctx, event(10, constant.RequestStatusCompleted, &mech)))

	clientFeed, err := app.List(ctx, client, 0)
	require.NoError(t, err)
	require.Len(t, clientFeed.Notifications, 3)
	assert.Equal(t, constant.RequestStatusCompleted, clientFeed.Notifications[0].Status)
	assert.Equal(t, `Request "Flat tire" was completed`, clientFeed.Notifications[0].Message)
	assert.Equal(t, constant.RequestStatusPending, clientFeed.Notifications[2].Status)

	mechanicFeed, err := app.List(ctx, mechanic, 0)
	require.NoError(t, err)
	require.Len(t, mechanicFeed.Notifications, 2)
	assert.Equal(t, constant.RequestStatusAccepted, mechanicFeed.Notifications[1].Status)
}

func TestNotificationApp_FeedIsBounded(t *testing.T) {
	repo, _ := newRedisRepo(t)
	app := appnotification.NewNotificationApp(testConfig(3), repo)
	ctx := context.Background()

	for id := uint64(1); id <= 5; id++ {
		require.NoError(t, app.Record(ctx, event(id, constant.RequestStatusPending, nil)))
	}

	// limit above the feed size is capped
	got, err := app.List(ctx, client, 100)
	require.NoError(t, err)
	require.Len(t, got.Notifications, 3)
	assert.Equal(t, uint64(5), got.Notifications[0].RequestID)
	assert.Equal(t, uint64(3), got.Notifications[2].RequestID)
}

func TestNotificationApp_ListSkipsMalformed(t *testing.T) {
	repo, srv := newRedisRepo(t)
	app := appnotification.NewNotificationApp(testConfig(50), repo)
	ctx := context.Background()

	require.NoError(t, app.Record(ctx, event(1, constant.RequestStatusPending, nil)))
	_, err := srv.Lpush("notifications:1", "not-json")
	require.NoError(t, err)

	got, err := app.List(ctx, client, 10)
	require.NoError(t, err)
	assert.Len(t, got.Notifications, 1)
}

func TestNotificationApp_Record_Invalid(t *testing.T) {
	app := appnotification.NewNotificationApp(testConfig(50), redismocks.NewRedisRepository(t))

	tests := []struct {
		name  string
		event *model.RequestStatusEvent
	}{
		{"nil event", nil},
		{"missing request id", &model.RequestStatusEvent{ClientID: 1, Status: constant.RequestStatusPending}},
		{"missing client", &model.RequestStatusEvent{RequestID: 1, Status: constant.RequestStatusPending}},
		{"unknown status", &model.RequestStatusEvent{RequestID: 1, ClientID: 1, Status: "paused"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := app.Record(context.Background(), tt.event)
			assert.ErrorIs(t, err, cerr.SetCustomError(constant.ErrInvalidRequest))
		})
	}
}

func TestNotificationApp_Record_StoreError(t *testing.T) {
	redisRepo := redismocks.NewRedisRepository(t)
	redisRepo.On("PushNotification", mock.Anything, []uint64{1}, mock.AnythingOfType("string"), int64(50)).
		Return(errors.New("redis down")).Once()

	app := appnotification.NewNotificationApp(testConfig(50), redisRepo)
	err := app.Record(context.Background(), event(1, constant.RequestStatusPending, nil))
	assert.ErrorIs(t, err, cerr.SetCustomError(constant.ErrInternal))
}

func TestNotificationApp_Record_AllRecipientsInOneWrite(t *testing.T) {
	redisRepo := redismocks.NewRedisRepository(t)
	mech := mechanic.UserID
	redisRepo.On("PushNotification", mock.Anything, []uint64{client.UserID, mech}, mock.AnythingOfType("string"), int64(50)).
		Return(errors.New("redis down")).Once()

	app := appnotification.NewNotificationApp(testConfig(50), redisRepo)
	err := app.Record(context.Background(), event(1, constant.RequestStatusAccepted, &mech))
	assert.ErrorIs(t, err, cerr.SetCustomError(constant.ErrInternal))
	redisRepo.AssertNumberOfCalls(t, "PushNotification", 1)
}

func TestNotificationApp_List_Forbidden(t *testing.T) {
	app := appnotification.NewNotificationApp(testConfig(50), redismocks.NewRedisRepository(t))

	_, err := app.List(context.Background(), model.Identity{UserID: 1, Role: constant.RoleAdmin}, 10)
	assert.ErrorIs(t, err, cerr.SetCustomError(constant.ErrForbidden))

	_, err = app.List(context.Background(), model.Identity{UserID: 2, Role: constant.RoleClient, IsBlocked: true}, 10)
	assert.ErrorIs(t, err, cerr.SetCustomError(constant.ErrAccountBlocked))
}
