package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisrepo "github.com/muhammadheryan/roadside-assistance/repository/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (redisrepo.Repository, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisrepo.NewRepository(client), srv
}

func TestRepository_Session(t *testing.T) {
	repo, srv := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetSession(ctx, "jti-1", 42, time.Minute))

	got, err := repo.GetSession(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got)

	srv.FastForward(2 * time.Minute)
	_, err = repo.GetSession(ctx, "jti-1")
	assert.ErrorIs(t, err, redisrepo.ErrKeyNotFound)

	require.NoError(t, repo.SetSession(ctx, "jti-2", 7, time.Minute))
	require.NoError(t, repo.DeleteSession(ctx, "jti-2"))
	_, err = repo.GetSession(ctx, "jti-2")
	assert.ErrorIs(t, err, redisrepo.ErrKeyNotFound)
}

func TestRepository_GetSetDelete(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, redisrepo.ErrKeyNotFound)

	require.NoError(t, repo.SetWithTTL(ctx, "geocode:1:2", "Somewhere", time.Hour))
	got, err := repo.Get(ctx, "geocode:1:2")
	require.NoError(t, err)
	assert.Equal(t, "Somewhere", got)

	require.NoError(t, repo.Delete(ctx, "geocode:1:2"))
	_, err = repo.Get(ctx, "geocode:1:2")
	assert.ErrorIs(t, err, redisrepo.ErrKeyNotFound)
}

func TestRepository_Notifications(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	for _, p := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repo.PushNotification(ctx, []uint64{9}, p, 3))
	}

	got, err := repo.ListNotifications(ctx, 9, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b"}, got)

	got, err = repo.ListNotifications(ctx, 9, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c"}, got)

	got, err = repo.ListNotifications(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_PushNotification_ManyUsers(t *testing.T) {
	repo, srv := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PushNotification(ctx, []uint64{1, 7}, "accepted", 5))

	for _, id := range []uint64{1, 7} {
		got, err := repo.ListNotifications(ctx, id, 5)
		require.NoError(t, err)
		assert.Equal(t, []string{"accepted"}, got)
	}

	srv.SetError("LOADING")
	assert.Error(t, repo.PushNotification(ctx, []uint64{1, 7}, "completed", 5))
	srv.SetError("")

	for _, id := range []uint64{1, 7} {
		got, err := repo.ListNotifications(ctx, id, 5)
		require.NoError(t, err)
		assert.Equal(t, []string{"accepted"}, got)
	}

	require.NoError(t, repo.PushNotification(ctx, nil, "ignored", 5))
}
