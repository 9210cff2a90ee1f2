package context

import (
	"context"

	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
)

func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, constant.IdentityKey, identity)
}

func GetIdentity(ctx context.Context) (model.Identity, bool) {
	v := ctx.Value(constant.IdentityKey)
	if v == nil {
		return model.Identity{}, false
	}
	id, ok := v.(model.Identity)
	return id, ok
}

func GetUserID(ctx context.Context) (uint64, bool) {
	id, ok := GetIdentity(ctx)
	if !ok {
		return 0, false
	}
	return id.UserID, true
}

func WithTokenID(ctx context.Context, jti string) context.Context {
	return context.WithValue(ctx, constant.TokenIDKey, jti)
}

func GetTokenID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(constant.TokenIDKey).(string)
	return v, ok
}
