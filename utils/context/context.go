package context

import (
	"context"

	"github.com/takatrack/waste-monitoring/model"
)

type contextKey string

const sessionUserKey contextKey = "session-user"

// WithSessionUser returns a context carrying the authenticated account.
func WithSessionUser(ctx context.Context, user *model.UserEntity) context.Context {
	return context.WithValue(ctx, sessionUserKey, user)
}

// GetSessionUser returns the account resolved for this request, or nil for an
// anonymous request.
func GetSessionUser(ctx context.Context) *model.UserEntity {
	v := ctx.Value(sessionUserKey)
	if v == nil {
		return nil
	}
	user, ok := v.(*model.UserEntity)
	if !ok {
		return nil
	}
	return user
}
