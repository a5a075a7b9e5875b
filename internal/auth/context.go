package auth

import (
	"context"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/workouts/users"
)

type contextKey string

const userKey contextKey = "gymlog-authenticated-user"

func WithUser(ctx context.Context, user *users.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the user stored by the auth middleware.
func UserFromContext(ctx context.Context) (*users.User, error) {
	user, ok := ctx.Value(userKey).(*users.User)
	if !ok || user == nil || user.ObjectID == "" {
		return nil, apperr.Unauthorized("Unauthorized User")
	}
	return user, nil
}
