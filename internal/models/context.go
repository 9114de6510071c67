package models

import "context"

type userContextKey struct{}

// WithUser кладёт авторизованного пользователя в контекст запроса.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext достаёт пользователя, положенного auth-middleware.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*User)
	return user, ok
}
