package auth

import (
	"context"
)

type ctxkey string

const (
	userkey ctxkey = "autheduser"
)

type AuthedUser struct {
	ID       string
	Username string
}

func StoreUserInContext(ctx context.Context, id string, username string) context.Context {
	ctx = context.WithValue(ctx, userkey, &AuthedUser{
		ID:       id,
		Username: username,
	})
	return ctx
}

func UserFromContext(ctx context.Context) *AuthedUser {
	au, ok := ctx.Value(userkey).(*AuthedUser)
	if ok && au.ID != "" {
		return au
	}
	return nil
}
