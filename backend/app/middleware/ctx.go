package middleware

import (
	"context"

	"soft-admin/backend/app/session"
)

func GetIdentity(ctx context.Context) *session.Identity {
	if v := ctx.Value(identityKey); v != nil {
		if id, ok := v.(session.Identity); ok {
			return &id
		}
	}
	return nil
}
