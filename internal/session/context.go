package session

import (
	"context"

	"curiona-admin/internal/models"
)

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession scopes the session read for a request to that request.
func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

func FromContext(ctx context.Context) *models.Session {
	if s, ok := ctx.Value(sessionContextKey).(*models.Session); ok {
		return s
	}

	return nil
}
