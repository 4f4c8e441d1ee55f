package session

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const IdKey contextKey = "session"

var ErrNoSession = errors.New("no session in context")

func WithId(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, IdKey, id)
}

// CurrentId returns the session id stored in the context, or ErrNoSession.
func CurrentId(ctx context.Context) (string, error) {
	id, ok := ctx.Value(IdKey).(string)
	if !ok || id == "" {
		log.Trace("session not found in context")
		return "", ErrNoSession
	}
	return id, nil
}
