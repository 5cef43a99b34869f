// Package session carries the authenticated caller through a request context.
package session

import (
	"context"

	svcErr "github.com/oggyb/lovespark/internal/errors"
)

// Session identifies the caller of an RPC.
type Session struct {
	UserID uint64
	Email  string
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session attached by the auth interceptor.
// ok is false when the call is unauthenticated.
func FromContext(ctx context.Context) (s Session, ok bool) {
	s, ok = ctx.Value(contextKey{}).(Session)
	return s, ok && s.UserID != 0
}

// Require is FromContext for handlers that need a caller.
func Require(ctx context.Context) (Session, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return Session{}, svcErr.Unauthenticated("no active session")
	}
	return s, nil
}
