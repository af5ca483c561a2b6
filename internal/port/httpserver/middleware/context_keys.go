package middleware

import "context"

// ContextKey is a private key type to avoid context collisions.
type ContextKey string

const sessionCtxKey = ContextKey("session")

// Session is the authenticated caller, as established by the Auth middleware.
type Session struct {
	UserID string
	Name   string
	Email  string
}

func withSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}

// SessionFromContext returns the current session, if any.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionCtxKey).(Session)
	return s, ok
}
