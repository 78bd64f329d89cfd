// Package bearer carries the upstream API token and the signed-in operator on
// a request context, from the session middleware to the outbound adapters.
package bearer

import (
	"context"
	"strings"
)

type contextKey int

const (
	tokenKey contextKey = iota
	actorKey
)

// WithToken returns a copy of ctx that carries token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, strings.TrimSpace(token))
}

// TokenFromContext returns the token stored by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// WithActor records the remote user id of the signed-in operator.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey, userID)
}

// ActorFromContext returns the user id stored by WithActor, or "".
func ActorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(actorKey).(string)
	return actor
}

// ParseAuthorization extracts the token of an "Authorization: Bearer <token>"
// header value.
func ParseAuthorization(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
