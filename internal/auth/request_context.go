package auth

import (
	"context"
)

type contextKey string

var (
	userClaimsKey    contextKey = "user_claims"
	requestIDKey     contextKey = "request_id"
	claimsTrackerKey contextKey = "claims_tracker"
)

type claimsTracker struct {
	claims UserClaims
}

// SetUserClaims stores claims for downstream handlers and reports them to any
// tracker installed further up the chain.
func SetUserClaims(ctx context.Context, claims UserClaims) context.Context {
	if t, ok := ctx.Value(claimsTrackerKey).(*claimsTracker); ok {
		t.claims = claims
	}
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaims(ctx context.Context) UserClaims {
	val := ctx.Value(userClaimsKey)
	if claims, ok := val.(UserClaims); ok {
		return claims
	}
	return nil
}

// TrackClaims lets an outer middleware see claims set by an inner one
func TrackClaims(ctx context.Context) context.Context {
	return context.WithValue(ctx, claimsTrackerKey, &claimsTracker{})
}

// TrackedClaims returns the claims reported to the tracker installed by TrackClaims
func TrackedClaims(ctx context.Context) UserClaims {
	if t, ok := ctx.Value(claimsTrackerKey).(*claimsTracker); ok {
		return t.claims
	}
	return nil
}

// SetRequestID stores the request correlation id
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// GetRequestID returns the request correlation id or ""
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
