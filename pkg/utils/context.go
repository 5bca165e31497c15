package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey  contextKey = "user_id"
	RoleKey    contextKey = "role"
	LoyaltyKey contextKey = "is_loyalty_member"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

// GetLoyaltyFromContext reports whether the authenticated user is a
// loyalty member; false when unauthenticated.
func GetLoyaltyFromContext(ctx context.Context) bool {
	loyalty, ok := ctx.Value(LoyaltyKey).(bool)
	return ok && loyalty
}

func SetUserContext(ctx context.Context, userID uuid.UUID, role string, isLoyaltyMember bool) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	ctx = context.WithValue(ctx, LoyaltyKey, isLoyaltyMember)
	return ctx
}
