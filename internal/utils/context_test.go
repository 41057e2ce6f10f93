package utils

import (
	"context"
	"testing"

	"github.com/greenjets/bladerunner-portal/models"
)

func TestGetUserIDFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if userID != 42 {
		t.Errorf("expected 42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong value type")
	}
}

func TestGetRoleFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), RoleCtxKey, models.RoleAdmin)

	role, ok := GetRoleFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if role != models.RoleAdmin {
		t.Errorf("expected admin, got %s", role)
	}
}

func TestGetRoleFromContext_Missing(t *testing.T) {
	if _, ok := GetRoleFromContext(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
}
