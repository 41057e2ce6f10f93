// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenJets Engineering

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/greenjets/bladerunner-portal/internal/config"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.Handler) (PortalGateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gw, err := NewHTTPPortalGateway(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return gw, srv
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain host:port", "localhost:8080", "http://localhost:8080", false},
		{"full url", "http://localhost:8080/", "http://localhost:8080", false},
		{"https kept", "https://portal.internal", "https://portal.internal", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdminLogin_StoresToken(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/admin/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "admin@x.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.LoginResponse{
			Token: "fresh-token",
			User:  models.User{ID: 1, Role: models.RoleAdmin},
		})
	}))

	user, err := gw.AdminLogin(context.Background(), models.LoginRequest{Email: "admin@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "fresh-token", gw.Token())
}

func TestAdminLogin_ForbiddenMapped(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "access denied"})
	}))

	_, err := gw.AdminLogin(context.Background(), models.LoginRequest{Email: "user@x.com", Password: "pw"})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "access denied")
	assert.Empty(t, gw.Token())
}

func TestListUsers_SendsTokenHeader(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "session-token", r.Header.Get(authTokenHeader))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.User{{ID: 1, Username: "alice"}})
	}))
	gw.SetToken("session-token")

	users, err := gw.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestListUsers_UnauthorizedMapped(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "no token provided"})
	}))

	_, err := gw.ListUsers(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSetApproval_RoundTrip(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/users/5/approve", r.URL.Path)

		var req models.ApprovalRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.True(t, req.Approved)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: 5, Approved: true})
	}))
	gw.SetToken("session-token")

	updated, err := gw.SetApproval(context.Background(), 5, true)
	require.NoError(t, err)
	assert.True(t, updated.Approved)
}

func TestSetApproval_NotFoundMapped(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "user not found"})
	}))
	gw.SetToken("session-token")

	_, err := gw.SetApproval(context.Background(), 99, true)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUser_Success(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/users/5", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "user deleted successfully"})
	}))
	gw.SetToken("session-token")

	require.NoError(t, gw.DeleteUser(context.Background(), 5))
}

func TestVerify_ServiceUnavailableMapped(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "service temporarily unavailable"})
	}))
	gw.SetToken("session-token")

	_, err := gw.Verify(context.Background())
	require.ErrorIs(t, err, ErrServiceUnavailable)
}
