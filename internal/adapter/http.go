package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/greenjets/bladerunner-portal/internal/config"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/utils"
	"github.com/greenjets/bladerunner-portal/models"
)

// authTokenHeader must match the header the server's auth middleware reads.
const authTokenHeader = "x-auth-token"

type httpPortalGateway struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPPortalGateway constructs an HTTP/REST implementation of
// [PortalGateway]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPPortalGateway(cfg config.ClientAdapter, logger *logger.Logger) (PortalGateway, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpPortalGateway{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [PortalGateway]. It stores token (whitespace-trimmed)
// for use in the token header of all subsequent authenticated requests.
func (h *httpPortalGateway) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [PortalGateway].
func (h *httpPortalGateway) Token() string {
	return h.token
}

// AdminLogin implements [PortalGateway]. It POSTs the credentials to
// POST /api/auth/admin/login and, on success, stores the returned token via
// SetToken.
func (h *httpPortalGateway) AdminLogin(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&loginResp).
		Post("/api/auth/admin/login")
	if err != nil {
		return models.User{}, fmt.Errorf("admin login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.SetToken(loginResp.Token)
	return loginResp.User, nil
}

// Verify implements [PortalGateway]. It GETs /api/auth/verify with the stored
// token and returns the current account record behind it.
func (h *httpPortalGateway) Verify(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/auth/verify")
	if err != nil {
		return models.User{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListUsers implements [PortalGateway]. It GETs /api/users.
func (h *httpPortalGateway) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&users).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// SetApproval implements [PortalGateway]. It PUTs the approval flag to
// PUT /api/users/{id}/approve and returns the updated record.
func (h *httpPortalGateway) SetApproval(ctx context.Context, id int64, approved bool) (models.User, error) {
	var updated models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ApprovalRequest{Approved: approved}).
		SetResult(&updated).
		Put(fmt.Sprintf("/api/users/%d/approve", id))
	if err != nil {
		return models.User{}, fmt.Errorf("set approval request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser implements [PortalGateway]. It DELETEs /api/users/{id}.
func (h *httpPortalGateway) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/users/%d", id))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest builds a request carrying the stored session token.
func (h *httpPortalGateway) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(authTokenHeader, h.token)
}
