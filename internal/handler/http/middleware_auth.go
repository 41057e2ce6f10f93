package http

import (
	"context"
	"net/http"

	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/utils"
)

// authTokenHeader carries the raw signed token. The portal uses a custom
// header rather than a standard bearer scheme; clients attach the token
// value directly with no scheme prefix.
const authTokenHeader = "x-auth-token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the token header, validates the value via
// [service.AuthService.ParseToken], and — on success — stores the
// authenticated identity (user id and role) in the request context before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent, or when the token is expired, malformed or signed with the wrong
// key. The database is not consulted here: the {id, role} snapshot frozen into
// the token is trusted for the token's lifetime. Routes that need current
// state (the admin gate, verify) re-fetch the record themselves.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get(authTokenHeader)
		if tokenString == "" {
			log.Warn().Err(ErrNoTokenProvided).Send()
			utils.WriteMessage(w, ErrNoTokenProvided.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token rejected")
			utils.WriteMessage(w, "token is not valid", http.StatusUnauthorized)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID())
		ctx = context.WithValue(ctx, utils.RoleCtxKey, token.Role())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
