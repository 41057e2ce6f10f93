package http

import (
	"errors"
	"net/http"

	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/store"
	"github.com/greenjets/bladerunner-portal/internal/utils"
)

// adminOnly gates admin routes. It runs after auth and re-fetches the user
// record by id: the role claim inside the token is a snapshot from issuance
// time, so an account demoted or deleted after login loses admin access here
// even while its token is still formally valid.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			log.Error().Msg("no user id in request context")
			utils.WriteMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.UserByID(ctx, userID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Warn().Int64("id", userID).Msg("admin gate: token subject no longer exists")
				utils.WriteMessage(w, "access denied", http.StatusForbidden)
				return
			case errors.Is(err, store.ErrStorageUnavailable):
				log.Err(err).Msg("admin gate: storage unavailable")
				utils.WriteMessage(w, "service temporarily unavailable", http.StatusServiceUnavailable)
				return
			default:
				log.Err(err).Msg("admin gate: user lookup failed")
				utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		if !user.IsAdmin() {
			log.Warn().Int64("id", userID).Msg("admin gate: non-admin access attempt")
			utils.WriteMessage(w, "access denied", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
