package http

import (
	"errors"
	"net/http"

	"github.com/greenjets/bladerunner-portal/internal/service"
	"github.com/greenjets/bladerunner-portal/internal/store"
	"github.com/greenjets/bladerunner-portal/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccountNotApproved:      http.StatusForbidden,
	service.ErrNotAdmin:                http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrStorageUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// isDevelopment reports whether internal error details may be exposed in
// responses. Production responses stay generic.
func (h *Handler) isDevelopment() bool {
	return h.cfg.App.Environment == "development"
}

// writeError maps err to its HTTP status and writes the message body. A 500
// response carries the underlying error detail in development; everywhere
// else the body is the generic status text.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := http.StatusText(status)
	if status == http.StatusInternalServerError && h.isDevelopment() && err != nil {
		message = err.Error()
	}
	utils.WriteMessage(w, message, status)
}
