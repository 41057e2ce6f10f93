package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/store"
	"github.com/greenjets/bladerunner-portal/internal/utils"
	"github.com/greenjets/bladerunner-portal/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserAdminService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) approveUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDParam(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid user id in route")
		utils.WriteMessage(w, ErrInvalidUserID.Error(), http.StatusBadRequest)
		return
	}

	var req models.ApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserAdminService.SetApproval(ctx, id, req.Approved)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Warn().Int64("id", id).Msg("approval target not found")
			utils.WriteMessage(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("approval update failed")
			h.writeError(w, err)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDParam(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid user id in route")
		utils.WriteMessage(w, ErrInvalidUserID.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.UserAdminService.DeleteUser(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Warn().Int64("id", id).Msg("delete target not found")
			utils.WriteMessage(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", id).Msg("user delete failed")
			h.writeError(w, err)
			return
		}
	}

	utils.WriteMessage(w, "user deleted successfully", http.StatusOK)
}

func userIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidUserID
	}
	return id, nil
}
