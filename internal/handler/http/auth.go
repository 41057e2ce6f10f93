package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/greenjets/bladerunner-portal/internal/logger"
	"github.com/greenjets/bladerunner-portal/internal/service"
	"github.com/greenjets/bladerunner-portal/internal/store"
	"github.com/greenjets/bladerunner-portal/internal/utils"
	"github.com/greenjets/bladerunner-portal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, "username, email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			utils.WriteMessage(w, "user already exists", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrStorageUnavailable):
			log.Err(err).Msg("storage unavailable")
			utils.WriteMessage(w, "service temporarily unavailable", http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.writeError(w, err)
			return
		}
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered, awaiting approval")

	// PasswordHash is excluded from serialization by the model
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.handleLogin(w, r, h.services.AuthService.Login)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	h.handleLogin(w, r, h.services.AuthService.AdminLogin)
}

// handleLogin runs the shared credential flow for both login endpoints: decode,
// authenticate, mint a token, respond with {token, user}.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request, authenticate func(ctx context.Context, req models.LoginRequest) (models.User, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := authenticate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, "email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Msg("login rejected: invalid credentials")
			utils.WriteMessage(w, "invalid credentials", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrAccountNotApproved):
			log.Warn().Msg("login rejected: account awaiting approval")
			utils.WriteMessage(w, "account pending approval", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrNotAdmin):
			log.Warn().Msg("admin login rejected: not an administrator")
			utils.WriteMessage(w, "access denied", http.StatusForbidden)
			return
		case errors.Is(err, store.ErrStorageUnavailable):
			log.Err(err).Msg("storage unavailable")
			utils.WriteMessage(w, "service temporarily unavailable", http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			h.writeError(w, err)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Token: token.String(), User: foundUser}, http.StatusOK)
}

// verify re-fetches the token subject's account so the client sees current
// database state rather than the snapshot frozen into the token.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

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
			log.Warn().Int64("id", userID).Msg("token subject no longer exists")
			utils.WriteMessage(w, "user not found", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrStorageUnavailable):
			log.Err(err).Msg("storage unavailable")
			utils.WriteMessage(w, "service temporarily unavailable", http.StatusServiceUnavailable)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token verification")
			h.writeError(w, err)
			return
		}
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
