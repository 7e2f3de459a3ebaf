package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/service"
	"github.com/tchaikit/ea-dashboard/internal/store"
	"github.com/tchaikit/ea-dashboard/internal/utils"
	"github.com/tchaikit/ea-dashboard/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials loginRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, errInvalidJSON)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Warn().Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword):
			log.Warn().Err(err).Msg("no user was found/wrong password")
			utils.WriteJSON(w, errorResponse{Error: "invalid email/password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", user.ID.String()).Msg("user successfully logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, loginResponse{Token: token.SignedString, User: user}, http.StatusOK)
}
