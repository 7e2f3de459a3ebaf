package http

import (
	"errors"
	"net/http"

	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/service"
	"github.com/tchaikit/ea-dashboard/internal/store"
	"github.com/tchaikit/ea-dashboard/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrArtefactNotFound:     http.StatusNotFound,
	store.ErrRelationshipNotFound: http.StatusNotFound,
	store.ErrUserNotFound:         http.StatusNotFound,
	store.ErrSettingNotFound:      http.StatusNotFound,
	store.ErrEmailAlreadyExists:   http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps err to a status code and writes the {"error": ...} body.
// Server-side failures are logged at error level, client mistakes at warn.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		utils.WriteJSON(w, errorResponse{Error: http.StatusText(status)}, status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteJSON(w, errorResponse{Error: err.Error()}, status)
}

// writeBadRequest reports a request parsing or validation failure.
func (h *Handler) writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	log.Warn().Err(err).Msg("bad request")
	utils.WriteJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
}
