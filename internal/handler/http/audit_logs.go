package http

import (
	"encoding/json"
	"net/http"

	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/utils"
	"github.com/tchaikit/ea-dashboard/models"
)

func (h *Handler) listAuditLogs(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAuditLogFilter(r)
	if err != nil {
		h.writeBadRequest(w, r, err)
		return
	}

	entries, meta, err := h.services.AuditLogService.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.ResolvedAuditLog{}
	}

	utils.WriteJSON(w, models.ListResponse[models.ResolvedAuditLog]{Data: entries, Meta: meta}, http.StatusOK)
}

func (h *Handler) createAuditLog(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var entry models.AuditLog
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Str("func", "*Handler.createAuditLog").Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, errInvalidJSON)
		return
	}

	created, err := h.services.AuditLogService.Create(r.Context(), entry)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
