package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/utils"
	"github.com/tchaikit/ea-dashboard/models"
)

func (h *Handler) listSettings(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.services.SettingService.GroupedByCategory(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, grouped, http.StatusOK)
}

func (h *Handler) listSettingsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	settings, err := h.services.SettingService.ListByCategory(r.Context(), category)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if settings == nil {
		settings = []models.Setting{}
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	setting, err := h.services.SettingService.GetByKey(r.Context(), key)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, setting, http.StatusOK)
}

func (h *Handler) upsertSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var upsert models.SettingUpsert
	if err := json.NewDecoder(r.Body).Decode(&upsert); err != nil {
		log.Err(err).Str("func", "*Handler.upsertSetting").Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, errInvalidJSON)
		return
	}

	setting, err := h.services.SettingService.Upsert(r.Context(), upsert)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, setting, http.StatusOK)
}

func (h *Handler) bulkUpsertSettings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var upserts []models.SettingUpsert
	if err := json.NewDecoder(r.Body).Decode(&upserts); err != nil {
		log.Err(err).Str("func", "*Handler.bulkUpsertSettings").Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, errInvalidJSON)
		return
	}

	settings, err := h.services.SettingService.BulkUpsert(r.Context(), upserts)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if settings == nil {
		settings = []models.Setting{}
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSetting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key := chi.URLParam(r, "key")

	var update models.SettingUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateSetting").Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, errInvalidJSON)
		return
	}

	setting, err := h.services.SettingService.Update(r.Context(), key, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, setting, http.StatusOK)
}

func (h *Handler) deleteSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	if err := h.services.SettingService.Delete(r.Context(), key); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, deletedResponse{Deleted: true, Key: key}, http.StatusOK)
}
