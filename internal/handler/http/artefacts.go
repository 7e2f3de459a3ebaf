package http

import (
	"encoding/json"
	"net/http"

	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/utils"
	"github.com/tchaikit/ea-dashboard/models"
)

// deletedResponse acknowledges a successful delete.
type deletedResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id,omitempty"`
	Key     string `json:"key,omitempty"`
}

func (h *Handler) listArtefacts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseArtefactFilter(r)
	if err != nil {
		h.writeBadRequest(w, r, err)
		return
	}

	artefacts, meta, err := h.services.ArtefactService.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if artefacts == nil {
		artefacts = []models.Artefact{}
	}

	utils.WriteJSON(w, models.ListResponse[models.Artefact]{Data: artefacts, Meta: meta}, http.StatusOK)
}

func (h *Handler) getArtefact(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		h.writeBadRequest(w, r, err)
		return
	}

	artefact, err := h.services.ArtefactService.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, artefact, http.StatusOK)
}

func (h *Handler) createArtefact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var artefact models.Artefact
	if err := json.NewDecoder(r.Body).Decode(&artefact); err != nil {
		log.Err(err).Str("func", "*Handler.createArtefact").Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, errInvalidJSON)
		return
	}

	created, err := h.services.ArtefactService.Create(r.Context(), artefact)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateArtefact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := parseUUIDParam(r, "id")
	if err != nil {
		h.writeBadRequest(w, r, err)
		return
	}

	var update models.ArtefactUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateArtefact").Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, errInvalidJSON)
		return
	}

	updated, err := h.services.ArtefactService.Update(r.Context(), id, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteArtefact(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		h.writeBadRequest(w, r, err)
		return
	}

	if err := h.services.ArtefactService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, deletedResponse{Deleted: true, ID: id.String()}, http.StatusOK)
}

func (h *Handler) artefactStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.ArtefactService.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
