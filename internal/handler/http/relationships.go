package http

import (
	"encoding/json"
	"net/http"

	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/utils"
	"github.com/tchaikit/ea-dashboard/models"
)

func (h *Handler) listRelationships(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRelationshipFilter(r)
	if err != nil {
		h.writeBadRequest(w, r, err)
		return
	}

	relationships, meta, err := h.services.RelationshipService.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if relationships == nil {
		relationships = []models.ResolvedRelationship{}
	}

	utils.WriteJSON(w, models.ListResponse[models.ResolvedRelationship]{Data: relationships, Meta: meta}, http.StatusOK)
}

func (h *Handler) createRelationship(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var relationship models.Relationship
	if err := json.NewDecoder(r.Body).Decode(&relationship); err != nil {
		log.Err(err).Str("func", "*Handler.createRelationship").Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, errInvalidJSON)
		return
	}

	created, err := h.services.RelationshipService.Create(r.Context(), relationship)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteRelationship(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		h.writeBadRequest(w, r, err)
		return
	}

	if err := h.services.RelationshipService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, deletedResponse{Deleted: true, ID: id.String()}, http.StatusOK)
}
