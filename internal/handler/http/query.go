package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/models"
)

// dateOnlyFormat is accepted next to RFC3339 for audit-log date bounds.
const dateOnlyFormat = "2006-01-02"

// parseUUIDParam reads a UUID route parameter.
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// parsePagination reads the optional page/limit query parameters. Both must
// be positive integers when present; defaults are applied downstream.
func parsePagination(r *http.Request) (models.Pagination, error) {
	var p models.Pagination

	page, err := parsePositiveInt(r, "page")
	if err != nil {
		return p, err
	}
	limit, err := parsePositiveInt(r, "limit")
	if err != nil {
		return p, err
	}

	p.Page = page
	p.Limit = limit
	return p, nil
}

func parsePositiveInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, raw)
	}
	return value, nil
}

func parseArtefactFilter(r *http.Request) (models.ArtefactFilter, error) {
	var filter models.ArtefactFilter
	query := r.URL.Query()

	if raw := query.Get("type"); raw != "" {
		t := models.ArtefactType(raw)
		if !t.Valid() {
			return filter, fmt.Errorf("unknown artefact type %q", raw)
		}
		filter.Type = t
	}
	if raw := query.Get("status"); raw != "" {
		s := models.ArtefactStatus(raw)
		if !s.Valid() {
			return filter, fmt.Errorf("unknown artefact status %q", raw)
		}
		filter.Status = s
	}
	if raw := query.Get("riskLevel"); raw != "" {
		l := models.RiskLevel(raw)
		if !l.Valid() {
			return filter, fmt.Errorf("unknown risk level %q", raw)
		}
		filter.RiskLevel = l
	}
	filter.Department = query.Get("department")
	filter.Search = query.Get("search")

	pagination, err := parsePagination(r)
	if err != nil {
		return filter, err
	}
	filter.Pagination = pagination

	return filter, nil
}

func parseRelationshipFilter(r *http.Request) (models.RelationshipFilter, error) {
	var filter models.RelationshipFilter
	query := r.URL.Query()

	if raw := query.Get("sourceId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid sourceId %q", raw)
		}
		filter.SourceID = id
	}
	if raw := query.Get("targetId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid targetId %q", raw)
		}
		filter.TargetID = id
	}
	if raw := query.Get("type"); raw != "" {
		t := models.RelationshipType(raw)
		if !t.Valid() {
			return filter, fmt.Errorf("unknown relationship type %q", raw)
		}
		filter.Type = t
	}

	pagination, err := parsePagination(r)
	if err != nil {
		return filter, err
	}
	filter.Pagination = pagination

	return filter, nil
}

func parseAuditLogFilter(r *http.Request) (models.AuditLogFilter, error) {
	var filter models.AuditLogFilter
	query := r.URL.Query()

	if raw := query.Get("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid userId %q", raw)
		}
		filter.UserID = id
	}
	filter.Action = query.Get("action")
	filter.EntityType = query.Get("entityType")

	if raw := query.Get("startDate"); raw != "" {
		start, err := parseDateBound(raw, false)
		if err != nil {
			return filter, fmt.Errorf("invalid startDate %q", raw)
		}
		filter.StartDate = &start
	}
	if raw := query.Get("endDate"); raw != "" {
		end, err := parseDateBound(raw, true)
		if err != nil {
			return filter, fmt.Errorf("invalid endDate %q", raw)
		}
		filter.EndDate = &end
	}

	pagination, err := parsePagination(r)
	if err != nil {
		return filter, err
	}
	filter.Pagination = pagination

	return filter, nil
}

// parseDateBound accepts RFC3339 timestamps or bare dates. A bare date used
// as the end of a range covers the whole day, so it is pushed to the last
// instant before midnight.
func parseDateBound(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse(dateOnlyFormat, raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
