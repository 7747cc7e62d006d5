package http

import (
	"net/http"

	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/utils"
)

func (h *Handler) getFilters(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	facets, err := h.services.StatsService.GetFacets(r.Context(), session.UserID)
	if err != nil {
		writeError(w, log, err, "fetching filter facets failed")
		return
	}

	utils.WriteJSON(w, facets, http.StatusOK)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	stats, err := h.services.StatsService.GetStats(r.Context(), session.UserID)
	if err != nil {
		writeError(w, log, err, "computing statistics failed")
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
