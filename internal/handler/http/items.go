// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/gumi-collection/internal/app"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/utils"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/go-chi/chi/v5"
)

// maxPageLimit caps the limit query parameter of GET /api/items.
const maxPageLimit = 200

func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	req, err := parsePageRequest(r)
	if err != nil {
		writeError(w, log, err, "invalid page request")
		return
	}
	req.UserID = session.UserID

	page, err := h.services.ItemService.GetPage(r.Context(), req)
	if err != nil {
		writeError(w, log, err, "fetching item page failed")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// parsePageRequest reads offset, limit and count=exact. Missing values mean
// the first page of the default size.
func parsePageRequest(r *http.Request) (models.PageRequest, error) {
	query := r.URL.Query()
	req := models.PageRequest{Limit: models.PageSize, WithCount: query.Get("count") == "exact"}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return req, fmt.Errorf("%w: offset %q", errInvalidPagination, raw)
		}
		req.Offset = offset
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return req, fmt.Errorf("%w: limit %q", errInvalidPagination, raw)
		}
		req.Limit = min(limit, maxPageLimit)
	}

	return req, nil
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	item, err := h.services.ItemService.GetItem(r.Context(), session.UserID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err, "fetching item failed")
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) upsertItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var item models.CollectionItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	saved, err := h.services.ItemService.SaveItem(r.Context(), session.UserID, item)
	if err != nil {
		writeError(w, log, err, "saving item failed")
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) patchItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	patch.ID = chi.URLParam(r, "id")
	patch.UserID = session.UserID

	if err := h.services.ItemService.PatchItem(r.Context(), patch); err != nil {
		writeError(w, log, err, "patching item failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAllItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	deleted, err := h.services.ItemService.ClearAll(r.Context(), session.UserID)
	if err != nil {
		writeError(w, log, err, "clearing collection failed")
		return
	}

	utils.WriteJSON(w, map[string]int64{"deleted": deleted}, http.StatusOK)
}
