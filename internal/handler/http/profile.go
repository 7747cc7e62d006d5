package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/gumi-collection/internal/app"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/utils"
	"github.com/MKhiriev/gumi-collection/models"
)

// getProfile answers 404 with app.MsgProfileNotFound until the client has
// provisioned the profile.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), session.UserID)
	if err != nil {
		writeError(w, log, err, "fetching profile failed")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) upsertProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	profile.UserID = session.UserID

	saved, err := h.services.ProfileService.UpsertProfile(r.Context(), profile)
	if err != nil {
		writeError(w, log, err, "saving profile failed")
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}
