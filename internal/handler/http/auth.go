package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/gumi-collection/internal/app"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/utils"
	"github.com/MKhiriev/gumi-collection/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, log, err, "user registration failed")
		return
	}

	h.writeSession(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, log, err, "user login failed")
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	h.writeSession(w, r, foundUser)
}

// writeSession issues a token for user, returns it in the Authorization
// header and the session as the JSON body.
func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err := utils.WriteJSON(w, models.Session{UserID: user.UserID, Login: user.Login}, http.StatusOK); err != nil {
		log.Err(err).Msg("writing session response failed")
	}
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, session, http.StatusOK)
}
