package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/gumi-collection/internal/app"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/utils"
)

// multipartOverhead leaves room for the form boundaries around the file.
const multipartOverhead int64 = 64 << 10

// uploadImage converts the "file" part of a multipart form into a JPEG
// data URL.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	if _, ok := sessionFromRequest(w, r); !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Err(err).Int64("limit", h.maxUploadBytes).Msg("image upload too large")
			http.Error(w, app.MsgImageTooLarge, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("no image file in form")
		http.Error(w, app.MsgInvalidImage, http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.services.ImageService.ToDataURL(r.Context(), file)
	if err != nil {
		writeError(w, log, err, "converting image failed")
		return
	}

	log.Debug().Str("file", header.Filename).Int("url_len", len(url)).Msg("image converted")
	utils.WriteJSON(w, map[string]string{"url": url}, http.StatusOK)
}
