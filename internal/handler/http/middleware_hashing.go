package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/gumi-collection/internal/app"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/utils"
)

// checkHash verifies the HashSHA256 header against the raw request body.
// Without a configured key every request passes.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.signer.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashHeader)
		if !h.signer.Verify(body, signature) {
			log.Error().Str("func", "*Handler.checkHash").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
