package http

import (
	"bytes"
	"mime"
	"net/http"

	"github.com/MKhiriev/gumi-collection/internal/csvcodec"
	"github.com/MKhiriev/gumi-collection/internal/logger"
)

func (h *Handler) exportItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	items, err := h.services.ItemService.GetAllItems(r.Context(), session.UserID)
	if err != nil {
		writeError(w, log, err, "loading items for export failed")
		return
	}

	var buf bytes.Buffer
	if err := csvcodec.Export(&buf, items); err != nil {
		writeError(w, log, err, "encoding export failed")
		return
	}

	log.Info().Int64("user_id", session.UserID).Int("items", len(items)).Msg("collection exported")
	writeCSV(w, csvcodec.ExportFileName(h.now()), buf.Bytes())
}

func (h *Handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	writeCSV(w, csvcodec.TemplateFileName, []byte(csvcodec.Template()))
}

// writeCSV sends data as a CSV attachment. Non-ASCII file names are encoded
// per RFC 2231.
func writeCSV(w http.ResponseWriter, fileName string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
