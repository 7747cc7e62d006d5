package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/gumi-collection/internal/app"
	"github.com/MKhiriev/gumi-collection/internal/service"
	"github.com/MKhiriev/gumi-collection/internal/store"
	"github.com/MKhiriev/gumi-collection/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusAndMessageFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNegativeAmount), wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidDataProvided},
		{name: "image too large wins", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrImageTooLarge), wantStatus: http.StatusBadRequest, wantMsg: app.MsgImageTooLarge},
		{name: "item missing", err: fmt.Errorf("patch: %w", store.ErrItemNotFound), wantStatus: http.StatusNotFound, wantMsg: app.MsgItemNotFound},
		{name: "foreign id", err: store.ErrItemNotSaved, wantStatus: http.StatusConflict, wantMsg: app.MsgItemConflict},
		{name: "sql failure", err: fmt.Errorf("%w: boom", store.ErrScanningRows), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
		{name: "unknown", err: errors.New("surprise"), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantMsg, messageFromError(tt.err))
		})
	}
}
