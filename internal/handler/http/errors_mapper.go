package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/gumi-collection/internal/app"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/service"
	"github.com/MKhiriev/gumi-collection/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrItemNameRequired:        http.StatusBadRequest,
	service.ErrNoFieldsToUpdate:        http.StatusBadRequest,
	service.ErrValidationNoUserID:      http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,
	service.ErrInvalidImage:            http.StatusBadRequest,
	service.ErrImageTooLarge:           http.StatusBadRequest,
	errInvalidPagination:               http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrProfileNotFound:    http.StatusNotFound,
	store.ErrItemNotFound:       http.StatusNotFound,
	store.ErrItemNotSaved:       http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the response bodies the client adapter matches on.
var errorMessageMap = map[error]string{
	service.ErrWrongPassword:           app.MsgInvalidLoginPassword,
	store.ErrNoUserWasFound:            app.MsgInvalidLoginPassword,
	service.ErrTokenIsExpired:          app.MsgTokenIsExpired,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrItemNameRequired:        app.MsgItemNameRequired,
	service.ErrNoFieldsToUpdate:        app.MsgNoFieldsToUpdate,
	service.ErrValidationNoUserID:      app.MsgNoUserIDProvided,
	service.ErrInvalidImage:            app.MsgInvalidImage,
	service.ErrImageTooLarge:           app.MsgImageTooLarge,
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	errInvalidPagination:               app.MsgInvalidDataProvided,
	store.ErrLoginAlreadyExists:        app.MsgLoginAlreadyExists,
	store.ErrProfileNotFound:           app.MsgProfileNotFound,
	store.ErrItemNotFound:              app.MsgItemNotFound,
	store.ErrItemNotSaved:              app.MsgItemConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the body for err. Specific sentinels win over
// ErrInvalidDataProvided, which wraps most validation failures.
func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if target != service.ErrInvalidDataProvided && errors.Is(err, target) {
			return msg
		}
	}
	if errors.Is(err, service.ErrInvalidDataProvided) {
		return app.MsgInvalidDataProvided
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status and message.
func writeError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}
	http.Error(w, messageFromError(err), status)
}
