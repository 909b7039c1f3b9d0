// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/app"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/store"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/internal/validators"
	"github.com/MKhiriev/go-contacts/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	ErrMalformedJSON:                 http.StatusBadRequest,
	service.ErrWrongCredentials:      http.StatusBadRequest,
	service.ErrUnauthenticated:       http.StatusUnauthorized,
	ErrNoUserInContext:               http.StatusUnauthorized,
	service.ErrContactNotFound:       http.StatusNotFound,
	service.ErrAddressNotFound:       http.StatusNotFound,
	service.ErrUsernameAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:   app.MsgInvalidDataProvided,
	ErrMalformedJSON:                 app.MsgMalformedJSON,
	service.ErrWrongCredentials:      app.MsgWrongCredentials,
	service.ErrUnauthenticated:       app.MsgUnauthorized,
	ErrNoUserInContext:               app.MsgUnauthorized,
	service.ErrContactNotFound:       app.MsgContactNotFound,
	service.ErrAddressNotFound:       app.MsgAddressNotFound,
	service.ErrUsernameAlreadyExists: app.MsgUsernameAlreadyExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError answers with the status and envelope matching err. Server-side
// failures are logged in full and reported with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", "writeError").Int("status", status).Msg("request rejected")
	}

	resp := models.ErrorResponse{Errors: messageFromError(err)}

	var violations validators.ValidationErrors
	if errors.As(err, &violations) {
		resp.Details = violations
	}

	if _, werr := utils.WriteJSON(w, resp, status); werr != nil {
		log.Err(werr).Str("func", "writeError").Msg("failed to write error response")
	}
}

// writeData answers 200 with data inside the success envelope.
func writeData[T any](w http.ResponseWriter, r *http.Request, data T) {
	if _, err := utils.WriteJSON(w, models.DataResponse[T]{Data: data}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeData").Msg("failed to write response")
	}
}
