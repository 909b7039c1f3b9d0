// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx answers. Otherwise the error wraps the
// sentinel matching the status and carries the server message and any
// validation details.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// errorMessage renders the server error envelope as one line. Bodies that
// are not an envelope are returned trimmed.
func errorMessage(body []byte) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Errors == "" {
		return strings.TrimSpace(string(body))
	}

	if len(envelope.Details) == 0 {
		return envelope.Errors
	}

	details := make([]string, 0, len(envelope.Details))
	for _, d := range envelope.Details {
		details = append(details, d.Field+" "+d.Message)
	}

	return envelope.Errors + " (" + strings.Join(details, "; ") + ")"
}
