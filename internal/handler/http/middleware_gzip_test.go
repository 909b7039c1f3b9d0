// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echo answers "Processed: <body>" as JSON-ish text.
var echo = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Processed: " + string(body)))
})

func TestGZip(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		acceptEncoding  string
		contentEncoding string
		body            []byte
		compressBody    bool
		wantStatus      int
		wantBody        string
		wantGzipped     bool
	}{
		{
			name:           "compress response when client accepts gzip",
			method:         http.MethodGet,
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantBody:       "Processed: ",
			wantGzipped:    true,
		},
		{
			name:       "no compression when client doesn't accept gzip",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantBody:   "Processed: ",
		},
		{
			name:           "accept-encoding list with quality values",
			method:         http.MethodGet,
			acceptEncoding: "deflate, gzip;q=1.0, br",
			wantStatus:     http.StatusOK,
			wantBody:       "Processed: ",
			wantGzipped:    true,
		},
		{
			name:            "decompress request and compress response",
			method:          http.MethodPost,
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			body:            []byte(`{"first_name":"Eko"}`),
			compressBody:    true,
			wantStatus:      http.StatusOK,
			wantBody:        `Processed: {"first_name":"Eko"}`,
			wantGzipped:     true,
		},
		{
			name:            "invalid gzip request body",
			method:          http.MethodPost,
			contentEncoding: "gzip",
			body:            []byte("not gzipped data"),
			wantStatus:      http.StatusBadRequest,
		},
		{
			name:           "HEAD is never compressed",
			method:         http.MethodHead,
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantBody:       "Processed: ",
		},
		{
			name:           "large body",
			method:         http.MethodPost,
			acceptEncoding: "gzip",
			body:           []byte(strings.Repeat("Resi ", 1000)),
			wantStatus:     http.StatusOK,
			wantBody:       "Processed: " + strings.Repeat("Resi ", 1000),
			wantGzipped:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.body
			if tt.compressBody {
				body = gzipBytes(t, body)
			}

			req := httptest.NewRequest(tt.method, "/api/contacts", bytes.NewReader(body))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rec := httptest.NewRecorder()

			withGZip(echo).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")
			if tt.wantStatus != http.StatusOK {
				return
			}

			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rec.Body.Bytes()))
				return
			}
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGZip_ImplicitHeaderStillMarksEncoding(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("1.0.0"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "1.0.0", gunzip(t, rec.Body.Bytes()))
}

func TestGZip_UntouchedResponseStaysEmpty(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Zero(t, rec.Body.Len())
}
