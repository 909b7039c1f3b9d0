// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the contacts API.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: panic recovery, trace ids, access logging, gzip, CORS,
// per-request timeouts and X-API-TOKEN authentication. Errors returned by
// services are converted into HTTP statuses and the JSON error envelope in
// exactly one place, [writeError].
package http
