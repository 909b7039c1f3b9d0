// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the go-contacts command line client.
//
// Each subcommand parses its own flags and calls one [adapter.ContactsAPI]
// method. Results are printed to the configured writer as indented JSON.
package client
