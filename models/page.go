// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Paging describes a windowed result set.
type Paging struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalPages int `json:"totalPages"`
}

// Page is a single window of a larger result set.
type Page[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

// TotalPages returns ceil(total / perPage). A non-positive perPage yields 0.
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}

	return int((total + int64(perPage) - 1) / int64(perPage))
}
