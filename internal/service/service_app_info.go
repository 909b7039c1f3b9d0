// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-contacts/internal/config"
)

type appInfoService struct {
	version string
}

// NewAppInfoService serves the version reported by GET /api/version.
// cmd/server fills cfg.Version from the build version when it is not
// configured, so an empty value here is a startup error.
func NewAppInfoService(cfg config.App) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
