// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultServerAddress   = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultTokenIssuer     = "gumi-collection"
	defaultTokenDuration   = 7 * 24 * time.Hour
	defaultRedisTTL        = 5 * time.Minute
	defaultImageMaxSide    = 800
	defaultMaxUploadBytes  = 10 << 20
	defaultAdapterTimeout  = 15 * time.Second
	defaultRefreshInterval = time.Minute
	defaultLocalDSN        = "gumi_cache.db"
)

// setDefaults fills unset fields with working defaults.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultServerAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Storage.Redis.TTL == 0 {
		cfg.Storage.Redis.TTL = defaultRedisTTL
	}
	if cfg.Storage.Images.MaxSide == 0 {
		cfg.Storage.Images.MaxSide = defaultImageMaxSide
	}
	if cfg.Storage.Images.MaxUploadBytes == 0 {
		cfg.Storage.Images.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.Storage.Local.DSN == "" {
		cfg.Storage.Local.DSN = defaultLocalDSN
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = cfg.Server.HTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
}

// validate checks the invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 || cfg.Storage.Redis.TTL < 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.Images.MaxSide < 0 || cfg.Storage.Images.MaxUploadBytes < 0 {
		return ErrInvalidStorageConfigs
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

// ValidateServer checks what the record store needs to start.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
