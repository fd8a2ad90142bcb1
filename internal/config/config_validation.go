// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Only values that are
// invalid regardless of the front end are rejected here.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.NotificationsLimit < 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverMattnSQLite, DriverModernSQLite:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.App.Opener {
	case OpenerAuto, OpenerViewer, OpenerShare:
	default:
		return ErrInvalidAppConfigs
	}

	return nil
}
