// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is the process-wide on/off switch and failure policy.
type SyncStatus string

const (
	// SyncStatusDisabled turns off both capture and transmission.
	SyncStatusDisabled SyncStatus = "DISABLED_SYNC_AND_HISTORY"
	// SyncStatusStrict aborts the surrounding transaction on any capture or
	// ingest error.
	SyncStatusStrict SyncStatus = "ENABLED_STRICT"
	// SyncStatusLenient logs capture and ingest errors and carries on.
	SyncStatusLenient SyncStatus = "ENABLED_CONTINUE_ON_ERROR"
)

// IsEnabled reports whether capture and transmission are on.
func (s SyncStatus) IsEnabled() bool {
	return s == SyncStatusStrict || s == SyncStatusLenient
}

// IsStrict reports whether errors must abort processing.
func (s SyncStatus) IsStrict() bool {
	return s == SyncStatusStrict
}

// ParseSyncStatus maps a stored property value to a [SyncStatus]. Unknown
// or empty values fall back to the lenient mode.
func ParseSyncStatus(v string) SyncStatus {
	switch SyncStatus(v) {
	case SyncStatusDisabled, SyncStatusStrict, SyncStatusLenient:
		return SyncStatus(v)
	}
	return SyncStatusLenient
}

// Global property keys.
const (
	PropertyServerUUID        = "synchronization.server_uuid"
	PropertyServerName        = "synchronization.server_name"
	PropertyAdminEmail        = "synchronization.admin_email"
	PropertyMaxRecords        = "synchronization.max_records"
	PropertyMaxRetryCount     = "synchronization.max_retry_count"
	PropertyEnableCompression = "synchronization.enable_compression"
	PropertySyncStatus        = "synchronization.sync_status"
	PropertyDatabaseVersion   = "synchronization.version"
)

// Defaults applied when a property is absent or invalid.
const (
	DefaultMaxRecords      = 50
	DefaultMaxRetryCount   = 5
	DefaultDatabaseVersion = "1.0"
	// StaleSyncThreshold flags a peer whose last successful sync is older.
	StaleSyncThreshold = 24 * time.Hour
)

// GlobalProperty is one row of the key/value property store.
type GlobalProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SyncStatistics summarizes the backlog towards one peer.
type SyncStatistics struct {
	ServerUUID   string                    `json:"server_uuid"`
	Nickname     string                    `json:"nickname"`
	LastSync     *time.Time                `json:"last_sync,omitempty"`
	PendingCount int64                     `json:"pending_count"`
	Stale        bool                      `json:"stale"`
	StateCounts  map[SyncRecordState]int64 `json:"state_counts"`
}

// ServerInfo identifies a running server.
type ServerInfo struct {
	Version         string     `json:"version"`
	ServerUUID      string     `json:"server_uuid"`
	ServerName      string     `json:"server_name"`
	DatabaseVersion string     `json:"database_version"`
	SyncStatus      SyncStatus `json:"sync_status"`
}
