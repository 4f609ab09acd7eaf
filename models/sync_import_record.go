// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ItemErrorCode classifies why a single item could not be applied.
type ItemErrorCode string

const (
	ItemErrorNone             ItemErrorCode = ""
	ItemErrorNoClass          ItemErrorCode = "NO_CLASS"
	ItemErrorBadContent       ItemErrorCode = "BAD_CONTENT"
	ItemErrorMissing          ItemErrorCode = "MISSING"
	ItemErrorUnsetProperty    ItemErrorCode = "UNSET_PROPERTY"
	ItemErrorUnexpected       ItemErrorCode = "UNEXPECTED"
	ItemErrorRecordUnexpected ItemErrorCode = "RECORD_UNEXPECTED"
	ItemErrorNotCommitted     ItemErrorCode = "ITEM_NOT_COMMITTED"
)

// SyncImportItem is the per-item part of a [SyncImportRecord].
type SyncImportItem struct {
	Key          SyncItemKey   `json:"key" xml:"key,attr"`
	State        SyncItemState `json:"state" xml:"state,attr"`
	ErrorCode    ItemErrorCode `json:"error_code,omitempty" xml:"errorCode,attr,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty" xml:",chardata"`
}

// SyncImportRecord is the receipt of one ingested record. The receiver
// stores it locally and returns it to the sender.
type SyncImportRecord struct {
	ImportID int64 `json:"-" xml:"-"`

	// UUID is the original uuid of the ingested record.
	UUID            string           `json:"uuid" xml:"uuid,attr"`
	Creator         string           `json:"creator" xml:"creator,attr"`
	DatabaseVersion string           `json:"database_version" xml:"databaseVersion,attr"`
	Timestamp       time.Time        `json:"timestamp" xml:"timestamp,attr"`
	RetryCount      int              `json:"retry_count" xml:"retryCount,attr"`
	State           SyncRecordState  `json:"state" xml:"state,attr"`
	ErrorMessage    string           `json:"error_message,omitempty" xml:"error,omitempty"`
	Items           []SyncImportItem `json:"items,omitempty" xml:"item"`
}

// HasErrors reports whether any item failed.
func (r *SyncImportRecord) HasErrors() bool {
	for _, item := range r.Items {
		if item.ErrorCode != ItemErrorNone {
			return true
		}
	}
	return false
}
