// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
	"time"
)

// SyncRecordState is the lifecycle state of a [SyncRecord], either on the
// record itself (delivery to the parent) or on a [SyncServerRecord]
// (delivery to one child).
type SyncRecordState string

const (
	// SyncRecordStateNew is the state of a freshly journaled record.
	SyncRecordStateNew SyncRecordState = "NEW"
	// SyncRecordStatePendingSend marks a record picked up by a running
	// transmission that has not finished yet.
	SyncRecordStatePendingSend SyncRecordState = "PENDING_SEND"
	// SyncRecordStateSent marks a record delivered without confirmation.
	SyncRecordStateSent SyncRecordState = "SENT"
	// SyncRecordStateSentAgain marks a record re-sent while still unconfirmed.
	SyncRecordStateSentAgain SyncRecordState = "SENT_AGAIN"
	// SyncRecordStateSendFailed marks a record whose last transmission failed.
	// It stays eligible for the next run.
	SyncRecordStateSendFailed SyncRecordState = "SEND_FAILED"
	// SyncRecordStateCommitted marks a record applied by the receiver.
	SyncRecordStateCommitted SyncRecordState = "COMMITTED"
	// SyncRecordStateFailed marks a record the receiver could not apply.
	SyncRecordStateFailed SyncRecordState = "FAILED"
	// SyncRecordStateFailedAndStopped marks a record that exhausted its retry
	// budget. An operator has to intervene.
	SyncRecordStateFailedAndStopped SyncRecordState = "FAILED_AND_STOPPED"
	// SyncRecordStateAlreadyCommitted is reported for a duplicate delivery.
	SyncRecordStateAlreadyCommitted SyncRecordState = "ALREADY_COMMITTED"
	// SyncRecordStateNotSupposedToSync marks a record the peer does not accept.
	SyncRecordStateNotSupposedToSync SyncRecordState = "NOT_SUPPOSED_TO_SYNC"
	// SyncRecordStateRejected marks a record refused because its sender is
	// not a registered peer.
	SyncRecordStateRejected SyncRecordState = "REJECTED"
)

// SyncToParentStates lists the states a record can be in and still be picked
// up for sending.
var SyncToParentStates = []SyncRecordState{
	SyncRecordStateNew,
	SyncRecordStatePendingSend,
	SyncRecordStateSendFailed,
	SyncRecordStateSent,
	SyncRecordStateSentAgain,
}

// DoneStates lists the states that do not count towards a pending backlog.
var DoneStates = []SyncRecordState{
	SyncRecordStateCommitted,
	SyncRecordStateAlreadyCommitted,
	SyncRecordStateNotSupposedToSync,
}

// IsFinal reports whether no further delivery attempt is made for s.
func (s SyncRecordState) IsFinal() bool {
	switch s {
	case SyncRecordStateCommitted,
		SyncRecordStateAlreadyCommitted,
		SyncRecordStateNotSupposedToSync,
		SyncRecordStateFailedAndStopped,
		SyncRecordStateRejected:
		return true
	}
	return false
}

// SyncItemState tells the receiver which kind of write an item replays.
type SyncItemState string

const (
	SyncItemStateNew     SyncItemState = "NEW"
	SyncItemStateUpdated SyncItemState = "UPDATED"
	SyncItemStateDeleted SyncItemState = "DELETED"
)

// SyncItemKey identifies the subject of a [SyncItem]: the entity uuid, or
// "ownerUUID|property" for a managed collection.
type SyncItemKey string

// CollectionKeySeparator joins the owner uuid and the property name of a
// collection item key.
const CollectionKeySeparator = "|"

// NewCollectionKey builds the composite key of a collection item.
func NewCollectionKey(ownerUUID, property string) SyncItemKey {
	return SyncItemKey(ownerUUID + CollectionKeySeparator + property)
}

// IsCollection reports whether k addresses a collection.
func (k SyncItemKey) IsCollection() bool {
	return strings.Contains(string(k), CollectionKeySeparator)
}

// String implements fmt.Stringer.
func (k SyncItemKey) String() string {
	return string(k)
}

// SyncItem is one serialized change to one entity or one collection.
type SyncItem struct {
	Key           SyncItemKey   `json:"key" xml:"key,attr"`
	State         SyncItemState `json:"state" xml:"state,attr"`
	ContainedType string        `json:"type" xml:"type,attr"`
	// Content is the serialized field snapshot, see the serialization package.
	Content string `json:"content" xml:"content"`
}

// SyncServerRecord carries the delivery state of one record for one child.
type SyncServerRecord struct {
	ServerRecordID int64           `json:"server_record_id"`
	RecordID       int64           `json:"record_id"`
	ServerID       int64           `json:"server_id"`
	State          SyncRecordState `json:"state"`
	RetryCount     int             `json:"retry_count"`
}

// SyncRecord groups the items captured in one host transaction.
type SyncRecord struct {
	// RecordID is the local serial number. It breaks timestamp ties in the
	// queue order and never leaves this server.
	RecordID int64 `json:"-" xml:"-"`

	UUID string `json:"uuid" xml:"uuid,attr"`
	// OriginalUUID is assigned once at the point of origin and travels
	// unchanged through every hop.
	OriginalUUID    string          `json:"original_uuid" xml:"originalUuid,attr"`
	Creator         string          `json:"creator" xml:"creator,attr"`
	DatabaseVersion string          `json:"database_version" xml:"databaseVersion,attr"`
	Timestamp       time.Time       `json:"timestamp" xml:"timestamp,attr"`
	RetryCount      int             `json:"retry_count" xml:"retryCount,attr"`
	State           SyncRecordState `json:"state" xml:"state,attr"`
	// ContainedClasses is the ordered set of entity types found in Items.
	ContainedClasses ContainedClasses `json:"contained_classes" xml:"containedClasses,attr"`
	Items            []SyncItem       `json:"items" xml:"item"`

	ServerRecords []SyncServerRecord `json:"-" xml:"-"`
}

// HasItems reports whether the record carries at least one item.
func (r *SyncRecord) HasItems() bool {
	return r != nil && len(r.Items) > 0
}

// ServerRecord returns the delivery sub-state for serverID, or nil.
func (r *SyncRecord) ServerRecord(serverID int64) *SyncServerRecord {
	for i := range r.ServerRecords {
		if r.ServerRecords[i].ServerID == serverID {
			return &r.ServerRecords[i]
		}
	}
	return nil
}

// ContainedClasses is an insertion-ordered set of simple type names. It is
// persisted and transmitted as a comma separated list.
type ContainedClasses []string

// Add appends name unless already present.
func (c *ContainedClasses) Add(name string) {
	if name == "" || slices.Contains(*c, name) {
		return
	}
	*c = append(*c, name)
}

// String joins the set with commas.
func (c ContainedClasses) String() string {
	return strings.Join(c, ",")
}

// MarshalText implements encoding.TextMarshaler so the set can be used as
// an XML attribute.
func (c ContainedClasses) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ContainedClasses) UnmarshalText(text []byte) error {
	*c = ParseContainedClasses(string(text))
	return nil
}

// ParseContainedClasses splits a comma separated list, dropping blanks.
func ParseContainedClasses(s string) ContainedClasses {
	out := ContainedClasses{}
	for _, part := range strings.Split(s, ",") {
		out.Add(strings.TrimSpace(part))
	}
	return out
}

// OriginSeparator joins the original record uuid and the uuid of the peer
// that delivered it in an inbound marker.
const OriginSeparator = "|"

// OriginMarker builds the marker an ingesting session puts on the records
// it journals.
func OriginMarker(originalUUID, senderUUID string) string {
	if senderUUID == "" {
		return originalUUID
	}
	return originalUUID + OriginSeparator + senderUUID
}

// SplitOriginMarker is the inverse of [OriginMarker].
func SplitOriginMarker(marker string) (originalUUID, senderUUID string) {
	originalUUID, senderUUID, _ = strings.Cut(marker, OriginSeparator)
	return originalUUID, senderUUID
}
