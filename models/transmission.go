// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/xml"
	"time"
)

// TransmissionState categorizes the outcome of one exchange with a peer.
type TransmissionState string

const (
	TransmissionStateOK                        TransmissionState = "OK"
	TransmissionStateNoResponse                TransmissionState = "NO_RESPONSE"
	TransmissionStateAuthFailed                TransmissionState = "AUTH_FAILED"
	TransmissionStateResponseNotUnderstood     TransmissionState = "RESPONSE_NOT_UNDERSTOOD"
	TransmissionStateNoConnection              TransmissionState = "NO_CONNECTION"
	TransmissionStateInvalidServer             TransmissionState = "INVALID_SERVER"
	TransmissionStateCreationFailed            TransmissionState = "TRANSMISSION_CREATION_FAILED"
	TransmissionStateSendFailed                TransmissionState = "SEND_FAILED"
	TransmissionStateNoParentDefined           TransmissionState = "NO_PARENT_DEFINED"
	TransmissionStateTransmissionNotUnderstood TransmissionState = "TRANSMISSION_NOT_UNDERSTOOD"
)

// SyncTransmission is the envelope carrying a batch of records to a peer.
// ImportRecords acknowledges the records the sender received from the
// peer in its previous reply.
type SyncTransmission struct {
	XMLName        xml.Name           `json:"-" xml:"transmission"`
	UUID           string             `json:"uuid" xml:"uuid,attr"`
	SyncSourceUUID string             `json:"source" xml:"source,attr"`
	SyncTargetUUID string             `json:"target" xml:"target,attr"`
	Timestamp      time.Time          `json:"timestamp" xml:"timestamp,attr"`
	Records        []SyncRecord       `json:"records" xml:"record"`
	ImportRecords  []SyncImportRecord `json:"import_records,omitempty" xml:"importRecord,omitempty"`
}

// SyncTransmissionResponse answers a [SyncTransmission] with one receipt
// per record, in the order the records were received. A parent answering
// a child it cannot reach on its own puts the records queued for that
// child in Transmission.
type SyncTransmissionResponse struct {
	XMLName        xml.Name           `json:"-" xml:"response"`
	UUID           string             `json:"uuid" xml:"uuid,attr"`
	SyncSourceUUID string             `json:"source" xml:"source,attr"`
	SyncTargetUUID string             `json:"target" xml:"target,attr"`
	Timestamp      time.Time          `json:"timestamp" xml:"timestamp,attr"`
	State          TransmissionState  `json:"state" xml:"state,attr"`
	ErrorMessage   string             `json:"error_message,omitempty" xml:"error,omitempty"`
	ImportRecords  []SyncImportRecord `json:"import_records" xml:"importRecord"`
	Transmission   *SyncTransmission  `json:"transmission,omitempty" xml:"transmission,omitempty"`
}
