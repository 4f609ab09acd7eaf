// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter carries transmission envelopes to peer servers.
//
// The primary abstraction is [Transport], which decouples the transmission
// service from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPTransport]) that logs in to the peer, posts the XML envelope and
// decodes the XML response.
//
// Every failure returned by a [Transport] is a [*TransmissionError] carrying
// the [models.TransmissionState] that categorizes it, so callers can record
// the outcome without inspecting transport details.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport exchanges one envelope with one peer.
type Transport interface {
	// Send delivers env to server and returns the peer's per-record
	// receipts. The exchange is bounded by the configured request timeout.
	Send(ctx context.Context, server *models.RemoteServer, env *models.SyncTransmission) (*models.SyncTransmissionResponse, error)
}

// CompressionSource reports whether outgoing envelopes are gzipped. The
// setting is read on every send.
type CompressionSource interface {
	CompressionEnabled(ctx context.Context) bool
}
