// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings a sync server writes into HTTP
// response bodies. Peers compare response bodies against the same constants
// to tell apart failures that share a status code, so the wording is part of
// the wire contract.
package app

const (
	// MsgInvalidJSONPassed is returned when a login body is not valid JSON.
	MsgInvalidJSONPassed = "Invalid JSON was passed"

	// MsgInvalidXMLPassed is returned when an ingest body is not a valid
	// transmission envelope.
	MsgInvalidXMLPassed = "Invalid XML was passed"

	// MsgInvalidGzipData is returned when a body announced as gzip cannot be
	// decompressed.
	MsgInvalidGzipData = "Invalid gzip data"

	// MsgIntegrityCheckFailed is returned when the HMAC header is missing or
	// does not match the uncompressed body.
	MsgIntegrityCheckFailed = "Integrity check failed"

	// MsgInvalidDataProvided is returned when credentials are incomplete.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidUsernamePassword is returned when no peer is registered with
	// the username or the password does not match.
	MsgInvalidUsernamePassword = "invalid username/password"

	// MsgServerDisabled is returned when the calling peer is registered but
	// disabled. Logging in again does not help.
	MsgServerDisabled = "server is disabled"

	// MsgTokenIsExpired is returned when a session token is expired or
	// cannot be verified. The peer should log in again.
	MsgTokenIsExpired = "token is expired"

	// MsgNoAuthenticatedServer is returned when a protected route is reached
	// without a resolved peer.
	MsgNoAuthenticatedServer = "no authenticated server was given"

	// MsgSyncDisabled is returned when synchronization is switched off on
	// the receiving server.
	MsgSyncDisabled = "synchronization is disabled"

	// MsgTransmissionFailed is returned when a well-formed transmission
	// could not be processed.
	MsgTransmissionFailed = "error processing transmission"

	// MsgSyncStatisticsFailed is returned when the statistics cannot be read.
	MsgSyncStatisticsFailed = "error getting sync statistics"
)
