// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoTransports = errors.New("neither HTTP nor gRPC address is configured")
	errListening    = errors.New("cannot listen on gRPC address")
)
