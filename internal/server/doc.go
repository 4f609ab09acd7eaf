// Package server runs a sync node's listeners.
//
// A node exposes the peer-facing HTTP API (login and ingest) and a gRPC
// health endpoint. Both run until the process receives SIGINT, SIGTERM or
// SIGQUIT, or until one of them fails; the scheduled sync jobs are started
// with them and stopped before the listeners drain.
package server
