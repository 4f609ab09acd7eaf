// Package http serves the sync endpoints a child node calls on its parent:
// login, ingest of transmissions and the statistics and version endpoints.
//
// Requests pass trace id, access logging and gzip middleware on every route.
// Ingest additionally requires a session token issued by login and, when a
// hash key is configured, a matching HashSHA256 signature of the envelope.
package http
