// Package utils holds small helpers shared by the transport and service
// layers: typed context keys, envelope signing, bearer token parsing, JSON
// responses and uuid generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ServerIDCtxKey is the key used to store the peer server identifier in the context.
// Used together with GetServerIDFromContext for type-safe retrieval
// of the server ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ServerIDCtxKey, int64(42))
var ServerIDCtxKey = contextKey("serverID")

// GetServerIDFromContext retrieves the peer server identifier from the context.
//
// Returns the server ID of type int64 and an ok flag:
//   - ok == true: value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	serverID, ok := utils.GetServerIDFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated peer
//	}
func GetServerIDFromContext(ctx context.Context) (int64, bool) {
	serverID, ok := ctx.Value(ServerIDCtxKey).(int64)
	return serverID, ok
}

// RemoteServerCtxKey is the key under which the auth middleware stores the
// authenticated peer (*models.RemoteServer).
var RemoteServerCtxKey = contextKey("remoteServer")

// GetRemoteServerFromContext retrieves the authenticated peer stored by the
// auth middleware.
func GetRemoteServerFromContext(ctx context.Context) (*models.RemoteServer, bool) {
	server, ok := ctx.Value(RemoteServerCtxKey).(*models.RemoteServer)
	return server, ok && server != nil
}

// TraceIDCtxKey carries the trace id of the exchange a context belongs to,
// so it can be forwarded to the peer on outgoing requests.
var TraceIDCtxKey = contextKey("traceID")

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
