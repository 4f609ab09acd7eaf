package server

import "context"

// Server runs the node until ctx is cancelled, a stop signal arrives or a
// listener fails.
type Server interface {
	Run(ctx context.Context) error
	// Shutdown stops jobs and listeners. It is safe to call more than once.
	Shutdown()
}

// BackgroundJob lives as long as the server, e.g. the scheduled sync workers.
type BackgroundJob interface {
	Start(ctx context.Context)
	Stop()
}

type transport interface {
	name() string
	// serve blocks until the transport is shut down. A clean shutdown
	// returns nil.
	serve() error
	shutdown(ctx context.Context)
}
