// Package workers groups the background work that runs alongside the sync
// server, such as the periodic push to every eligible peer.
package workers

import "context"

// Worker is a unit of background work. Start must not block; Stop waits
// until the work started by Start has returned.
type Worker interface {
	Name() string
	Start(ctx context.Context)
	Stop()
}
