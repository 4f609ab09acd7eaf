package interceptor

import (
	"errors"
	"fmt"
)

var (
	ErrUnresolvedReference = errors.New("referenced entity has no uuid")
	ErrNotParticipating    = errors.New("entity does not participate in synchronization")
	ErrUnknownProperty     = errors.New("owner has no such collection")
	ErrNoIdentity          = errors.New("entity has no uuid")
	ErrJournal             = errors.New("error journaling sync record")
)

// CaptureError is returned in strict mode when a change cannot be captured.
// It aborts the surrounding transaction.
type CaptureError struct {
	Op         string
	EntityType string
	UUID       string
	Err        error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture %s %s %s: %v", e.Op, e.EntityType, e.UUID, e.Err)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}
