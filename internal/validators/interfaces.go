// Package validators holds the structural checks run on peer definitions
// and inbound sync envelopes before the service layer acts on them.
package validators

import "context"

// Validator checks obj and returns one of the package errors, possibly
// wrapped with the offending record or item. When fields is empty every
// field the validator knows about is checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
