package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/models"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrWrongPassword         = errors.New("wrong password")
	ErrTokenIsExpired        = errors.New("token is expired")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrSyncDisabled           = errors.New("synchronization is disabled")
	ErrServerDisabled         = errors.New("remote server is disabled")
	ErrNoParentDefined        = errors.New("no parent server is defined")
	ErrTransmissionFailed     = errors.New("transmission failed")
	ErrUnknownSender          = errors.New("sender is not a registered server")
	ErrSyncAlreadyRunning     = errors.New("a sync run for this server is already in progress")
	ErrRecordNotRetryable     = errors.New("record is not in a retryable state")
	ErrInvalidPropertyValue   = errors.New("invalid global property value")
	ErrUnsupportedType        = errors.New("entity type cannot be applied on ingest")
	ErrNoHandler              = errors.New("no ingest handler for entity type")
	ErrUnknownPrecommitAction = errors.New("unknown precommit action")
	ErrBadPrecommitParam      = errors.New("precommit action scheduled with a wrong parameter")
	ErrMissingOwner           = errors.New("dependent entity has no owner")
)

// ItemError is the failure of one ingested item.
type ItemError struct {
	Code models.ItemErrorCode
	Key  models.SyncItemKey
	Err  error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %s: %s: %v", e.Key, e.Code, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
