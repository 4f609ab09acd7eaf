package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/models"
)

var (
	ErrUnauthorized    = errors.New("peer rejected credentials")
	ErrNoAddress       = errors.New("peer has no address")
	ErrInvalidResponse = errors.New("peer response not understood")
	ErrWrongPeer       = errors.New("response comes from another server")
	ErrDisabledByPeer  = errors.New("peer has disabled this server")
	ErrPeerSyncOff     = errors.New("peer has synchronization switched off")
)

// TransmissionError is returned by [Transport.Send] for every failed
// exchange.
type TransmissionError struct {
	State models.TransmissionState
	Err   error
}

func (e *TransmissionError) Error() string {
	return fmt.Sprintf("transmission %s: %v", e.State, e.Err)
}

func (e *TransmissionError) Unwrap() error {
	return e.Err
}

func fail(state models.TransmissionState, err error) error {
	return &TransmissionError{State: state, Err: err}
}

// StateOf returns the transmission state carried by err. Errors that are
// not a [*TransmissionError] map to SEND_FAILED.
func StateOf(err error) models.TransmissionState {
	if err == nil {
		return models.TransmissionStateOK
	}
	var te *TransmissionError
	if errors.As(err, &te) {
		return te.State
	}
	return models.TransmissionStateSendFailed
}
