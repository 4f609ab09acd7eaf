package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-sync-keeper/internal/app"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// mapHTTPError categorizes a completed exchange by its status code.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusForbidden:
		if body == app.MsgServerDisabled {
			return fail(models.TransmissionStateAuthFailed, fmt.Errorf("%w: %w", ErrUnauthorized, ErrDisabledByPeer))
		}
		return fail(models.TransmissionStateAuthFailed, fmt.Errorf("%w: %s", ErrUnauthorized, body))
	case http.StatusUnauthorized:
		return fail(models.TransmissionStateAuthFailed, fmt.Errorf("%w: %s", ErrUnauthorized, body))
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusUnsupportedMediaType:
		return fail(models.TransmissionStateTransmissionNotUnderstood, fmt.Errorf("http %d: %s", resp.StatusCode(), body))
	case http.StatusNotFound, http.StatusConflict:
		return fail(models.TransmissionStateInvalidServer, fmt.Errorf("http %d: %s", resp.StatusCode(), body))
	case http.StatusServiceUnavailable:
		if body == app.MsgSyncDisabled {
			return fail(models.TransmissionStateSendFailed, ErrPeerSyncOff)
		}
		return fail(models.TransmissionStateSendFailed, fmt.Errorf("http %d: %s", resp.StatusCode(), body))
	default:
		return fail(models.TransmissionStateSendFailed, fmt.Errorf("http %d: %s", resp.StatusCode(), body))
	}
}

// mapNetworkError categorizes a request that produced no response.
func mapNetworkError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fail(models.TransmissionStateNoResponse, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fail(models.TransmissionStateNoResponse, err)
	default:
		return fail(models.TransmissionStateNoConnection, err)
	}
}
