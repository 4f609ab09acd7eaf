package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// Field names accepted by RemoteServerValidator.
const (
	FieldUUID          = "uuid"
	FieldNickname      = "nickname"
	FieldServerType    = "type"
	FieldAddress       = "address"
	FieldChildUsername = "child_username"
	FieldClasses       = "classes"
)

// RemoteServerValidator checks a peer definition before it is stored.
type RemoteServerValidator struct {
}

func NewRemoteServerValidator() Validator {
	return &RemoteServerValidator{}
}

func (v *RemoteServerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RemoteServer:
		return v.validateRemoteServer(ctx, value, fields...)
	case *models.RemoteServer:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRemoteServer(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RemoteServerValidator) validateRemoteServer(ctx context.Context, server models.RemoteServer, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUUID, FieldNickname, FieldServerType, FieldAddress, FieldChildUsername, FieldClasses}
	}

	for _, f := range fields {
		switch f {
		case FieldUUID:
			if strings.TrimSpace(server.UUID) == "" {
				return ErrInvalidUUID
			}
		case FieldNickname:
			if strings.TrimSpace(server.Nickname) == "" {
				return ErrInvalidNickname
			}
		case FieldServerType:
			if server.Type != models.RemoteServerTypeParent && server.Type != models.RemoteServerTypeChild {
				return ErrInvalidServerType
			}
		case FieldAddress:
			// a child without an address pulls its records from the ingest replies
			if server.Address == "" && server.Type == models.RemoteServerTypeChild {
				continue
			}
			if !validAddress(server.Address) {
				return ErrInvalidAddress
			}
		case FieldChildUsername:
			if server.Type == models.RemoteServerTypeChild && strings.TrimSpace(server.ChildUsername) == "" {
				return ErrInvalidChildUsername
			}
		case FieldClasses:
			for _, c := range append(server.ClassesSent, server.ClassesReceived...) {
				if strings.ContainsAny(c, " |,") {
					return ErrInvalidClasses
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validAddress(address string) bool {
	u, err := url.Parse(strings.TrimSpace(address))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
