package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/models"
)

// Field names accepted by TransmissionValidator.
const (
	FieldSource    = "source"
	FieldTimestamp = "timestamp"
	FieldRecords   = "records"
)

// TransmissionValidator checks the structure of an inbound envelope. It
// does not look at item content: a record whose items cannot be applied is
// answered per item by the ingest.
type TransmissionValidator struct {
}

func NewTransmissionValidator() Validator {
	return &TransmissionValidator{}
}

func (v *TransmissionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncTransmission:
		return v.validateTransmission(ctx, value, fields...)
	case *models.SyncTransmission:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTransmission(ctx, *value, fields...)
	case models.SyncRecord:
		return v.validateRecord(value)
	case *models.SyncRecord:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *TransmissionValidator) validateTransmission(ctx context.Context, env models.SyncTransmission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUUID, FieldSource, FieldTimestamp, FieldRecords}
	}

	for _, f := range fields {
		switch f {
		case FieldUUID:
			if env.UUID == "" {
				return ErrInvalidUUID
			}
		case FieldSource:
			if env.SyncSourceUUID == "" {
				return ErrInvalidSource
			}
		case FieldTimestamp:
			if env.Timestamp.IsZero() {
				return ErrInvalidTimestamp
			}
		case FieldRecords:
			seen := make(map[string]struct{}, len(env.Records))
			for i, record := range env.Records {
				if err := v.validateRecord(record); err != nil {
					return fmt.Errorf("validation error at record %d: %w", i, err)
				}
				if _, ok := seen[record.OriginalUUID]; ok {
					return fmt.Errorf("%w: %s", ErrDuplicateRecord, record.OriginalUUID)
				}
				seen[record.OriginalUUID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TransmissionValidator) validateRecord(record models.SyncRecord) error {
	if record.UUID == "" || record.OriginalUUID == "" {
		return ErrInvalidRecord
	}
	for i, item := range record.Items {
		if item.Key == "" || item.ContainedType == "" {
			return fmt.Errorf("%w: item %d", ErrInvalidItem, i)
		}
		switch item.State {
		case models.SyncItemStateNew, models.SyncItemStateUpdated, models.SyncItemStateDeleted:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidItemState, item.State)
		}
	}
	return nil
}
