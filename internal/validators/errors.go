package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUUID          = errors.New("invalid uuid")
	ErrInvalidNickname      = errors.New("nickname is required")
	ErrInvalidServerType    = errors.New("invalid remote server type")
	ErrInvalidAddress       = errors.New("invalid remote server address")
	ErrInvalidChildUsername = errors.New("child username is required for a child server")
	ErrInvalidClasses       = errors.New("invalid class list")

	ErrInvalidSource    = errors.New("transmission source is required")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidRecord    = errors.New("invalid sync record")
	ErrDuplicateRecord  = errors.New("record appears twice in one transmission")
	ErrInvalidItem      = errors.New("invalid sync item")
	ErrInvalidItemState = errors.New("invalid sync item state")
)
