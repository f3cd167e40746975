package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownAction   = errors.New("unknown action")

	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptySecretType    = errors.New("secret type is required")
	ErrEmptyRecordUID     = errors.New("record identifier is required")
	ErrNoEditedFields     = errors.New("at least one field besides the record identifier must be filled in")
	ErrNoSelectedEntities = errors.New("at least one target entity must be selected")
	ErrEmptyDestination   = errors.New("destination identity is required")
	ErrNoPermissionFlags  = errors.New("at least one permission flag must be set")
)
