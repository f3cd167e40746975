package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-gate/models"
)

// Buffer keys with validation significance beyond the core entity keys.
const (
	// FieldDestination is the identity a share action delivers access to.
	FieldDestination = "destination"

	// PermissionKeyPrefix marks buffer keys holding folder permission flags.
	PermissionKeyPrefix = "permission_"
)

// SaveRequestValidator implements Validator for models.SaveRequestBody. The
// rules are action-specific: each supported action defines which parts of the
// draft must be filled in before the requester may save it.
type SaveRequestValidator struct{}

func NewSaveRequestValidator() Validator {
	return &SaveRequestValidator{}
}

func (v *SaveRequestValidator) Validate(_ context.Context, value any, _ ...string) error {
	body, ok := value.(models.SaveRequestBody)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	switch body.SelectedAction {
	case models.ActionCreateSecret:
		return v.validateCreate(body)
	case models.ActionUpdateSecret:
		return v.validateUpdate(body)
	case models.ActionShareRecord, models.ActionShareFolder:
		return v.validateShare(body)
	case models.ActionFolderPermissions:
		return v.validateFolderPermissions(body)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, body.SelectedAction)
	}
}

func (v *SaveRequestValidator) validateCreate(body models.SaveRequestBody) error {
	if body.EditBuffer.GetString(models.KeyTitle) == "" {
		return ErrEmptyTitle
	}
	if body.EditBuffer.GetString(models.KeyType) == "" {
		return ErrEmptySecretType
	}
	return nil
}

// validateUpdate requires the record identifier plus at least one non-empty
// field besides it: an update that changes nothing is not a request.
func (v *SaveRequestValidator) validateUpdate(body models.SaveRequestBody) error {
	if body.EditBuffer.GetString(models.KeyRecordUID) == "" {
		return ErrEmptyRecordUID
	}

	for key := range body.EditBuffer {
		if key == models.KeyRecordUID || key == models.KeyType {
			continue
		}
		if body.EditBuffer.NonEmpty(key) {
			return nil
		}
	}
	return ErrNoEditedFields
}

// validateShare requires a resolved target entity and a destination identity.
func (v *SaveRequestValidator) validateShare(body models.SaveRequestBody) error {
	if len(body.SelectedEntities) == 0 {
		return ErrNoSelectedEntities
	}
	if body.EditBuffer.GetString(FieldDestination) == "" {
		return ErrEmptyDestination
	}
	return nil
}

func (v *SaveRequestValidator) validateFolderPermissions(body models.SaveRequestBody) error {
	if len(body.SelectedEntities) == 0 {
		return ErrNoSelectedEntities
	}

	for key := range body.EditBuffer {
		if strings.HasPrefix(key, PermissionKeyPrefix) && body.EditBuffer.NonEmpty(key) {
			return nil
		}
	}
	return ErrNoPermissionFlags
}
