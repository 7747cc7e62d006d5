package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/validators"
	"github.com/MKhiriev/gumi-collection/models"
)

// ItemValidationService checks requests before handing them to the wrapped
// ItemService.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewItemValidator(),
	}
}

func (v *ItemValidationService) GetPage(ctx context.Context, req models.PageRequest) (models.ItemPage, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ItemPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.GetPage(ctx, req)
}

func (v *ItemValidationService) GetItem(ctx context.Context, userID int64, id string) (models.CollectionItem, error) {
	if userID <= 0 {
		return models.CollectionItem{}, ErrValidationNoUserID
	}
	return v.inner.GetItem(ctx, userID, id)
}

func (v *ItemValidationService) GetAllItems(ctx context.Context, userID int64) ([]models.CollectionItem, error) {
	if userID <= 0 {
		return nil, ErrValidationNoUserID
	}
	return v.inner.GetAllItems(ctx, userID)
}

// SaveItem checks what normalisation cannot repair: negative amounts, unknown
// enum values and malformed purchase dates. Empty enum values are checked as
// their defaults. A blank name is left to NormalizeForSave so that it reports
// ErrItemNameRequired.
func (v *ItemValidationService) SaveItem(ctx context.Context, userID int64, item models.CollectionItem) (models.CollectionItem, error) {
	if userID <= 0 {
		return models.CollectionItem{}, ErrValidationNoUserID
	}

	probe := withEnumDefaults(item)
	if err := v.validator.Validate(ctx, probe, validators.FieldAmounts, validators.FieldEnums, validators.FieldPurchaseDate); err != nil {
		return models.CollectionItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SaveItem(ctx, userID, item)
}

func (v *ItemValidationService) PatchItem(ctx context.Context, patch models.ItemPatch) error {
	if err := v.validator.Validate(ctx, patch, validators.FieldID, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	return v.inner.PatchItem(ctx, patch)
}

func (v *ItemValidationService) ClearAll(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, ErrValidationNoUserID
	}
	return v.inner.ClearAll(ctx, userID)
}

func (v *ItemValidationService) Wrap(wrapped ItemService) ItemService {
	v.inner = wrapped
	return v
}
