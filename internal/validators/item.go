package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/gumi-collection/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the record identifier of an item or patch.
	FieldID = "id"

	// FieldUserID targets the owner identifier.
	FieldUserID = "user_id"

	// FieldName targets the item name.
	FieldName = "name"

	// FieldQuantity targets the purchase quantity.
	FieldQuantity = "quantity"

	// FieldAmounts targets every money field of an item.
	FieldAmounts = "amounts"

	// FieldEnums targets status, payment status, category and source type.
	FieldEnums = "enums"

	// FieldPurchaseDate targets the YYYY-MM-DD purchase date.
	FieldPurchaseDate = "purchase_date"

	// FieldSoldQuantity targets the sold quantity of a sold item.
	FieldSoldQuantity = "sold_quantity"

	// FieldPatch targets the changed fields of an ItemPatch.
	FieldPatch = "patch"

	// FieldLogin and FieldPassword target user credentials.
	FieldLogin    = "login"
	FieldPassword = "password"

	// FieldPage targets the range of a PageRequest.
	FieldPage = "page"
)

// ItemValidator implements the Validator interface for the record store
// models: CollectionItem, ItemPatch, Profile, User and PageRequest.
//
// Items are validated after normalisation, so the defaults the save path
// fills in (id, date, quantity) are expected to be present.
type ItemValidator struct {
}

// NewItemValidator returns the Validator used by the record store.
func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Optional fields restrict validation to the named
// subset; when omitted, every field of the type is checked.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CollectionItem:
		return v.validateItem(value, fields...)
	case *models.CollectionItem:
		return v.validateItem(*value, fields...)

	case models.ItemPatch:
		return v.validatePatch(value, fields...)
	case *models.ItemPatch:
		return v.validatePatch(*value, fields...)

	case models.Profile:
		return v.validateProfile(value, fields...)
	case *models.Profile:
		return v.validateProfile(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.PageRequest:
		return v.validatePage(value, fields...)
	case *models.PageRequest:
		return v.validatePage(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItem(item models.CollectionItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldName, FieldQuantity, FieldAmounts, FieldEnums, FieldPurchaseDate, FieldSoldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(item.ID) == "" {
				return ErrInvalidItemID
			}
		case FieldUserID:
			if item.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if strings.TrimSpace(item.Name) == "" {
				return ErrEmptyName
			}
		case FieldQuantity:
			if item.Quantity < 1 {
				return ErrInvalidQuantity
			}
		case FieldAmounts:
			if item.Price.IsNegative() ||
				(item.DepositAmount.Valid && item.DepositAmount.Decimal.IsNegative()) ||
				(item.FinalPaymentAmount.Valid && item.FinalPaymentAmount.Decimal.IsNegative()) ||
				(item.SoldPrice.Valid && item.SoldPrice.Decimal.IsNegative()) {
				return ErrNegativeAmount
			}
		case FieldEnums:
			if !validEnums(item) {
				return ErrInvalidEnumValue
			}
		case FieldPurchaseDate:
			if item.PurchaseDate == "" {
				continue
			}
			if _, err := time.Parse(models.DateLayout, item.PurchaseDate); err != nil {
				return ErrInvalidPurchaseDate
			}
		case FieldSoldQuantity:
			if item.SoldQuantity != nil && (*item.SoldQuantity < 0 || *item.SoldQuantity > item.Quantity) {
				return ErrInvalidSoldQuantity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validEnums(item models.CollectionItem) bool {
	if _, ok := models.ParseItemStatus(string(item.Status)); !ok {
		return false
	}
	if _, ok := models.ParsePaymentStatus(string(item.PaymentStatus)); !ok {
		return false
	}
	if _, ok := models.ParseItemCategory(string(item.Category)); !ok {
		return false
	}
	_, ok := models.ParseSourceType(string(item.SourceType))
	return ok
}

func (v *ItemValidator) validatePatch(patch models.ItemPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldPatch}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(patch.ID) == "" {
				return ErrInvalidItemID
			}
		case FieldUserID:
			if patch.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldPatch:
			if patch.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validateProfile(profile models.Profile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if profile.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if strings.TrimSpace(profile.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrInvalidLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validatePage(page models.PageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPage}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if page.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldPage:
			if page.Offset < 0 || page.Limit <= 0 {
				return ErrInvalidPage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
