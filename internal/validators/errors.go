package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrInvalidItemID       = errors.New("invalid item id")
	ErrEmptyName           = errors.New("name is required")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrNegativeAmount      = errors.New("amounts must not be negative")
	ErrInvalidPurchaseDate = errors.New("purchase date must be YYYY-MM-DD")
	ErrInvalidSoldQuantity = errors.New("sold quantity must be between 0 and quantity")
	ErrInvalidEnumValue    = errors.New("unknown enum value")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrInvalidLogin        = errors.New("login is required")
	ErrInvalidPassword     = errors.New("password is required")
	ErrInvalidPage         = errors.New("offset must be >= 0 and limit > 0")
)
