// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func validItem() models.CollectionItem {
	return models.CollectionItem{
		ID:            "0190a8e2-0000-7000-8000-000000000001",
		UserID:        1,
		Name:          "Star Badge",
		IP:            "Genshin",
		Category:      models.CategoryBadge,
		SourceType:    models.SourceGame,
		Price:         decimal.NewFromInt(35),
		Quantity:      2,
		PaymentStatus: models.PaymentFull,
		Status:        models.StatusOwned,
		PurchaseDate:  "2024-05-01",
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewItemValidator().Validate(context.Background(), "a string")
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_Item(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.CollectionItem)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.CollectionItem) {}},
		{name: "empty id", mutate: func(i *models.CollectionItem) { i.ID = " " }, wantErr: ErrInvalidItemID},
		{name: "no owner", mutate: func(i *models.CollectionItem) { i.UserID = 0 }, wantErr: ErrInvalidUserID},
		{name: "blank name", mutate: func(i *models.CollectionItem) { i.Name = "  " }, wantErr: ErrEmptyName},
		{name: "zero quantity", mutate: func(i *models.CollectionItem) { i.Quantity = 0 }, wantErr: ErrInvalidQuantity},
		{name: "negative price", mutate: func(i *models.CollectionItem) { i.Price = decimal.NewFromInt(-1) }, wantErr: ErrNegativeAmount},
		{
			name: "negative deposit",
			mutate: func(i *models.CollectionItem) {
				i.DepositAmount = decimal.NewNullDecimal(decimal.NewFromInt(-5))
			},
			wantErr: ErrNegativeAmount,
		},
		{name: "unknown status", mutate: func(i *models.CollectionItem) { i.Status = "lost" }, wantErr: ErrInvalidEnumValue},
		{name: "unknown category", mutate: func(i *models.CollectionItem) { i.Category = "poster" }, wantErr: ErrInvalidEnumValue},
		{name: "bad date", mutate: func(i *models.CollectionItem) { i.PurchaseDate = "01/05/2024" }, wantErr: ErrInvalidPurchaseDate},
		{name: "empty date allowed", mutate: func(i *models.CollectionItem) { i.PurchaseDate = "" }},
		{
			name:    "sold quantity above quantity",
			mutate:  func(i *models.CollectionItem) { i.SoldQuantity = intPtr(3) },
			wantErr: ErrInvalidSoldQuantity,
		},
		{name: "sold quantity equal to quantity", mutate: func(i *models.CollectionItem) { i.SoldQuantity = intPtr(2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)

			err := v.Validate(ctx, item)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			assert.ErrorIs(t, v.Validate(ctx, &item), tt.wantErr, "pointer form")
		})
	}
}

func TestValidate_ItemFieldScoping(t *testing.T) {
	v := NewItemValidator()
	item := validItem()
	item.ID = ""
	item.UserID = 0

	assert.NoError(t, v.Validate(context.Background(), item, FieldName, FieldQuantity))
	assert.ErrorIs(t, v.Validate(context.Background(), item, FieldName, FieldID), ErrInvalidItemID)
	assert.ErrorIs(t, v.Validate(context.Background(), item, "colour"), ErrUnknownField)
}

func TestValidate_Patch(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ItemPatch{ID: "a", UserID: 1, IsPinned: boolPtr(true)}))
	assert.ErrorIs(t, v.Validate(ctx, models.ItemPatch{ID: "a", UserID: 1}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, &models.ItemPatch{UserID: 1, IsPinned: boolPtr(true)}), ErrInvalidItemID)
	assert.ErrorIs(t, v.Validate(ctx, models.ItemPatch{ID: "a", IsReminderEnabled: boolPtr(false)}), ErrInvalidUserID)
}

func TestValidate_Profile(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Profile{UserID: 1}))
	assert.ErrorIs(t, v.Validate(ctx, models.Profile{}), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(ctx, &models.Profile{UserID: 1}, FieldName), ErrEmptyName)
}

func TestValidate_User(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.User{Login: "mika@example.com", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(ctx, models.User{Password: "pw"}), ErrInvalidLogin)
	assert.ErrorIs(t, v.Validate(ctx, &models.User{Login: "mika"}), ErrInvalidPassword)
}

func TestValidate_Page(t *testing.T) {
	v := NewItemValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PageRequest{UserID: 1, Offset: 0, Limit: models.PageSize}))
	assert.ErrorIs(t, v.Validate(ctx, models.PageRequest{UserID: 1, Offset: -1, Limit: 1}), ErrInvalidPage)
	assert.ErrorIs(t, v.Validate(ctx, models.PageRequest{UserID: 1, Limit: 0}), ErrInvalidPage)
	assert.ErrorIs(t, v.Validate(ctx, models.PageRequest{Limit: 1}), ErrInvalidUserID)
}
