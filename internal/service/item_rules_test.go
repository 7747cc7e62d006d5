// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/csvcodec"
	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func intPtr(v int) *int { return &v }

func TestNormalizeForSave_BlankName(t *testing.T) {
	_, err := NormalizeForSave(models.CollectionItem{Name: "   "}, fixedNow)
	require.ErrorIs(t, err, ErrItemNameRequired)
}

func TestNormalizeForSave_Defaults(t *testing.T) {
	got, err := NormalizeForSave(models.CollectionItem{Name: "  Badge A  "}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "Badge A", got.Name)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "2025-03-14", got.PurchaseDate)
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, models.DefaultItemStatus, got.Status)
	assert.Equal(t, models.DefaultPaymentStatus, got.PaymentStatus)
	assert.Equal(t, models.DefaultFormCategory, got.Category)
	assert.Equal(t, models.DefaultFormSourceType, got.SourceType)
	assert.Equal(t, engine.OtherKey, got.IP)
	assert.Equal(t, engine.OtherKey, got.Character)
}

// A saved item exported to CSV and imported again keeps its labels even when
// they were left blank in the form.
func TestNormalizeForSave_SurvivesCSVRoundTrip(t *testing.T) {
	saved, err := NormalizeForSave(models.CollectionItem{
		Name:      "Acrylic stand",
		IP:        "  ",
		Character: "",
		Price:     decimal.NewFromInt(45),
		Quantity:  2,
		Notes:     `say "hi", twice`,
		ImageURL:  "https://img.example/stand.jpg",
	}, fixedNow)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, csvcodec.Export(&buf, []models.CollectionItem{saved}))

	imported, err := csvcodec.ImportString(buf.String(), csvcodec.ImportOptions{
		Now:   func() time.Time { return fixedNow },
		NewID: func() string { return "fresh" },
	})
	require.NoError(t, err)
	require.Len(t, imported, 1)

	got := imported[0]
	assert.Equal(t, "fresh", got.ID)
	assert.Equal(t, saved.Name, got.Name)
	assert.Equal(t, saved.IP, got.IP)
	assert.Equal(t, saved.Character, got.Character)
	assert.Equal(t, saved.Category, got.Category)
	assert.Equal(t, saved.SourceType, got.SourceType)
	assert.True(t, saved.Price.Equal(got.Price))
	assert.Equal(t, saved.Quantity, got.Quantity)
	assert.Equal(t, saved.Status, got.Status)
	assert.Equal(t, saved.PaymentStatus, got.PaymentStatus)
	assert.Equal(t, saved.PurchaseDate, got.PurchaseDate)
	assert.Equal(t, saved.Notes, got.Notes)
	assert.Equal(t, saved.ImageURL, got.ImageURL)
}

func TestNormalizeForSave_KeepsExistingID(t *testing.T) {
	got, err := NormalizeForSave(models.CollectionItem{ID: "item-1", Name: "x", PurchaseDate: "2024-01-02", Quantity: 3}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "item-1", got.ID)
	assert.Equal(t, "2024-01-02", got.PurchaseDate)
	assert.Equal(t, 3, got.Quantity)
}

func TestNormalizeForSave_Payment(t *testing.T) {
	tests := []struct {
		name        string
		item        models.CollectionItem
		wantPrice   string
		wantDeposit bool
	}{
		{
			name: "deposit recomputes price",
			item: models.CollectionItem{
				Name: "a", Price: decimal.RequireFromString("1"), PaymentStatus: models.PaymentDeposit,
				DepositAmount: nullDec("30"), FinalPaymentAmount: nullDec("45.5"),
			},
			wantPrice:   "75.5",
			wantDeposit: true,
		},
		{
			name: "deposit without final payment",
			item: models.CollectionItem{
				Name: "a", PaymentStatus: models.PaymentDeposit, DepositAmount: nullDec("20"),
			},
			wantPrice:   "20",
			wantDeposit: true,
		},
		{
			name: "full payment drops parts",
			item: models.CollectionItem{
				Name: "a", Price: decimal.RequireFromString("99"), PaymentStatus: models.PaymentFull,
				DepositAmount: nullDec("30"), FinalPaymentAmount: nullDec("45"),
			},
			wantPrice: "99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeForSave(tt.item, fixedNow)
			require.NoError(t, err)
			assert.True(t, got.Price.Equal(decimal.RequireFromString(tt.wantPrice)), "price %s", got.Price)
			assert.Equal(t, tt.wantDeposit, got.DepositAmount.Valid)
			if !tt.wantDeposit {
				assert.False(t, got.FinalPaymentAmount.Valid)
			}
		})
	}
}

func TestNormalizeForSave_SaleFields(t *testing.T) {
	tests := []struct {
		name       string
		item       models.CollectionItem
		wantSold   bool
		wantSoldQt *int
	}{
		{
			name:     "owned clears sale",
			item:     models.CollectionItem{Name: "a", Quantity: 2, Status: models.StatusOwned, SoldPrice: nullDec("10"), SoldQuantity: intPtr(1)},
			wantSold: false,
		},
		{
			name:       "sold keeps sale",
			item:       models.CollectionItem{Name: "a", Quantity: 2, Status: models.StatusSold, SoldPrice: nullDec("10"), SoldQuantity: intPtr(1)},
			wantSold:   true,
			wantSoldQt: intPtr(1),
		},
		{
			name:       "sold quantity clamped to quantity",
			item:       models.CollectionItem{Name: "a", Quantity: 2, Status: models.StatusSold, SoldPrice: nullDec("10"), SoldQuantity: intPtr(7)},
			wantSold:   true,
			wantSoldQt: intPtr(2),
		},
		{
			name:       "negative sold quantity clamped to zero",
			item:       models.CollectionItem{Name: "a", Quantity: 2, Status: models.StatusSold, SoldPrice: nullDec("10"), SoldQuantity: intPtr(-3)},
			wantSold:   true,
			wantSoldQt: intPtr(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeForSave(tt.item, fixedNow)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSold, got.SoldPrice.Valid)
			assert.Equal(t, tt.wantSoldQt, got.SoldQuantity)
		})
	}
}
