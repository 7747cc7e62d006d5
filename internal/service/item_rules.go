// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/engine"
	"github.com/MKhiriev/gumi-collection/internal/utils"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/shopspring/decimal"
)

var itemIDs = utils.NewUUIDGenerator()

// NormalizeForSave applies the save rules of an item:
//   - the name is trimmed and must not be blank;
//   - a deposit purchase prices the unit as deposit + final payment, while a
//     full payment drops both parts;
//   - sale fields survive only on sold items, and the sold quantity is
//     clamped to 0..Quantity;
//   - a blank IP or character is stored as engine.OtherKey, the value a CSV
//     import gives an empty cell;
//   - missing id, purchase date, quantity and enum values get defaults.
//
// Status changes need no transition table: whatever the previous status was,
// the result only depends on the status being saved.
func NormalizeForSave(item models.CollectionItem, now time.Time) (models.CollectionItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return item, ErrItemNameRequired
	}

	item.IP = labelOrOther(item.IP)
	item.Character = labelOrOther(item.Character)

	if item.ID == "" {
		item.ID = itemIDs.Generate()
	}
	if item.PurchaseDate == "" {
		item.PurchaseDate = now.Format(models.DateLayout)
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	item = withEnumDefaults(item)

	if item.PaymentStatus == models.PaymentDeposit {
		item.Price = partOrZero(item.DepositAmount).Add(partOrZero(item.FinalPaymentAmount))
	} else {
		item.DepositAmount = decimal.NullDecimal{}
		item.FinalPaymentAmount = decimal.NullDecimal{}
	}

	if item.Status != models.StatusSold {
		item.SoldPrice = decimal.NullDecimal{}
		item.SoldQuantity = nil
	} else if item.SoldQuantity != nil {
		qty := min(max(*item.SoldQuantity, 0), item.Quantity)
		item.SoldQuantity = &qty
	}

	return item, nil
}

func labelOrOther(label string) string {
	if label = strings.TrimSpace(label); label == "" {
		return engine.OtherKey
	}
	return label
}

func partOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// withEnumDefaults fills empty enum fields with the defaults of a new manual
// record.
func withEnumDefaults(item models.CollectionItem) models.CollectionItem {
	if item.Status == "" {
		item.Status = models.DefaultItemStatus
	}
	if item.PaymentStatus == "" {
		item.PaymentStatus = models.DefaultPaymentStatus
	}
	if item.Category == "" {
		item.Category = models.DefaultFormCategory
	}
	if item.SourceType == "" {
		item.SourceType = models.DefaultFormSourceType
	}
	return item
}
