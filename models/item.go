// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout of PurchaseDate values.
const DateLayout = "2006-01-02"

// CollectionItem is one owned, wished or sold collectible record.
//
// Money fields use [decimal.Decimal] so that sums and CSV round-trips are exact.
// Optional amounts are [decimal.NullDecimal]; an invalid NullDecimal marshals to
// JSON null and is written to CSV as an empty cell.
type CollectionItem struct {
	// ID is the opaque record identifier. New records get a fresh one.
	ID string `json:"id"`

	// UserID is the owner. It is always taken from the authenticated session.
	UserID int64 `json:"-"`

	// Name is required and must not be blank.
	Name      string `json:"name"`
	IP        string `json:"ip"`
	Character string `json:"character"`

	Category   ItemCategory `json:"category"`
	SourceType SourceType   `json:"source_type"`

	// Price is the unit purchase price. When PaymentStatus is deposit it is
	// recomputed from DepositAmount + FinalPaymentAmount on every save.
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`

	PaymentStatus      PaymentStatus       `json:"payment_status"`
	DepositAmount      decimal.NullDecimal `json:"deposit_amount"`
	FinalPaymentAmount decimal.NullDecimal `json:"final_payment_amount"`

	Status ItemStatus `json:"status"`

	// SoldPrice and SoldQuantity are set only while Status is sold.
	SoldPrice    decimal.NullDecimal `json:"sold_price"`
	SoldQuantity *int                `json:"sold_quantity,omitempty"`

	// PurchaseDate is a YYYY-MM-DD date; empty means unknown.
	PurchaseDate string `json:"purchase_date"`
	Notes        string `json:"notes"`

	// ImageURL is either a remote URL or an inlined data: blob.
	ImageURL string `json:"image_url"`

	IsPinned          bool `json:"is_pinned"`
	IsReminderEnabled bool `json:"is_reminder_enabled"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Summary projects the item onto the fields kept in the local summary cache.
func (c CollectionItem) Summary() ItemSummary {
	return ItemSummary{
		ID:           c.ID,
		Name:         c.Name,
		IP:           c.IP,
		Character:    c.Character,
		Category:     c.Category,
		Status:       c.Status,
		PurchaseDate: c.PurchaseDate,
	}
}

// TotalCost returns Price × Quantity.
func (c CollectionItem) TotalCost() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// SaleIncome returns SoldPrice × SoldQuantity for sold items, falling back to
// Quantity when no sold quantity was recorded. Non-sold items earn nothing.
func (c CollectionItem) SaleIncome() decimal.Decimal {
	if c.Status != StatusSold || !c.SoldPrice.Valid {
		return decimal.Zero
	}
	qty := c.Quantity
	if c.SoldQuantity != nil && *c.SoldQuantity > 0 {
		qty = *c.SoldQuantity
	}
	return c.SoldPrice.Decimal.Mul(decimal.NewFromInt(int64(qty)))
}

// ItemSummary is the reduced projection persisted by the client for fast
// reloads. It deliberately excludes images and money.
type ItemSummary struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	IP           string       `json:"ip"`
	Character    string       `json:"character"`
	Category     ItemCategory `json:"category"`
	Status       ItemStatus   `json:"status"`
	PurchaseDate string       `json:"purchase_date"`
}

// ItemPatch updates a subset of item fields by id. Nil fields are left unchanged.
type ItemPatch struct {
	ID                string `json:"-"`
	UserID            int64  `json:"-"`
	IsPinned          *bool  `json:"is_pinned,omitempty"`
	IsReminderEnabled *bool  `json:"is_reminder_enabled,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.IsPinned == nil && p.IsReminderEnabled == nil
}

// ImportResult reports how many imported rows were written.
type ImportResult struct {
	Applied int `json:"applied"`
	Failed  int `json:"failed"`
}
