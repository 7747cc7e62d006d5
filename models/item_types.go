package models

// ItemStatus is the lifecycle state of a collection item.
// Values are the labels stored in the database and written to CSV.
type ItemStatus string

const (
	// StatusOwned marks an item that is physically in the collection.
	StatusOwned ItemStatus = "已入手"

	// StatusTransit marks a paid item that is on its way.
	StatusTransit ItemStatus = "在途"

	// StatusReserved marks a pre-ordered item.
	StatusReserved ItemStatus = "预定中"

	// StatusWishlist marks an item the user wants but has not bought.
	StatusWishlist ItemStatus = "愿望单"

	// StatusSold marks an item that left the collection through a sale.
	// Only sold items carry SoldPrice and SoldQuantity.
	StatusSold ItemStatus = "卖出"
)

// DefaultItemStatus is used when an imported status cannot be recognised.
const DefaultItemStatus = StatusOwned

// AllItemStatuses returns every status in display order.
func AllItemStatuses() []ItemStatus {
	return []ItemStatus{StatusOwned, StatusTransit, StatusReserved, StatusSold, StatusWishlist}
}

// ParseItemStatus reports whether s is a known status label.
func ParseItemStatus(s string) (ItemStatus, bool) {
	for _, st := range AllItemStatuses() {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// NeedsReminder reports whether items in this status show up in the reminder list.
func (s ItemStatus) NeedsReminder() bool {
	return s == StatusTransit || s == StatusReserved
}

// PaymentStatus tells whether an item was paid in full or with a deposit.
type PaymentStatus string

const (
	// PaymentFull means Price is the authoritative unit price.
	PaymentFull PaymentStatus = "全款"

	// PaymentDeposit means the unit price is DepositAmount + FinalPaymentAmount.
	PaymentDeposit PaymentStatus = "定金"
)

// DefaultPaymentStatus is used for new records and unknown import values.
const DefaultPaymentStatus = PaymentFull

// AllPaymentStatuses returns every payment status in display order.
func AllPaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentFull, PaymentDeposit}
}

// ParsePaymentStatus reports whether s is a known payment status label.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	for _, ps := range AllPaymentStatuses() {
		if string(ps) == s {
			return ps, true
		}
	}
	return "", false
}

// SourceType is the origin scene of an item (anime, k-pop, ...).
type SourceType string

const (
	SourceWestern SourceType = "欧美"
	SourceKPop    SourceType = "KPOP"
	SourceAnime   SourceType = "动漫"
	SourceJPop    SourceType = "JPOP"
	SourceGame    SourceType = "游戏"
	SourceOther   SourceType = "其他"
)

// DefaultSourceType is used for unknown import values.
const DefaultSourceType = SourceOther

// DefaultFormSourceType preselects the source of a manually created item.
const DefaultFormSourceType = SourceAnime

// AllSourceTypes returns every source type in display order.
func AllSourceTypes() []SourceType {
	return []SourceType{SourceWestern, SourceKPop, SourceAnime, SourceJPop, SourceGame, SourceOther}
}

// ParseSourceType reports whether s is a known source type label.
func ParseSourceType(s string) (SourceType, bool) {
	for _, st := range AllSourceTypes() {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// ItemCategory is the kind of merchandise.
type ItemCategory string

const (
	CategoryCD      ItemCategory = "CD"
	CategoryBadge   ItemCategory = "吧唧"
	CategoryPlush   ItemCategory = "毛绒"
	CategoryFigure  ItemCategory = "立牌"
	CategoryCard    ItemCategory = "纸片"
	CategoryArtbook ItemCategory = "画集"
	CategoryOther   ItemCategory = "其他"
)

// DefaultCategory is used for unknown import values.
const DefaultCategory = CategoryOther

// DefaultFormCategory preselects the category of a manually created item.
const DefaultFormCategory = CategoryBadge

// AllCategories returns every category in display order.
func AllCategories() []ItemCategory {
	return []ItemCategory{
		CategoryCD, CategoryBadge, CategoryPlush, CategoryFigure,
		CategoryCard, CategoryArtbook, CategoryOther,
	}
}

// ParseItemCategory reports whether s is a known category label.
func ParseItemCategory(s string) (ItemCategory, bool) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
