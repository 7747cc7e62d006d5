package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomy(t *testing.T) {
	tx := NewTaxonomy(" 吧唧 ", "CD", "", "吧唧")
	require.Equal(t, []string{"吧唧", "CD"}, tx.Labels())

	assert.True(t, tx.Add("色纸"))
	assert.False(t, tx.Add("CD"), "duplicate")
	assert.False(t, tx.Add("   "), "blank")

	assert.True(t, tx.Move(2, true))
	assert.Equal(t, []string{"吧唧", "色纸", "CD"}, tx.Labels())
	assert.False(t, tx.Move(0, true), "already first")
	assert.False(t, tx.Move(2, false), "already last")
	assert.False(t, tx.Move(5, true))

	assert.True(t, tx.Remove("吧唧"))
	assert.False(t, tx.Remove("吧唧"))
	assert.Equal(t, []string{"色纸", "CD"}, tx.Labels())

	labels := tx.Labels()
	labels[0] = "changed"
	assert.Equal(t, "色纸", tx.Labels()[0], "Labels returns a copy")
}

func TestDefaultTaxonomies(t *testing.T) {
	cats := DefaultCategoryTaxonomy().Labels()
	require.Len(t, cats, len(AllCategories()))
	assert.Equal(t, string(CategoryOther), cats[len(cats)-1])

	sources := DefaultSourceTaxonomy().Labels()
	require.Len(t, sources, len(AllSourceTypes()))
	assert.Contains(t, sources, string(SourceAnime))
}

func TestNewDefaultProfile(t *testing.T) {
	p := NewDefaultProfile(4, "mika@example.com")
	assert.Equal(t, Profile{UserID: 4, Name: "mika", Bio: DefaultProfileBio, Avatar: DefaultProfileAvatar}, p)

	assert.Equal(t, "rin", NewDefaultProfile(5, "rin").Name)
	assert.Equal(t, DefaultProfileName, NewDefaultProfile(6, "@example.com").Name)
}

func TestProfile_WithDisplayFallbacks(t *testing.T) {
	got := Profile{Name: "mika"}.WithDisplayFallbacks()
	assert.Equal(t, "mika", got.Name)
	assert.Equal(t, EmptyProfileBio, got.Bio)
	assert.Equal(t, DefaultProfileAvatar, got.Avatar)

	assert.Equal(t, DefaultProfileName, Profile{}.WithDisplayFallbacks().Name)
}

func TestCollectionItem_Money(t *testing.T) {
	two := 2
	tests := []struct {
		name   string
		item   CollectionItem
		cost   string
		income string
	}{
		{
			name:   "owned",
			item:   CollectionItem{Status: StatusOwned, Price: decimal.RequireFromString("35.5"), Quantity: 3},
			cost:   "106.5",
			income: "0",
		},
		{
			name: "sold with quantity",
			item: CollectionItem{
				Status: StatusSold, Price: decimal.NewFromInt(40), Quantity: 3,
				SoldPrice: decimal.NewNullDecimal(decimal.NewFromInt(50)), SoldQuantity: &two,
			},
			cost:   "120",
			income: "100",
		},
		{
			name: "sold without quantity",
			item: CollectionItem{
				Status: StatusSold, Price: decimal.NewFromInt(40), Quantity: 3,
				SoldPrice: decimal.NewNullDecimal(decimal.NewFromInt(50)),
			},
			cost:   "120",
			income: "150",
		},
		{
			name: "sold price ignored while not sold",
			item: CollectionItem{
				Status: StatusTransit, Price: decimal.NewFromInt(10), Quantity: 1,
				SoldPrice: decimal.NewNullDecimal(decimal.NewFromInt(50)),
			},
			cost:   "10",
			income: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.cost, tt.item.TotalCost().String())
			assert.Equal(t, tt.income, tt.item.SaleIncome().String())
		})
	}
}

func TestItemPatch_IsEmpty(t *testing.T) {
	pinned := true
	assert.True(t, ItemPatch{ID: "a"}.IsEmpty())
	assert.False(t, ItemPatch{ID: "a", IsPinned: &pinned}.IsEmpty())
}

func TestParseItemStatus(t *testing.T) {
	st, ok := ParseItemStatus("在途")
	require.True(t, ok)
	assert.Equal(t, StatusTransit, st)
	assert.True(t, st.NeedsReminder())
	assert.False(t, StatusSold.NeedsReminder())

	_, ok = ParseItemStatus("lost")
	assert.False(t, ok)
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "", " ")
	assert.True(t, info.HasVersion())
	assert.Equal(t, "1.4.0 (commit: N/A, built: N/A)", info.String())

	var zero AppBuildInfo
	assert.False(t, zero.HasVersion())
	assert.Equal(t, "N/A", zero.BuildCommit())
}
