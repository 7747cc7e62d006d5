package engine

import (
	"time"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the ISO code used when amounts are displayed.
const Currency = money.CNY

// Distribute groups items by category or IP. Count sums quantities and Amount
// sums price × quantity. Items with an empty category are left out of the
// category distribution; an empty IP is grouped under [OtherKey].
func Distribute(items []models.CollectionItem, key RankKey) []models.DistributionEntry {
	order := make([]string, 0)
	byKey := make(map[string]*models.DistributionEntry)

	for _, item := range items {
		if key == ByCategory && item.Category == "" {
			continue
		}
		k := key.of(item.Category, item.IP)

		entry, ok := byKey[k]
		if !ok {
			entry = &models.DistributionEntry{Key: k, Amount: decimal.Zero}
			byKey[k] = entry
			order = append(order, k)
		}
		entry.Count += item.Quantity
		entry.Amount = entry.Amount.Add(item.TotalCost())
	}

	out := make([]models.DistributionEntry, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	return out
}

// SpendingSeries converts dated items into the raw spending time series.
// Undated items are skipped.
func SpendingSeries(items []models.CollectionItem) []models.DatedValue {
	out := make([]models.DatedValue, 0, len(items))
	for _, item := range items {
		if _, ok := ParseDate(item.PurchaseDate); !ok {
			continue
		}
		out = append(out, models.DatedValue{
			Date:     item.PurchaseDate,
			Value:    item.TotalCost(),
			Category: item.Category,
			IP:       item.IP,
		})
	}
	return out
}

// Overview computes spending and sale income for the week and month holding
// now and for all time. Periods are matched on the purchase date.
func Overview(items []models.CollectionItem, now time.Time) (week, month, all models.OverviewPeriod) {
	weekLabel, monthLabel := WeekLabel(now), MonthLabel(now)

	var (
		weekTotal, weekSold   = decimal.Zero, decimal.Zero
		monthTotal, monthSold = decimal.Zero, decimal.Zero
		allTotal, allSold     = decimal.Zero, decimal.Zero
	)

	for _, item := range items {
		cost, income := item.TotalCost(), item.SaleIncome()
		allTotal, allSold = allTotal.Add(cost), allSold.Add(income)

		t, ok := ParseDate(item.PurchaseDate)
		if !ok {
			continue
		}
		if WeekLabel(t) == weekLabel {
			weekTotal, weekSold = weekTotal.Add(cost), weekSold.Add(income)
		}
		if MonthLabel(t) == monthLabel {
			monthTotal, monthSold = monthTotal.Add(cost), monthSold.Add(income)
		}
	}

	return models.NewOverviewPeriod(weekTotal, weekSold),
		models.NewOverviewPeriod(monthTotal, monthSold),
		models.NewOverviewPeriod(allTotal, allSold)
}

// BuildStatsBundle computes the whole statistics bundle from the item list.
func BuildStatsBundle(items []models.CollectionItem, now time.Time) models.StatsBundle {
	week, month, all := Overview(items, now)

	categories := Distribute(items, ByCategory)
	ips := Distribute(items, ByIPKey)

	return models.StatsBundle{
		OverviewWeek:   week,
		OverviewMonth:  month,
		OverviewAll:    all,
		CategoryCount:  SortDistribution(categories, false),
		CategoryAmount: SortDistribution(categories, true),
		IPCount:        SortDistribution(ips, false),
		IPAmount:       SortDistribution(ips, true),
		Series:         SpendingSeries(items),
	}
}

// ProfileStats are the quick figures on the profile screen.
type ProfileStats struct {
	TotalItems   int
	TotalDomains int
	TotalSpent   decimal.Decimal
	TotalEarned  decimal.Decimal
}

// ProfileTotals sums quantities, counts distinct IPs and totals money spent and
// earned over items.
func ProfileTotals(items []models.CollectionItem) ProfileStats {
	stats := ProfileStats{TotalSpent: decimal.Zero, TotalEarned: decimal.Zero}
	domains := make(map[string]struct{})

	for _, item := range items {
		stats.TotalItems += item.Quantity
		domains[item.IP] = struct{}{}
		stats.TotalSpent = stats.TotalSpent.Add(item.TotalCost())
		stats.TotalEarned = stats.TotalEarned.Add(item.SaleIncome())
	}
	stats.TotalDomains = len(domains)

	return stats
}

// FormatK abbreviates values of 1000 and more as "x.xk".
func FormatK(v decimal.Decimal) string {
	if v.GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return v.Div(decimal.NewFromInt(1000)).StringFixed(1) + "k"
	}
	return v.String()
}

// FormatAmount renders v in [Currency], rounded to minor units.
func FormatAmount(v decimal.Decimal) string {
	return money.New(v.Shift(2).Round(0).IntPart(), Currency).Display()
}
