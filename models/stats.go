package models

import "github.com/shopspring/decimal"

// DatedValue is one raw point of the spending time series.
type DatedValue struct {
	Date     string          `json:"date"`
	Value    decimal.Decimal `json:"value"`
	Category ItemCategory    `json:"category"`
	IP       string          `json:"ip"`
}

// OverviewPeriod is the spending total of a period together with the sold
// income of the same period. Net is Total - Sold.
type OverviewPeriod struct {
	Total decimal.Decimal `json:"total"`
	Sold  decimal.Decimal `json:"sold"`
	Net   decimal.Decimal `json:"net"`
}

// NewOverviewPeriod builds an OverviewPeriod and derives Net.
func NewOverviewPeriod(total, sold decimal.Decimal) OverviewPeriod {
	return OverviewPeriod{Total: total, Sold: sold, Net: total.Sub(sold)}
}

// DistributionEntry is the share of one category or IP.
// Count is the sum of quantities, Amount the sum of price × quantity.
type DistributionEntry struct {
	Key    string          `json:"key"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// StatsBundle is the precomputed statistics returned by the record store.
type StatsBundle struct {
	OverviewWeek  OverviewPeriod `json:"overview_week"`
	OverviewMonth OverviewPeriod `json:"overview_month"`
	OverviewAll   OverviewPeriod `json:"overview_all"`

	CategoryCount  []DistributionEntry `json:"category_dist_count"`
	CategoryAmount []DistributionEntry `json:"category_dist_amount"`
	IPCount        []DistributionEntry `json:"ip_dist_count"`
	IPAmount       []DistributionEntry `json:"ip_dist_amount"`

	Series []DatedValue `json:"series"`
}

// FilterFacets holds the distinct values offered by the facet filters.
type FilterFacets struct {
	IPs        []string `json:"all_ips"`
	Characters []string `json:"all_characters"`
}

// SeriesSummary summarises a bucketed series.
type SeriesSummary struct {
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
	Max     decimal.Decimal `json:"max"`
}

// RankEntry is one row of a period ranking. Percent has one decimal place.
type RankEntry struct {
	Key     string          `json:"key"`
	Sum     decimal.Decimal `json:"sum"`
	Percent float64         `json:"percent"`
}
